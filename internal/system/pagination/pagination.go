/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package pagination

import (
	"net/http"
	"strconv"

	"github.com/wso2/media-metadata-service/internal/system/constants"
	"github.com/wso2/media-metadata-service/internal/system/errors"
)

// Page carries an optional page/limit pair. Both fields are set together or
// not at all.
type Page struct {
	Index *int
	Size  *int
}

// ParsePage reads page and limit query parameters from the request. Supplying
// only one of the pair, or a negative value, is a client error.
func ParsePage(r *http.Request) (Page, error) {

	var page Page

	rawIndex := r.URL.Query().Get(constants.PageIndexParam)
	rawSize := r.URL.Query().Get(constants.PageSizeParam)

	if rawIndex == "" && rawSize == "" {
		return page, nil
	}
	if rawIndex == "" || rawSize == "" {
		return page, errors.NewClientError(errors.INVALID_PAGINATION, http.StatusBadRequest)
	}

	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		return page, errors.NewClientError(errors.INVALID_PAGINATION, http.StatusBadRequest)
	}
	size, err := strconv.Atoi(rawSize)
	if err != nil {
		return page, errors.NewClientError(errors.INVALID_PAGINATION, http.StatusBadRequest)
	}

	page = Page{Index: &index, Size: &size}
	if err := Validate(page); err != nil {
		return Page{}, err
	}
	return page, nil
}

// Validate enforces the both-or-neither and non-negative constraints.
func Validate(page Page) error {

	if (page.Index == nil) != (page.Size == nil) {
		return errors.NewClientError(errors.INVALID_PAGINATION, http.StatusBadRequest)
	}
	if page.Index != nil && (*page.Index < 0 || *page.Size < 0) {
		return errors.NewClientError(errors.INVALID_PAGINATION, http.StatusBadRequest)
	}
	return nil
}

// Slice applies the page window to n rows and returns the half-open row range
// [lo, hi), clipped to the available rows.
func Slice(page Page, n int) (int, int) {

	if page.Index == nil {
		return 0, n
	}
	lo := *page.Index * *page.Size
	if lo > n {
		lo = n
	}
	hi := lo + *page.Size
	if hi > n {
		hi = n
	}
	return lo, hi
}

func IntPtr(v int) *int { return &v }
