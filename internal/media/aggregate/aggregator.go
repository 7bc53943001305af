/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

package aggregate

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/wso2/media-metadata-service/internal/system/constants"
	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"
	"github.com/wso2/media-metadata-service/internal/system/pagination"

	"github.com/wso2/media-metadata-service/internal/media/model"
	"github.com/wso2/media-metadata-service/internal/media/store"
)

const bytesPerKB = 1024

// MediaQuery carries the filter and pagination parameters of one aggregation
// request. Derivative filters are comma-separated inclusion lists; empty means
// no filtering.
type MediaQuery struct {
	ActiveFilter             string
	DerivativeTypeFilter     string
	DerivativeCategoryFilter string
	Page                     pagination.Page
}

type DomainMediaAggregatorInterface interface {
	GetByDomainID(domain, domainID string, query MediaQuery) ([]model.AggregatedMediaView, int, error)
}

// DomainMediaAggregator merges catalog and document rows for a domain entity,
// applies filters, computes sort order and paginates. All store calls run
// sequentially; a failed batch fails the whole request.
type DomainMediaAggregator struct {
	catalog    store.CatalogStoreInterface
	documents  store.DocumentMediaStoreInterface
	paramLimit int
}

// NewDomainMediaAggregator builds an aggregator. paramLimit bounds the ids
// bound into one catalog lookup; non-positive values fall back to the default.
func NewDomainMediaAggregator(catalog store.CatalogStoreInterface, documents store.DocumentMediaStoreInterface,
	paramLimit int) DomainMediaAggregatorInterface {

	if paramLimit <= 0 {
		paramLimit = constants.DefaultParamLimit
	}
	return &DomainMediaAggregator{
		catalog:    catalog,
		documents:  documents,
		paramLimit: paramLimit,
	}
}

// GetByDomainID returns the merged, filtered, sorted page of media records for
// a domain entity plus the total count under the same filters.
func (a *DomainMediaAggregator) GetByDomainID(domain, domainID string, query MediaQuery) ([]model.AggregatedMediaView, int, error) {

	activeFilter, err := normalizeActiveFilter(query.ActiveFilter)
	if err != nil {
		return nil, 0, err
	}
	if err := pagination.Validate(query.Page); err != nil {
		return nil, 0, err
	}

	mediaIDs, err := a.catalog.LookupMediaIDs(domainID)
	if err != nil {
		return nil, 0, err
	}

	catalogRows, err := a.lookupRowsBatched(domainID, mediaIDs)
	if err != nil {
		return nil, 0, err
	}

	documentRows, err := a.documents.LoadByDomainID(domain, domainID)
	if err != nil {
		return nil, 0, err
	}

	views := mergeRows(mediaIDs, catalogRows, documentRows)
	views = applyActiveFilter(views, activeFilter)
	views = applyDerivativeFilters(views, query.DerivativeTypeFilter, query.DerivativeCategoryFilter)
	sortViews(views)

	total, err := a.catalog.CountMedia(domainID, activeFilter, query.DerivativeCategoryFilter)
	if err != nil {
		return nil, 0, err
	}

	lo, hi := pagination.Slice(query.Page, len(views))
	return views[lo:hi], total, nil
}

// lookupRowsBatched partitions the id set into bounded batches and issues one
// sequential lookup per batch. Batching is a parameter-count workaround only:
// the returned rows follow the original id order exactly, as an unbounded
// IN-clause would.
func (a *DomainMediaAggregator) lookupRowsBatched(domainID string, mediaIDs []int) ([]model.RelationalMediaRow, error) {

	rowsByID := make(map[int]model.RelationalMediaRow, len(mediaIDs))
	for start := 0; start < len(mediaIDs); start += a.paramLimit {
		end := start + a.paramLimit
		if end > len(mediaIDs) {
			end = len(mediaIDs)
		}
		batch, err := a.catalog.LookupMediaRows(domainID, mediaIDs[start:end])
		if err != nil {
			return nil, err
		}
		for _, row := range batch {
			rowsByID[row.MediaID] = row
		}
	}

	rows := make([]model.RelationalMediaRow, 0, len(rowsByID))
	for _, id := range mediaIDs {
		if row, ok := rowsByID[id]; ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// mergeRows joins catalog rows to document rows by the shared media id.
// Catalog-only rows keep empty guid and no derivatives; document-only rows are
// appended after the catalog-ordered rows.
func mergeRows(mediaIDs []int, catalogRows []model.RelationalMediaRow, documentRows []model.DocumentMediaRow) []model.AggregatedMediaView {

	docsByMediaID := make(map[int]model.DocumentMediaRow, len(documentRows))
	for _, doc := range documentRows {
		if doc.CatalogMediaID != 0 {
			docsByMediaID[doc.CatalogMediaID] = doc
		}
	}

	joined := make(map[int]bool, len(catalogRows))
	views := make([]model.AggregatedMediaView, 0, len(catalogRows)+len(documentRows))

	for _, row := range catalogRows {
		view := model.AggregatedMediaView{
			MediaID:  row.MediaID,
			FileName: row.FileName,
			Category: row.Category,
			Width:    row.Width,
			Height:   row.Height,
			FileSize: int64(row.FileSizeKB) * bytesPerKB,
			Active:   row.Active(),
		}
		if doc, ok := docsByMediaID[row.MediaID]; ok {
			joined[row.MediaID] = true
			view.GUID = doc.GUID
			view.DomainFields = doc.DomainFields
			view.Derivatives = scaleDerivatives(doc.Derivatives, row.DerivativeSizeKB)
			view.Comments = doc.Comments
		}
		views = append(views, view)
	}

	for _, doc := range documentRows {
		if doc.CatalogMediaID != 0 && joined[doc.CatalogMediaID] {
			continue
		}
		views = append(views, model.AggregatedMediaView{
			GUID:         doc.GUID,
			FileName:     doc.FileName,
			Active:       strings.EqualFold(doc.Active, "true"),
			DomainFields: doc.DomainFields,
			Derivatives:  doc.Derivatives,
			Comments:     doc.Comments,
		})
	}

	return views
}

// scaleDerivatives fills a missing derivative file size from the catalog's
// kilobyte field.
func scaleDerivatives(derivatives []model.Derivative, derivativeSizeKB int) []model.Derivative {

	if len(derivatives) == 0 {
		return derivatives
	}
	scaled := make([]model.Derivative, len(derivatives))
	copy(scaled, derivatives)
	for i := range scaled {
		if scaled[i].FileSize == 0 && derivativeSizeKB > 0 {
			scaled[i].FileSize = int64(derivativeSizeKB) * bytesPerKB
		}
	}
	return scaled
}

func normalizeActiveFilter(filter string) (string, error) {

	switch filter {
	case "":
		return constants.ActiveFilterAll, nil
	case constants.ActiveFilterTrue, constants.ActiveFilterFalse, constants.ActiveFilterAll:
		return filter, nil
	}
	return "", errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.BAD_REQUEST.Code,
		Message:     errors2.BAD_REQUEST.Message,
		Description: "active filter must be one of true, false or all",
	}, http.StatusBadRequest)
}

func applyActiveFilter(views []model.AggregatedMediaView, activeFilter string) []model.AggregatedMediaView {

	if activeFilter == constants.ActiveFilterAll {
		return views
	}
	wantActive := activeFilter == constants.ActiveFilterTrue

	filtered := views[:0]
	for _, view := range views {
		if view.Active == wantActive {
			filtered = append(filtered, view)
		}
	}
	return filtered
}

// applyDerivativeFilters drops derivative entries outside the inclusion lists.
// A row whose derivative list ends up empty stays in the result.
func applyDerivativeFilters(views []model.AggregatedMediaView, typeFilter, categoryFilter string) []model.AggregatedMediaView {

	allowedTypes := parseFilterList(typeFilter)
	allowedCategories := parseFilterList(categoryFilter)
	if allowedTypes == nil && allowedCategories == nil {
		return views
	}

	for i := range views {
		var kept []model.Derivative
		for _, d := range views[i].Derivatives {
			if allowedTypes != nil && !allowedTypes[d.Type] {
				continue
			}
			if allowedCategories != nil && !allowedCategories[d.Category] {
				continue
			}
			kept = append(kept, d)
		}
		views[i].Derivatives = kept
	}
	return views
}

func parseFilterList(filter string) map[string]bool {

	if filter == "" {
		return nil
	}
	allowed := make(map[string]bool)
	for _, code := range strings.Split(filter, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			allowed[code] = true
		}
	}
	if len(allowed) == 0 {
		return nil
	}
	return allowed
}

// sortViews orders rows by numeric subcategory id ascending, rows without a
// subcategory id last, then brings property-hero rows to the front. Both
// passes are stable so ties preserve the preceding order.
func sortViews(views []model.AggregatedMediaView) {

	sort.SliceStable(views, func(i, j int) bool {
		si, iok := subcategoryID(views[i])
		sj, jok := subcategoryID(views[j])
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return si < sj
	})

	sort.SliceStable(views, func(i, j int) bool {
		return isPropertyHero(views[i]) && !isPropertyHero(views[j])
	})
}

func subcategoryID(view model.AggregatedMediaView) (int, bool) {

	raw, ok := view.DomainFields[model.DomainFieldSubcategoryID]
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func isPropertyHero(view model.AggregatedMediaView) bool {
	return strings.EqualFold(view.DomainFields[model.DomainFieldPropertyHero], "true")
}
