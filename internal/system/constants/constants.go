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

package constants

const (
	// ApiBasePath is the base path for all media metadata APIs.
	ApiBasePath = "/api/v1"

	// MediaCollection is the MongoDB collection holding media documents.
	MediaCollection = "media_records"

	// ActivityLogCollection is the MongoDB collection holding the append-only activity log.
	ActivityLogCollection = "media_activity_log"

	// ActiveStatusCode is the single-character catalog status marking a media row active.
	ActiveStatusCode = "A"

	// ActiveFilterTrue, ActiveFilterFalse and ActiveFilterAll are the accepted
	// values of the active query filter.
	ActiveFilterTrue  = "true"
	ActiveFilterFalse = "false"
	ActiveFilterAll   = "all"

	// DefaultParamLimit caps the number of bound parameters per catalog IN-clause.
	DefaultParamLimit = 1000

	// StatusNotFound is the resolved status when no activity log entry matches a rule.
	StatusNotFound = "NOT_FOUND"

	// WildcardPattern matches any media type in an activity rule.
	WildcardPattern = ".*"

	// Query parameter names.
	ActiveFilterParam       = "active"
	DerivativeTypeParam     = "derivativeType"
	DerivativeCategoryParam = "derivativeCategory"
	PageIndexParam          = "page"
	PageSizeParam           = "limit"
)
