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

package errors

const errorPrefix = "MMS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	DOC_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Unable to initialize document store client.",
	}

	LOOKUP_MEDIA_IDS = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while looking up catalog media ids.",
	}

	LOOKUP_MEDIA_ROWS = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while looking up catalog media rows.",
	}

	COUNT_MEDIA = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while counting catalog media.",
	}

	LOOKUP_ROOM_ASSOCIATIONS = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while fetching room associations.",
	}

	ADD_CATALOG_ASSOCIATION = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while adding catalog association.",
	}

	REMOVE_CATALOG_ASSOCIATION = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while removing catalog association.",
	}

	ADD_PARAGRAPH_ASSOCIATION = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while adding paragraph association.",
	}

	REMOVE_PARAGRAPH_ASSOCIATION = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while removing paragraph association.",
	}

	LOAD_DOCUMENT_MEDIA = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while loading media documents.",
	}

	SAVE_DOCUMENT_MEDIA = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while saving media document.",
	}

	DELETE_DOCUMENT_MEDIA = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while deleting media document.",
	}

	FETCH_ACTIVITY_LOG = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while fetching activity log entries.",
	}

	ACTIVITY_RULE_COMPILE = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while compiling activity status rules.",
	}

	AGGREGATE_MEDIA = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while aggregating media records.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15017",
		Message: "Parsing token failed.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Authorization failure. Authorization information was invalid or missing from your request.",
	}

	MEDIA_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Media not found.",
		Description: "No media record found for the given identifier.",
	}

	DUPLICATE_ROOM_ASSOCIATION = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Duplicate room association.",
		Description: "The same room id appears more than once in the association set.",
	}

	INVALID_PAGINATION = ErrorMessage{
		Code:        errorPrefix + "11005",
		Message:     "Invalid pagination parameters.",
		Description: "page and limit must be supplied together and must be non-negative.",
	}

	INVALID_MEDIA_PAYLOAD = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "Media payload validation failed.",
	}
)
