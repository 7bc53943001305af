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

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wso2/media-metadata-service/internal/system/constants"
	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"
	"github.com/wso2/media-metadata-service/internal/system/pagination"
	"github.com/wso2/media-metadata-service/internal/system/utils"

	"github.com/wso2/media-metadata-service/internal/media/aggregate"
	"github.com/wso2/media-metadata-service/internal/media/model"
	"github.com/wso2/media-metadata-service/internal/media/provider"
	"github.com/wso2/media-metadata-service/internal/media/store"
)

// MediaHandler translates HTTP requests into media service calls.
type MediaHandler struct{}

// NewMediaHandler creates a new media handler.
func NewMediaHandler() *MediaHandler {

	return &MediaHandler{}
}

type mediaListResponse struct {
	TotalCount int                         `json:"total_count"`
	Count      int                         `json:"count"`
	Media      []model.AggregatedMediaView `json:"media"`
}

type roomAssociationRequest struct {
	Rooms    []model.RoomAssociation `json:"rooms"`
	Caller   string                  `json:"caller,omitempty"`
	Location string                  `json:"location,omitempty"`
}

type statusRequest struct {
	FileNames []string `json:"file_names"`
}

// GetDomainMedia handles aggregated media listing for one domain entity.
func (mh *MediaHandler) GetDomainMedia(w http.ResponseWriter, r *http.Request) {

	domain := r.PathValue("domain")
	domainID := r.PathValue("domainId")

	page, err := pagination.ParsePage(r)
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}
	query := aggregate.MediaQuery{
		ActiveFilter:             r.URL.Query().Get(constants.ActiveFilterParam),
		DerivativeTypeFilter:     r.URL.Query().Get(constants.DerivativeTypeParam),
		DerivativeCategoryFilter: r.URL.Query().Get(constants.DerivativeCategoryParam),
		Page:                     page,
	}

	mediaService, err := provider.NewMediaProvider().GetMediaService()
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}

	media, total, err := mediaService.GetMedia(domain, domainID, query)
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, mediaListResponse{
		TotalCount: total,
		Count:      len(media),
		Media:      media,
	})
}

// GetMediaRecord handles retrieval of one media document by guid.
func (mh *MediaHandler) GetMediaRecord(w http.ResponseWriter, r *http.Request) {

	mediaService, err := provider.NewMediaProvider().GetMediaService()
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}

	record, err := mediaService.GetMediaByGUID(r.PathValue("guid"))
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, record)
}

// SaveMediaRecord handles creation or replacement of a media document.
func (mh *MediaHandler) SaveMediaRecord(w http.ResponseWriter, r *http.Request) {

	var record model.DocumentMediaRow
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		utils.HandleHTTPError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	mediaService, err := provider.NewMediaProvider().GetMediaService()
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}

	saved, err := mediaService.SaveMedia(record)
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, saved)
}

// DeleteMediaRecord handles deletion of one media document by guid.
func (mh *MediaHandler) DeleteMediaRecord(w http.ResponseWriter, r *http.Request) {

	mediaService, err := provider.NewMediaProvider().GetMediaService()
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}

	if err := mediaService.DeleteMedia(r.PathValue("guid")); err != nil {
		utils.HandleHTTPError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateRoomAssociations handles replacement of the room association set of a
// catalog media item.
func (mh *MediaHandler) UpdateRoomAssociations(w http.ResponseWriter, r *http.Request) {

	mediaID, err := strconv.Atoi(r.PathValue("mediaId"))
	if err != nil {
		utils.HandleHTTPError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "media id must be an integer",
		}, http.StatusBadRequest))
		return
	}

	var request roomAssociationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleHTTPError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	mediaService, err := provider.NewMediaProvider().GetMediaService()
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}

	result, err := mediaService.UpdateRoomAssociations(mediaID, request.Rooms, store.ChangeMeta{
		Caller:   request.Caller,
		Location: request.Location,
	})
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// ResolveMediaStatus handles batch lifecycle status resolution by file name.
func (mh *MediaHandler) ResolveMediaStatus(w http.ResponseWriter, r *http.Request) {

	var request statusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleHTTPError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	mediaService, err := provider.NewMediaProvider().GetMediaService()
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}

	statuses, err := mediaService.ResolveMediaStatus(request.FileNames)
	if err != nil {
		utils.HandleHTTPError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, statuses)
}
