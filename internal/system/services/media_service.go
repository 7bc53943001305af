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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/media-metadata-service/internal/media/handler"
	"github.com/wso2/media-metadata-service/internal/system/authn"
)

// MediaService registers the media metadata routes.
type MediaService struct {
	mediaHandler *handler.MediaHandler
}

// NewMediaService creates the media service and mounts its routes.
func NewMediaService(mux *http.ServeMux, apiBasePath string) *MediaService {

	instance := &MediaService{
		mediaHandler: handler.NewMediaHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

// RegisterRoutes mounts the media endpoints on the shared mux. Mutating
// routes require a bearer token; reads stay open for internal consumers.
func (s *MediaService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/media/records/{guid}", apiBasePath), s.mediaHandler.GetMediaRecord)
	mux.Handle(fmt.Sprintf("POST %s/media/records", apiBasePath),
		authn.Middleware(http.HandlerFunc(s.mediaHandler.SaveMediaRecord)))
	mux.Handle(fmt.Sprintf("DELETE %s/media/records/{guid}", apiBasePath),
		authn.Middleware(http.HandlerFunc(s.mediaHandler.DeleteMediaRecord)))
	mux.Handle(fmt.Sprintf("PUT %s/media/{mediaId}/rooms", apiBasePath),
		authn.Middleware(http.HandlerFunc(s.mediaHandler.UpdateRoomAssociations)))
	mux.HandleFunc(fmt.Sprintf("POST %s/media/status", apiBasePath), s.mediaHandler.ResolveMediaStatus)
	mux.HandleFunc(fmt.Sprintf("GET %s/media/{domain}/{domainId}", apiBasePath), s.mediaHandler.GetDomainMedia)
}
