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

package provider

import (
	"github.com/wso2/media-metadata-service/internal/system/config"
	"github.com/wso2/media-metadata-service/internal/system/constants"
	docprovider "github.com/wso2/media-metadata-service/internal/system/document/provider"
	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"

	"github.com/wso2/media-metadata-service/internal/media/aggregate"
	"github.com/wso2/media-metadata-service/internal/media/reconcile"
	"github.com/wso2/media-metadata-service/internal/media/replacement"
	"github.com/wso2/media-metadata-service/internal/media/service"
	"github.com/wso2/media-metadata-service/internal/media/status"
	"github.com/wso2/media-metadata-service/internal/media/store"
)

// MediaProviderInterface defines the interface for the media provider.
type MediaProviderInterface interface {
	GetMediaService() (service.MediaServiceInterface, error)
}

// MediaProvider is the default implementation of the MediaProviderInterface.
type MediaProvider struct{}

// NewMediaProvider creates a new instance of MediaProvider.
func NewMediaProvider() MediaProviderInterface {

	return &MediaProvider{}
}

// GetMediaService assembles the media service over the configured stores.
// Activity rules compile on every call; the rule list is small and the result
// reflects configuration overrides applied between requests in tests.
func (mp *MediaProvider) GetMediaService() (service.MediaServiceInterface, error) {

	mediaCfg := config.GetMMSRuntime().Config.Media

	db, err := docprovider.GetDocumentDatabase()
	if err != nil {
		return nil, errors2.NewServerError(errors2.DOC_CLIENT_INIT, err)
	}

	rules, err := status.CompileRules(mediaCfg.ActivityRules)
	if err != nil {
		return nil, err
	}

	catalog := &store.CatalogStore{}
	documents := store.NewDocumentMediaStore(db, constants.MediaCollection)
	activities := store.NewActivityLogSource(db, constants.ActivityLogCollection)

	return service.NewMediaService(
		catalog,
		documents,
		activities,
		aggregate.NewDomainMediaAggregator(catalog, documents, mediaCfg.ParamLimit),
		reconcile.NewRoomAssociationReconciler(),
		replacement.NewMediaReplacementSelector(mediaCfg.ReplacementProviders),
		status.NewActivityStatusResolver(rules),
	), nil
}
