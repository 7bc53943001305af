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

package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"
	"github.com/wso2/media-metadata-service/internal/system/log"

	"github.com/wso2/media-metadata-service/internal/media/aggregate"
	"github.com/wso2/media-metadata-service/internal/media/model"
	"github.com/wso2/media-metadata-service/internal/media/reconcile"
	"github.com/wso2/media-metadata-service/internal/media/replacement"
	"github.com/wso2/media-metadata-service/internal/media/status"
	"github.com/wso2/media-metadata-service/internal/media/store"
)

// MediaServiceInterface defines the media metadata operations exposed over the
// API surface.
type MediaServiceInterface interface {
	GetMedia(domain, domainID string, query aggregate.MediaQuery) ([]model.AggregatedMediaView, int, error)
	GetMediaByGUID(guid string) (*model.DocumentMediaRow, error)
	SaveMedia(record model.DocumentMediaRow) (*model.DocumentMediaRow, error)
	DeleteMedia(guid string) error
	UpdateRoomAssociations(mediaID int, requested []model.RoomAssociation, meta store.ChangeMeta) (model.ReconciliationResult, error)
	ResolveMediaStatus(fileNames []string) (map[string]model.ResolvedStatus, error)
}

// MediaService wires the aggregation, reconciliation, replacement and status
// components to the two stores. All collaborators are injected so tests can
// mock them.
type MediaService struct {
	catalog    store.CatalogStoreInterface
	documents  store.DocumentMediaStoreInterface
	activities store.ActivityLogSourceInterface
	aggregator aggregate.DomainMediaAggregatorInterface
	reconciler reconcile.RoomAssociationReconcilerInterface
	selector   replacement.MediaReplacementSelectorInterface
	resolver   status.ActivityStatusResolverInterface
}

// NewMediaService creates a media service over the given collaborators.
func NewMediaService(catalog store.CatalogStoreInterface, documents store.DocumentMediaStoreInterface,
	activities store.ActivityLogSourceInterface, aggregator aggregate.DomainMediaAggregatorInterface,
	reconciler reconcile.RoomAssociationReconcilerInterface, selector replacement.MediaReplacementSelectorInterface,
	resolver status.ActivityStatusResolverInterface) MediaServiceInterface {

	return &MediaService{
		catalog:    catalog,
		documents:  documents,
		activities: activities,
		aggregator: aggregator,
		reconciler: reconciler,
		selector:   selector,
		resolver:   resolver,
	}
}

// GetMedia returns the merged media page for a domain entity.
func (s *MediaService) GetMedia(domain, domainID string, query aggregate.MediaQuery) ([]model.AggregatedMediaView, int, error) {

	return s.aggregator.GetByDomainID(domain, domainID, query)
}

// GetMediaByGUID returns one media document or a not-found client error.
func (s *MediaService) GetMediaByGUID(guid string) (*model.DocumentMediaRow, error) {

	record, err := s.documents.LoadByGUID(guid)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.MEDIA_NOT_FOUND.Code,
			Message:     errors2.MEDIA_NOT_FOUND.Message,
			Description: fmt.Sprintf("No media record exists with guid: %s", guid),
		}, http.StatusNotFound)
	}
	return record, nil
}

// SaveMedia persists an incoming media record. When the record's provider tag
// is on the replacement allow-list the record replaces the best existing copy
// of the same file name instead of being stored as a new document.
func (s *MediaService) SaveMedia(record model.DocumentMediaRow) (*model.DocumentMediaRow, error) {

	logger := log.GetLogger()
	if record.FileName == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_MEDIA_PAYLOAD.Code,
			Message:     errors2.INVALID_MEDIA_PAYLOAD.Message,
			Description: "Media record must carry a file name",
		}, http.StatusBadRequest)
	}

	if record.GUID == "" && s.selector.IsReplacement(record.Provider) {
		candidates, err := s.documents.FindCandidates(record.FileName)
		if err != nil {
			return nil, err
		}
		best, err := s.selector.SelectBest(candidates)
		if err != nil {
			return nil, errors2.NewServerError(errors2.SAVE_DOCUMENT_MEDIA, err)
		}
		if best != nil {
			record.GUID = best.ID
			logger.Debug("Replacing existing media record",
				log.String("guid", best.ID), log.String("file_name", record.FileName))
		}
	}
	if record.GUID == "" {
		record.GUID = uuid.New().String()
	}
	record.LastUpdated = time.Now().UTC()

	if err := s.documents.Save(record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteMedia removes one media document, failing with a not-found client
// error when no such document exists.
func (s *MediaService) DeleteMedia(guid string) error {

	record, err := s.documents.LoadByGUID(guid)
	if err != nil {
		return err
	}
	if record == nil {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.MEDIA_NOT_FOUND.Code,
			Message:     errors2.MEDIA_NOT_FOUND.Message,
			Description: fmt.Sprintf("No media record exists with guid: %s", guid),
		}, http.StatusNotFound)
	}
	return s.documents.Delete(guid)
}

// UpdateRoomAssociations reconciles the requested room association set against
// the stored one and applies the resulting change-sets through the catalog's
// mutation procedures. Removals run before additions so a replaced hero never
// has two paragraphs in flight.
func (s *MediaService) UpdateRoomAssociations(mediaID int, requested []model.RoomAssociation,
	meta store.ChangeMeta) (model.ReconciliationResult, error) {

	current, err := s.catalog.LookupRoomAssociations(mediaID)
	if err != nil {
		return model.ReconciliationResult{}, err
	}

	result, err := s.reconciler.Reconcile(requested, current)
	if err != nil {
		return model.ReconciliationResult{}, err
	}
	if result.IsEmpty() {
		return result, nil
	}

	for _, assoc := range result.RemoveParagraph {
		if err := s.catalog.RemoveParagraphAssociation(mediaID, assoc, meta); err != nil {
			return model.ReconciliationResult{}, err
		}
	}
	for _, assoc := range result.RemoveCatalog {
		if err := s.catalog.RemoveCatalogAssociation(mediaID, assoc, meta); err != nil {
			return model.ReconciliationResult{}, err
		}
	}
	for _, assoc := range result.AddCatalog {
		if err := s.catalog.AddCatalogAssociation(mediaID, assoc, meta); err != nil {
			return model.ReconciliationResult{}, err
		}
	}
	for _, assoc := range result.AddParagraph {
		if err := s.catalog.AddParagraphAssociation(mediaID, assoc, meta); err != nil {
			return model.ReconciliationResult{}, err
		}
	}

	log.GetLogger().Info("Applied room association changes",
		log.Int("media_id", mediaID),
		log.Int("added", len(result.AddCatalog)),
		log.Int("removed", len(result.RemoveCatalog)))
	return result, nil
}

// ResolveMediaStatus derives the lifecycle status for each given file name
// from the activity log.
func (s *MediaService) ResolveMediaStatus(fileNames []string) (map[string]model.ResolvedStatus, error) {

	entries, err := s.activities.FindEntries(fileNames)
	if err != nil {
		return nil, err
	}
	return s.resolver.ResolveBatch(fileNames, entries), nil
}
