package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"
	"github.com/wso2/media-metadata-service/internal/system/log"

	"github.com/wso2/media-metadata-service/internal/media/model"
)

type DocumentMediaStoreInterface interface {
	LoadByDomainID(domain, domainID string) ([]model.DocumentMediaRow, error)
	LoadByGUID(guid string) (*model.DocumentMediaRow, error)
	FindCandidates(fileName string) ([]model.CandidateMedia, error)
	Save(record model.DocumentMediaRow) error
	Delete(guid string) error
}

// DocumentMediaStore handles MongoDB operations for media documents.
type DocumentMediaStore struct {
	Collection *mongo.Collection
}

// NewDocumentMediaStore creates a new store over the given collection.
func NewDocumentMediaStore(db *mongo.Database, collectionName string) *DocumentMediaStore {
	return &DocumentMediaStore{
		Collection: db.Collection(collectionName),
	}
}

// LoadByDomainID retrieves all media documents for a domain entity in one call.
func (s *DocumentMediaStore) LoadByDomainID(domain, domainID string) ([]model.DocumentMediaRow, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger := log.GetLogger()
	filter := bson.M{"domain": domain, "domain_id": domainID}

	cursor, err := s.Collection.Find(ctx, filter)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed loading media documents for domain: %s, domain id: %s", domain, domainID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOAD_DOCUMENT_MEDIA.Code,
			Message:     errors2.LOAD_DOCUMENT_MEDIA.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var rows []model.DocumentMediaRow
	if err := cursor.All(ctx, &rows); err != nil {
		errorMsg := fmt.Sprintf("Failed decoding media documents for domain: %s, domain id: %s", domain, domainID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOAD_DOCUMENT_MEDIA.Code,
			Message:     errors2.LOAD_DOCUMENT_MEDIA.Message,
			Description: errorMsg,
		}, err)
	}
	return rows, nil
}

// LoadByGUID retrieves one media document. A missing document is a normal
// outcome and returns nil without an error.
func (s *DocumentMediaStore) LoadByGUID(guid string) (*model.DocumentMediaRow, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var row model.DocumentMediaRow
	err := s.Collection.FindOne(ctx, bson.M{"guid": guid}).Decode(&row)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		errorMsg := fmt.Sprintf("Failed loading media document with guid: %s", guid)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOAD_DOCUMENT_MEDIA.Code,
			Message:     errors2.LOAD_DOCUMENT_MEDIA.Message,
			Description: errorMsg,
		}, err)
	}
	return &row, nil
}

// FindCandidates returns every physical copy stored for a logical media file
// name, projected to the candidate fields the replacement selector needs.
func (s *DocumentMediaStore) FindCandidates(fileName string) ([]model.CandidateMedia, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger := log.GetLogger()
	cursor, err := s.Collection.Find(ctx, bson.M{"file_name": fileName})
	if err != nil {
		errorMsg := fmt.Sprintf("Failed loading candidate copies for file name: %s", fileName)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOAD_DOCUMENT_MEDIA.Code,
			Message:     errors2.LOAD_DOCUMENT_MEDIA.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var rows []model.DocumentMediaRow
	if err := cursor.All(ctx, &rows); err != nil {
		errorMsg := fmt.Sprintf("Failed decoding candidate copies for file name: %s", fileName)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOAD_DOCUMENT_MEDIA.Code,
			Message:     errors2.LOAD_DOCUMENT_MEDIA.Message,
			Description: errorMsg,
		}, err)
	}

	candidates := make([]model.CandidateMedia, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, model.CandidateMedia{
			ID:          row.GUID,
			Active:      row.Active,
			LastUpdated: row.LastUpdated,
			DomainID:    row.DomainID,
		})
	}
	return candidates, nil
}

// Save upserts a media document keyed by guid.
func (s *DocumentMediaStore) Save(record model.DocumentMediaRow) error {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"guid": record.GUID}
	update := bson.M{"$set": record}
	opts := options.Update().SetUpsert(true)

	_, err := s.Collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed saving media document with guid: %s", record.GUID)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SAVE_DOCUMENT_MEDIA.Code,
			Message:     errors2.SAVE_DOCUMENT_MEDIA.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// Delete removes a media document. Deleting a missing document is not an error.
func (s *DocumentMediaStore) Delete(guid string) error {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.Collection.DeleteOne(ctx, bson.M{"guid": guid})
	if err != nil {
		errorMsg := fmt.Sprintf("Failed deleting media document with guid: %s", guid)
		log.GetLogger().Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_DOCUMENT_MEDIA.Code,
			Message:     errors2.DELETE_DOCUMENT_MEDIA.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}
