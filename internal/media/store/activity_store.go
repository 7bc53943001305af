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

type ActivityLogSourceInterface interface {
	FindEntries(fileNames []string) ([]model.ActivityLogEntry, error)
}

// ActivityLogSource reads the append-only activity log collection written by
// upstream pipeline stages. Read-only here.
type ActivityLogSource struct {
	Collection *mongo.Collection
}

// NewActivityLogSource creates a new source over the given collection.
func NewActivityLogSource(db *mongo.Database, collectionName string) *ActivityLogSource {
	return &ActivityLogSource{
		Collection: db.Collection(collectionName),
	}
}

// FindEntries returns every log entry recorded for the given file names,
// oldest first.
func (s *ActivityLogSource) FindEntries(fileNames []string) ([]model.ActivityLogEntry, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger := log.GetLogger()
	filter := bson.M{"media_file_name": bson.M{"$in": fileNames}}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := s.Collection.Find(ctx, filter, opts)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed fetching activity log entries for %d file name(s)", len(fileNames))
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ACTIVITY_LOG.Code,
			Message:     errors2.FETCH_ACTIVITY_LOG.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var entries []model.ActivityLogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		errorMsg := "Failed decoding activity log entries"
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ACTIVITY_LOG.Code,
			Message:     errors2.FETCH_ACTIVITY_LOG.Message,
			Description: errorMsg,
		}, err)
	}
	return entries, nil
}
