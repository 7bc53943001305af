package store

import (
	"fmt"

	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"
	"github.com/wso2/media-metadata-service/internal/system/log"

	"github.com/wso2/media-metadata-service/internal/media/model"

	"github.com/wso2/media-metadata-service/internal/system/database/provider"
)

// Stored procedure names exposed by the legacy catalog. The catalog schema is
// reachable only through these entry points.
const (
	procMediaIDsByDomain     = "sp_media_ids_by_domain"
	procMediaRowsByIDs       = "sp_media_rows_by_ids"
	procCountMediaByDomain   = "sp_count_media_by_domain"
	procRoomAssociations     = "sp_room_associations_by_media"
	procAddCatalogAssoc      = "sp_add_catalog_association"
	procRemoveCatalogAssoc   = "sp_remove_catalog_association"
	procAddParagraphAssoc    = "sp_add_paragraph_association"
	procRemoveParagraphAssoc = "sp_remove_paragraph_association"
)

// ChangeMeta carries caller and location metadata required by the catalog's
// mutation procedures for auditing.
type ChangeMeta struct {
	Caller   string
	Location string
}

type CatalogStoreInterface interface {
	LookupMediaIDs(domainID string) ([]int, error)
	LookupMediaRows(domainID string, mediaIDs []int) ([]model.RelationalMediaRow, error)
	CountMedia(domainID, activeFilter, categoryFilter string) (int, error)
	LookupRoomAssociations(mediaID int) ([]model.RoomAssociation, error)
	AddCatalogAssociation(mediaID int, assoc model.RoomAssociation, meta ChangeMeta) error
	RemoveCatalogAssociation(mediaID int, assoc model.RoomAssociation, meta ChangeMeta) error
	AddParagraphAssociation(mediaID int, assoc model.RoomAssociation, meta ChangeMeta) error
	RemoveParagraphAssociation(mediaID int, assoc model.RoomAssociation, meta ChangeMeta) error
}

// CatalogStore is the stored-procedure adapter over the relational catalog.
// Store failures are wrapped and rethrown uninterpreted; no retries here.
type CatalogStore struct{}

// LookupMediaIDs returns the ordered media id set for a domain entity.
func (s *CatalogStore) LookupMediaIDs(domainID string) ([]int, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for looking up media ids for domain id: %s", domainID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOOKUP_MEDIA_IDS.Code,
			Message:     errors2.LOOKUP_MEDIA_IDS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.CallProcedure(procMediaIDsByDomain, domainID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed looking up media ids for domain id: %s", domainID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOOKUP_MEDIA_IDS.Code,
			Message:     errors2.LOOKUP_MEDIA_IDS.Message,
			Description: errorMsg,
		}, err)
	}

	var ids []int
	for _, row := range results {
		ids = append(ids, toInt(row["media_id"]))
	}
	return ids, nil
}

// LookupMediaRows fetches catalog rows for one batch of media ids. Callers
// enforce the parameter-count bound; the id list is passed as an array
// argument to the procedure.
func (s *CatalogStore) LookupMediaRows(domainID string, mediaIDs []int) ([]model.RelationalMediaRow, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for looking up media rows for domain id: %s", domainID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOOKUP_MEDIA_ROWS.Code,
			Message:     errors2.LOOKUP_MEDIA_ROWS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.CallProcedure(procMediaRowsByIDs, domainID, idListArgument(mediaIDs))
	if err != nil {
		errorMsg := fmt.Sprintf("Failed looking up media rows for domain id: %s", domainID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOOKUP_MEDIA_ROWS.Code,
			Message:     errors2.LOOKUP_MEDIA_ROWS.Message,
			Description: errorMsg,
		}, err)
	}

	rows := make([]model.RelationalMediaRow, 0, len(results))
	for _, row := range results {
		rows = append(rows, scanMediaRow(row))
	}
	return rows, nil
}

// CountMedia runs the independent count query scoped by the same active and
// category filters the aggregation applies.
func (s *CatalogStore) CountMedia(domainID, activeFilter, categoryFilter string) (int, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for counting media for domain id: %s", domainID)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.COUNT_MEDIA.Code,
			Message:     errors2.COUNT_MEDIA.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.CallProcedure(procCountMediaByDomain, domainID, activeFilter, categoryFilter)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed counting media for domain id: %s", domainID)
		logger.Debug(errorMsg, log.Error(err))
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.COUNT_MEDIA.Code,
			Message:     errors2.COUNT_MEDIA.Message,
			Description: errorMsg,
		}, err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return toInt(results[0]["media_count"]), nil
}

// LookupRoomAssociations returns the room association set currently stored
// for a media item.
func (s *CatalogStore) LookupRoomAssociations(mediaID int) ([]model.RoomAssociation, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching room associations for media id: %d", mediaID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOOKUP_ROOM_ASSOCIATIONS.Code,
			Message:     errors2.LOOKUP_ROOM_ASSOCIATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.CallProcedure(procRoomAssociations, mediaID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed fetching room associations for media id: %d", mediaID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.LOOKUP_ROOM_ASSOCIATIONS.Code,
			Message:     errors2.LOOKUP_ROOM_ASSOCIATIONS.Message,
			Description: errorMsg,
		}, err)
	}

	var associations []model.RoomAssociation
	for _, row := range results {
		associations = append(associations, model.RoomAssociation{
			RoomID: toInt(row["room_id"]),
			IsHero: toBool(row["is_hero"]),
		})
	}
	return associations, nil
}

// AddCatalogAssociation links a room to a media item in the catalog.
func (s *CatalogStore) AddCatalogAssociation(mediaID int, assoc model.RoomAssociation, meta ChangeMeta) error {
	return s.mutateAssociation(procAddCatalogAssoc, errors2.ADD_CATALOG_ASSOCIATION, mediaID, assoc, meta)
}

// RemoveCatalogAssociation unlinks a room from a media item in the catalog.
func (s *CatalogStore) RemoveCatalogAssociation(mediaID int, assoc model.RoomAssociation, meta ChangeMeta) error {
	return s.mutateAssociation(procRemoveCatalogAssoc, errors2.REMOVE_CATALOG_ASSOCIATION, mediaID, assoc, meta)
}

// AddParagraphAssociation creates the descriptive-paragraph record for a room
// whose media became hero.
func (s *CatalogStore) AddParagraphAssociation(mediaID int, assoc model.RoomAssociation, meta ChangeMeta) error {
	return s.mutateAssociation(procAddParagraphAssoc, errors2.ADD_PARAGRAPH_ASSOCIATION, mediaID, assoc, meta)
}

// RemoveParagraphAssociation drops the descriptive-paragraph record for a room
// whose media stopped being hero.
func (s *CatalogStore) RemoveParagraphAssociation(mediaID int, assoc model.RoomAssociation, meta ChangeMeta) error {
	return s.mutateAssociation(procRemoveParagraphAssoc, errors2.REMOVE_PARAGRAPH_ASSOCIATION, mediaID, assoc, meta)
}

func (s *CatalogStore) mutateAssociation(proc string, msg errors2.ErrorMessage, mediaID int,
	assoc model.RoomAssociation, meta ChangeMeta) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for %s on media id: %d", proc, mediaID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        msg.Code,
			Message:     msg.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	_, err = dbClient.CallProcedure(proc, mediaID, assoc.RoomID, assoc.IsHero, meta.Caller, meta.Location)
	if err != nil {
		errorMsg := fmt.Sprintf("Procedure %s failed for media id: %d, room id: %d", proc, mediaID, assoc.RoomID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        msg.Code,
			Message:     msg.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}
