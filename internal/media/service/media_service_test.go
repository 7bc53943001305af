package service

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wso2/media-metadata-service/internal/media/aggregate"
	"github.com/wso2/media-metadata-service/internal/media/model"
	"github.com/wso2/media-metadata-service/internal/media/reconcile"
	"github.com/wso2/media-metadata-service/internal/media/replacement"
	"github.com/wso2/media-metadata-service/internal/media/status"
	"github.com/wso2/media-metadata-service/internal/media/store"
	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"
	"github.com/wso2/media-metadata-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) LookupMediaIDs(domainID string) ([]int, error) {
	args := m.Called(domainID)
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockCatalogStore) LookupMediaRows(domainID string, mediaIDs []int) ([]model.RelationalMediaRow, error) {
	args := m.Called(domainID, mediaIDs)
	return args.Get(0).([]model.RelationalMediaRow), args.Error(1)
}

func (m *MockCatalogStore) CountMedia(domainID, activeFilter, categoryFilter string) (int, error) {
	args := m.Called(domainID, activeFilter, categoryFilter)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogStore) LookupRoomAssociations(mediaID int) ([]model.RoomAssociation, error) {
	args := m.Called(mediaID)
	return args.Get(0).([]model.RoomAssociation), args.Error(1)
}

func (m *MockCatalogStore) AddCatalogAssociation(mediaID int, assoc model.RoomAssociation, meta store.ChangeMeta) error {
	return m.Called(mediaID, assoc, meta).Error(0)
}

func (m *MockCatalogStore) RemoveCatalogAssociation(mediaID int, assoc model.RoomAssociation, meta store.ChangeMeta) error {
	return m.Called(mediaID, assoc, meta).Error(0)
}

func (m *MockCatalogStore) AddParagraphAssociation(mediaID int, assoc model.RoomAssociation, meta store.ChangeMeta) error {
	return m.Called(mediaID, assoc, meta).Error(0)
}

func (m *MockCatalogStore) RemoveParagraphAssociation(mediaID int, assoc model.RoomAssociation, meta store.ChangeMeta) error {
	return m.Called(mediaID, assoc, meta).Error(0)
}

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) LoadByDomainID(domain, domainID string) ([]model.DocumentMediaRow, error) {
	args := m.Called(domain, domainID)
	return args.Get(0).([]model.DocumentMediaRow), args.Error(1)
}

func (m *MockDocumentStore) LoadByGUID(guid string) (*model.DocumentMediaRow, error) {
	args := m.Called(guid)
	row, _ := args.Get(0).(*model.DocumentMediaRow)
	return row, args.Error(1)
}

func (m *MockDocumentStore) FindCandidates(fileName string) ([]model.CandidateMedia, error) {
	args := m.Called(fileName)
	return args.Get(0).([]model.CandidateMedia), args.Error(1)
}

func (m *MockDocumentStore) Save(record model.DocumentMediaRow) error {
	return m.Called(record).Error(0)
}

func (m *MockDocumentStore) Delete(guid string) error {
	return m.Called(guid).Error(0)
}

type MockActivityLogSource struct {
	mock.Mock
}

func (m *MockActivityLogSource) FindEntries(fileNames []string) ([]model.ActivityLogEntry, error) {
	args := m.Called(fileNames)
	return args.Get(0).([]model.ActivityLogEntry), args.Error(1)
}

func newTestService(catalog *MockCatalogStore, documents *MockDocumentStore,
	activities *MockActivityLogSource) MediaServiceInterface {

	rules, _ := status.CompileRules(nil)
	return NewMediaService(
		catalog,
		documents,
		activities,
		aggregate.NewDomainMediaAggregator(catalog, documents, 0),
		reconcile.NewRoomAssociationReconciler(),
		replacement.NewMediaReplacementSelector("pipeline,ingest"),
		status.NewActivityStatusResolver(rules),
	)
}

func TestGetMediaByGUIDNotFound(t *testing.T) {
	documents := new(MockDocumentStore)
	documents.On("LoadByGUID", "missing").Return(nil, nil)

	svc := newTestService(new(MockCatalogStore), documents, new(MockActivityLogSource))
	record, err := svc.GetMediaByGUID("missing")

	assert.Nil(t, record)
	require.Error(t, err)
	clientErr, ok := err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, errors2.MEDIA_NOT_FOUND.Code, clientErr.Code)
}

func TestGetMediaByGUIDFound(t *testing.T) {
	documents := new(MockDocumentStore)
	want := &model.DocumentMediaRow{GUID: "g-1", FileName: "a.jpg"}
	documents.On("LoadByGUID", "g-1").Return(want, nil)

	svc := newTestService(new(MockCatalogStore), documents, new(MockActivityLogSource))
	record, err := svc.GetMediaByGUID("g-1")

	require.NoError(t, err)
	assert.Equal(t, want, record)
}

func TestSaveMediaNewRecordGetsGUID(t *testing.T) {
	documents := new(MockDocumentStore)
	documents.On("Save", mock.MatchedBy(func(r model.DocumentMediaRow) bool {
		return r.GUID != "" && r.FileName == "a.jpg" && !r.LastUpdated.IsZero()
	})).Return(nil)

	svc := newTestService(new(MockCatalogStore), documents, new(MockActivityLogSource))
	saved, err := svc.SaveMedia(model.DocumentMediaRow{FileName: "a.jpg", Provider: "other"})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.GUID)
	// Providers off the allow-list never trigger a candidate lookup.
	documents.AssertNotCalled(t, "FindCandidates")
}

func TestSaveMediaReplacementReusesBestGUID(t *testing.T) {
	documents := new(MockDocumentStore)
	documents.On("FindCandidates", "a.jpg").Return([]model.CandidateMedia{
		{ID: "g-old", Active: "true", LastUpdated: time.Unix(100, 0)},
		{ID: "g-newer", Active: "true", LastUpdated: time.Unix(200, 0)},
		{ID: "g-inactive", Active: "false", LastUpdated: time.Unix(300, 0)},
	}, nil)
	documents.On("Save", mock.MatchedBy(func(r model.DocumentMediaRow) bool {
		return r.GUID == "g-newer"
	})).Return(nil)

	svc := newTestService(new(MockCatalogStore), documents, new(MockActivityLogSource))
	saved, err := svc.SaveMedia(model.DocumentMediaRow{FileName: "a.jpg", Provider: "Pipeline"})

	require.NoError(t, err)
	assert.Equal(t, "g-newer", saved.GUID)
}

func TestSaveMediaReplacementWithoutExistingCopies(t *testing.T) {
	documents := new(MockDocumentStore)
	documents.On("FindCandidates", "a.jpg").Return([]model.CandidateMedia{}, nil)
	documents.On("Save", mock.Anything).Return(nil)

	svc := newTestService(new(MockCatalogStore), documents, new(MockActivityLogSource))
	saved, err := svc.SaveMedia(model.DocumentMediaRow{FileName: "a.jpg", Provider: "pipeline"})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.GUID)
}

func TestSaveMediaRejectsMissingFileName(t *testing.T) {
	svc := newTestService(new(MockCatalogStore), new(MockDocumentStore), new(MockActivityLogSource))

	_, err := svc.SaveMedia(model.DocumentMediaRow{Provider: "pipeline"})

	require.Error(t, err)
	clientErr, ok := err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, errors2.INVALID_MEDIA_PAYLOAD.Code, clientErr.Code)
}

func TestDeleteMediaNotFound(t *testing.T) {
	documents := new(MockDocumentStore)
	documents.On("LoadByGUID", "missing").Return(nil, nil)

	svc := newTestService(new(MockCatalogStore), documents, new(MockActivityLogSource))
	err := svc.DeleteMedia("missing")

	require.Error(t, err)
	documents.AssertNotCalled(t, "Delete")
}

func TestDeleteMediaRemovesExistingRecord(t *testing.T) {
	documents := new(MockDocumentStore)
	documents.On("LoadByGUID", "g-1").Return(&model.DocumentMediaRow{GUID: "g-1"}, nil)
	documents.On("Delete", "g-1").Return(nil)

	svc := newTestService(new(MockCatalogStore), documents, new(MockActivityLogSource))

	require.NoError(t, svc.DeleteMedia("g-1"))
	documents.AssertCalled(t, "Delete", "g-1")
}

func TestUpdateRoomAssociationsAppliesChangeSets(t *testing.T) {
	catalog := new(MockCatalogStore)
	meta := store.ChangeMeta{Caller: "tester", Location: "unit"}

	// Stored: room 1 hero, room 2 plain. Requested: room 2 hero, room 3 plain.
	catalog.On("LookupRoomAssociations", 77).Return([]model.RoomAssociation{
		{RoomID: 1, IsHero: true},
		{RoomID: 2},
	}, nil)
	catalog.On("RemoveParagraphAssociation", 77, model.RoomAssociation{RoomID: 1, IsHero: true}, meta).Return(nil)
	catalog.On("RemoveCatalogAssociation", 77, model.RoomAssociation{RoomID: 1, IsHero: true}, meta).Return(nil)
	catalog.On("AddCatalogAssociation", 77, model.RoomAssociation{RoomID: 3}, meta).Return(nil)
	catalog.On("AddParagraphAssociation", 77, model.RoomAssociation{RoomID: 2, IsHero: true}, meta).Return(nil)

	svc := newTestService(catalog, new(MockDocumentStore), new(MockActivityLogSource))
	result, err := svc.UpdateRoomAssociations(77, []model.RoomAssociation{
		{RoomID: 2, IsHero: true},
		{RoomID: 3},
	}, meta)

	require.NoError(t, err)
	assert.Len(t, result.AddCatalog, 1)
	assert.Len(t, result.RemoveCatalog, 1)
	assert.Len(t, result.AddParagraph, 1)
	assert.Len(t, result.RemoveParagraph, 1)
	catalog.AssertExpectations(t)
}

func TestUpdateRoomAssociationsNoChanges(t *testing.T) {
	catalog := new(MockCatalogStore)
	current := []model.RoomAssociation{{RoomID: 1, IsHero: true}}
	catalog.On("LookupRoomAssociations", 77).Return(current, nil)

	svc := newTestService(catalog, new(MockDocumentStore), new(MockActivityLogSource))
	result, err := svc.UpdateRoomAssociations(77, current, store.ChangeMeta{})

	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
	catalog.AssertNotCalled(t, "AddCatalogAssociation")
	catalog.AssertNotCalled(t, "RemoveCatalogAssociation")
}

func TestUpdateRoomAssociationsRejectsDuplicates(t *testing.T) {
	catalog := new(MockCatalogStore)
	catalog.On("LookupRoomAssociations", 77).Return([]model.RoomAssociation{}, nil)

	svc := newTestService(catalog, new(MockDocumentStore), new(MockActivityLogSource))
	_, err := svc.UpdateRoomAssociations(77, []model.RoomAssociation{
		{RoomID: 5}, {RoomID: 5, IsHero: true},
	}, store.ChangeMeta{})

	require.Error(t, err)
	_, ok := err.(*errors2.ClientError)
	assert.True(t, ok)
}

func TestResolveMediaStatus(t *testing.T) {
	activities := new(MockActivityLogSource)
	fileNames := []string{"a.jpg", "b.jpg"}
	activities.On("FindEntries", fileNames).Return([]model.ActivityLogEntry{
		{MediaFileName: "a.jpg", ActivityType: "Publish", Timestamp: time.Unix(10, 0)},
	}, nil)

	svc := newTestService(new(MockCatalogStore), new(MockDocumentStore), activities)
	statuses, err := svc.ResolveMediaStatus(fileNames)

	require.NoError(t, err)
	require.Len(t, statuses, 2)
	// The test service compiles no rules, so every entry is unmatched.
	assert.Equal(t, "NOT_FOUND", statuses["a.jpg"].Status)
	assert.Equal(t, "NOT_FOUND", statuses["b.jpg"].Status)
}
