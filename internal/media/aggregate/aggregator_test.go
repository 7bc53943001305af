package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wso2/media-metadata-service/internal/media/model"
	"github.com/wso2/media-metadata-service/internal/media/store"
	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"
	"github.com/wso2/media-metadata-service/internal/system/pagination"
)

// MockCatalogStore implements store.CatalogStoreInterface for testing
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

// MockDocumentStore implements store.DocumentMediaStoreInterface for testing
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

func catalogRow(id int, fileName string, sizeKB int, status string) model.RelationalMediaRow {
	return model.RelationalMediaRow{
		MediaID:    id,
		FileName:   fileName,
		Category:   "lodging",
		Width:      800,
		Height:     600,
		FileSizeKB: sizeKB,
		StatusCode: status,
	}
}

func docRow(guid string, mediaID int, fields map[string]string) model.DocumentMediaRow {
	return model.DocumentMediaRow{
		GUID:           guid,
		Domain:         "lodging",
		DomainID:       "hotel-1",
		CatalogMediaID: mediaID,
		FileName:       guid + ".jpg",
		Active:         "true",
		DomainFields:   fields,
	}
}

func TestGetByDomainIDMergesAndDerivesFields(t *testing.T) {
	catalog := new(MockCatalogStore)
	documents := new(MockDocumentStore)

	catalog.On("LookupMediaIDs", "hotel-1").Return([]int{10, 20}, nil)
	catalog.On("LookupMediaRows", "hotel-1", []int{10, 20}).Return([]model.RelationalMediaRow{
		catalogRow(10, "a.jpg", 3, "A"),
		catalogRow(20, "b.jpg", 5, "I"),
	}, nil)
	catalog.On("CountMedia", "hotel-1", "all", "").Return(3, nil)
	documents.On("LoadByDomainID", "lodging", "hotel-1").Return([]model.DocumentMediaRow{
		docRow("g-10", 10, nil),
		docRow("g-99", 0, nil), // document-only record
	}, nil)

	agg := NewDomainMediaAggregator(catalog, documents, 0)
	items, total, err := agg.GetByDomainID("lodging", "hotel-1", MediaQuery{})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)

	// Catalog row joined with its document: both halves present.
	assert.Equal(t, 10, items[0].MediaID)
	assert.Equal(t, "g-10", items[0].GUID)
	assert.Equal(t, int64(3*1024), items[0].FileSize)
	assert.True(t, items[0].Active)

	// Catalog-only row: no guid, active derived from status code.
	assert.Equal(t, 20, items[1].MediaID)
	assert.Empty(t, items[1].GUID)
	assert.False(t, items[1].Active)

	// Document-only row still appears.
	assert.Equal(t, "g-99", items[2].GUID)
	assert.Zero(t, items[2].MediaID)
	assert.True(t, items[2].Active)
}

func TestGetByDomainIDBatchesLookupsInOrder(t *testing.T) {
	catalog := new(MockCatalogStore)
	documents := new(MockDocumentStore)

	ids := []int{1, 2, 3, 4, 5}
	catalog.On("LookupMediaIDs", "hotel-1").Return(ids, nil)
	// Batches of two, sequential; the last batch holds the remainder.
	catalog.On("LookupMediaRows", "hotel-1", []int{1, 2}).Return([]model.RelationalMediaRow{
		catalogRow(2, "b.jpg", 1, "A"), catalogRow(1, "a.jpg", 1, "A"),
	}, nil)
	catalog.On("LookupMediaRows", "hotel-1", []int{3, 4}).Return([]model.RelationalMediaRow{
		catalogRow(3, "c.jpg", 1, "A"), catalogRow(4, "d.jpg", 1, "A"),
	}, nil)
	catalog.On("LookupMediaRows", "hotel-1", []int{5}).Return([]model.RelationalMediaRow{
		catalogRow(5, "e.jpg", 1, "A"),
	}, nil)
	catalog.On("CountMedia", "hotel-1", "all", "").Return(5, nil)
	documents.On("LoadByDomainID", "lodging", "hotel-1").Return([]model.DocumentMediaRow{}, nil)

	agg := NewDomainMediaAggregator(catalog, documents, 2)
	items, _, err := agg.GetByDomainID("lodging", "hotel-1", MediaQuery{})

	require.NoError(t, err)
	require.Len(t, items, 5)
	// Batching must not disturb the original id order, even when a batch
	// returns rows out of order.
	for i, want := range ids {
		assert.Equal(t, want, items[i].MediaID)
	}
	catalog.AssertNumberOfCalls(t, "LookupMediaRows", 3)
}

func TestGetByDomainIDFailedBatchFailsWholeRequest(t *testing.T) {
	catalog := new(MockCatalogStore)
	documents := new(MockDocumentStore)

	storeErr := errors2.NewServerError(errors2.LOOKUP_MEDIA_ROWS, assert.AnError)
	catalog.On("LookupMediaIDs", "hotel-1").Return([]int{1, 2, 3}, nil)
	catalog.On("LookupMediaRows", "hotel-1", []int{1, 2}).Return([]model.RelationalMediaRow{
		catalogRow(1, "a.jpg", 1, "A"), catalogRow(2, "b.jpg", 1, "A"),
	}, nil)
	catalog.On("LookupMediaRows", "hotel-1", []int{3}).Return([]model.RelationalMediaRow{}, storeErr)

	agg := NewDomainMediaAggregator(catalog, documents, 2)
	items, total, err := agg.GetByDomainID("lodging", "hotel-1", MediaQuery{})

	assert.Nil(t, items)
	assert.Zero(t, total)
	assert.Equal(t, storeErr, err)
	documents.AssertNotCalled(t, "LoadByDomainID")
}

func TestGetByDomainIDActiveFilter(t *testing.T) {
	catalog := new(MockCatalogStore)
	documents := new(MockDocumentStore)

	catalog.On("LookupMediaIDs", "hotel-1").Return([]int{1, 2}, nil)
	catalog.On("LookupMediaRows", "hotel-1", []int{1, 2}).Return([]model.RelationalMediaRow{
		catalogRow(1, "a.jpg", 1, "A"),
		catalogRow(2, "b.jpg", 1, "I"),
	}, nil)
	catalog.On("CountMedia", "hotel-1", "true", "").Return(1, nil)
	documents.On("LoadByDomainID", "lodging", "hotel-1").Return([]model.DocumentMediaRow{}, nil)

	agg := NewDomainMediaAggregator(catalog, documents, 0)
	items, total, err := agg.GetByDomainID("lodging", "hotel-1", MediaQuery{ActiveFilter: "true"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].MediaID)
	// The count comes from the independent filtered count query, not from the
	// returned page.
	assert.Equal(t, 1, total)
	catalog.AssertCalled(t, "CountMedia", "hotel-1", "true", "")
}

func TestGetByDomainIDInvalidActiveFilter(t *testing.T) {
	agg := NewDomainMediaAggregator(new(MockCatalogStore), new(MockDocumentStore), 0)

	_, _, err := agg.GetByDomainID("lodging", "hotel-1", MediaQuery{ActiveFilter: "yes"})

	require.Error(t, err)
	_, ok := err.(*errors2.ClientError)
	assert.True(t, ok)
}

func TestGetByDomainIDDerivativeTypeFilterKeepsEmptyRows(t *testing.T) {
	catalog := new(MockCatalogStore)
	documents := new(MockDocumentStore)

	doc := docRow("g-1", 1, nil)
	doc.Derivatives = []model.Derivative{
		{Type: "t", FileSize: 100},
		{Type: "z", FileSize: 200},
	}
	other := docRow("g-2", 2, nil)
	other.Derivatives = []model.Derivative{{Type: "x", FileSize: 300}}

	catalog.On("LookupMediaIDs", "hotel-1").Return([]int{1, 2}, nil)
	catalog.On("LookupMediaRows", "hotel-1", []int{1, 2}).Return([]model.RelationalMediaRow{
		catalogRow(1, "a.jpg", 1, "A"),
		catalogRow(2, "b.jpg", 1, "A"),
	}, nil)
	catalog.On("CountMedia", "hotel-1", "all", "").Return(2, nil)
	documents.On("LoadByDomainID", "lodging", "hotel-1").Return([]model.DocumentMediaRow{doc, other}, nil)

	agg := NewDomainMediaAggregator(catalog, documents, 0)
	items, _, err := agg.GetByDomainID("lodging", "hotel-1", MediaQuery{DerivativeTypeFilter: "t,z"})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Len(t, items[0].Derivatives, 2)
	// Filtering leaves the second row with zero derivatives but keeps the row.
	assert.Empty(t, items[1].Derivatives)
}

func TestGetByDomainIDSortsBySubcategoryThenHero(t *testing.T) {
	catalog := new(MockCatalogStore)
	documents := new(MockDocumentStore)

	catalog.On("LookupMediaIDs", "hotel-1").Return([]int{1, 2, 3, 4}, nil)
	catalog.On("LookupMediaRows", "hotel-1", []int{1, 2, 3, 4}).Return([]model.RelationalMediaRow{
		catalogRow(1, "a.jpg", 1, "A"),
		catalogRow(2, "b.jpg", 1, "A"),
		catalogRow(3, "c.jpg", 1, "A"),
		catalogRow(4, "d.jpg", 1, "A"),
	}, nil)
	catalog.On("CountMedia", "hotel-1", "all", "").Return(4, nil)
	documents.On("LoadByDomainID", "lodging", "hotel-1").Return([]model.DocumentMediaRow{
		docRow("g-1", 1, map[string]string{model.DomainFieldSubcategoryID: "30"}),
		docRow("g-2", 2, nil), // no subcategory id sorts last
		docRow("g-3", 3, map[string]string{model.DomainFieldSubcategoryID: "10"}),
		docRow("g-4", 4, map[string]string{
			model.DomainFieldSubcategoryID: "20",
			model.DomainFieldPropertyHero:  "true",
		}),
	}, nil)

	agg := NewDomainMediaAggregator(catalog, documents, 0)
	items, _, err := agg.GetByDomainID("lodging", "hotel-1", MediaQuery{})

	require.NoError(t, err)
	require.Len(t, items, 4)
	// Hero first, then subcategory ascending, missing subcategory last.
	assert.Equal(t, "g-4", items[0].GUID)
	assert.Equal(t, "g-3", items[1].GUID)
	assert.Equal(t, "g-1", items[2].GUID)
	assert.Equal(t, "g-2", items[3].GUID)
}

func TestGetByDomainIDPagination(t *testing.T) {
	catalog := new(MockCatalogStore)
	documents := new(MockDocumentStore)

	ids := []int{1, 2, 3, 4, 5}
	rows := make([]model.RelationalMediaRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, catalogRow(id, "f.jpg", 1, "A"))
	}
	catalog.On("LookupMediaIDs", "hotel-1").Return(ids, nil)
	catalog.On("LookupMediaRows", "hotel-1", ids).Return(rows, nil)
	catalog.On("CountMedia", "hotel-1", "all", "").Return(5, nil)
	documents.On("LoadByDomainID", "lodging", "hotel-1").Return([]model.DocumentMediaRow{}, nil)

	agg := NewDomainMediaAggregator(catalog, documents, 0)

	page := func(index, size int) pagination.Page {
		return pagination.Page{Index: pagination.IntPtr(index), Size: pagination.IntPtr(size)}
	}

	items, total, err := agg.GetByDomainID("lodging", "hotel-1", MediaQuery{Page: page(0, 2)})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].MediaID)
	assert.Equal(t, 2, items[1].MediaID)

	items, _, err = agg.GetByDomainID("lodging", "hotel-1", MediaQuery{Page: page(2, 2)})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].MediaID)

	items, _, err = agg.GetByDomainID("lodging", "hotel-1", MediaQuery{Page: page(9, 2)})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetByDomainIDPaginationPairValidation(t *testing.T) {
	catalog := new(MockCatalogStore)
	agg := NewDomainMediaAggregator(catalog, new(MockDocumentStore), 0)

	_, _, err := agg.GetByDomainID("lodging", "hotel-1", MediaQuery{
		Page: pagination.Page{Size: pagination.IntPtr(2)},
	})

	require.Error(t, err)
	clientErr, ok := err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, errors2.INVALID_PAGINATION.Code, clientErr.Code)
	catalog.AssertNotCalled(t, "LookupMediaIDs")

	_, _, err = agg.GetByDomainID("lodging", "hotel-1", MediaQuery{
		Page: pagination.Page{Index: pagination.IntPtr(-1), Size: pagination.IntPtr(2)},
	})
	require.Error(t, err)
}
