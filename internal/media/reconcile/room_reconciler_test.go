package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/media-metadata-service/internal/media/model"
	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"
)

func room(id int, hero bool) model.RoomAssociation {
	return model.RoomAssociation{RoomID: id, IsHero: hero}
}

func TestReconcileIdenticalSetsProducesNoChanges(t *testing.T) {
	rc := NewRoomAssociationReconciler()

	set := []model.RoomAssociation{room(1, true), room(2, false), room(3, true)}

	result, err := rc.Reconcile(set, set)

	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestReconcileCatalogDiffIgnoresHeroFlag(t *testing.T) {
	rc := NewRoomAssociationReconciler()

	requested := []model.RoomAssociation{room(1, false), room(2, true)}
	current := []model.RoomAssociation{room(2, false), room(3, true)}

	result, err := rc.Reconcile(requested, current)

	require.NoError(t, err)
	assert.Equal(t, []model.RoomAssociation{room(1, false)}, result.AddCatalog)
	assert.Equal(t, []model.RoomAssociation{room(3, true)}, result.RemoveCatalog)
}

func TestReconcileHeroTransitions(t *testing.T) {
	rc := NewRoomAssociationReconciler()

	tests := []struct {
		name            string
		requested       []model.RoomAssociation
		current         []model.RoomAssociation
		addParagraph    []model.RoomAssociation
		removeParagraph []model.RoomAssociation
	}{
		{
			name:         "promotion adds a paragraph",
			requested:    []model.RoomAssociation{room(1, true)},
			current:      []model.RoomAssociation{room(1, false)},
			addParagraph: []model.RoomAssociation{room(1, true)},
		},
		{
			name:            "demotion removes the paragraph",
			requested:       []model.RoomAssociation{room(1, false)},
			current:         []model.RoomAssociation{room(1, true)},
			removeParagraph: []model.RoomAssociation{room(1, true)},
		},
		{
			name:      "hero to hero is a no-op",
			requested: []model.RoomAssociation{room(1, true)},
			current:   []model.RoomAssociation{room(1, true)},
		},
		{
			name:      "non-hero to non-hero is a no-op",
			requested: []model.RoomAssociation{room(1, false)},
			current:   []model.RoomAssociation{room(1, false)},
		},
		{
			name:      "new non-hero room is a no-op for paragraphs",
			requested: []model.RoomAssociation{room(9, false)},
		},
		{
			name:         "new hero room adds a paragraph",
			requested:    []model.RoomAssociation{room(9, true)},
			addParagraph: []model.RoomAssociation{room(9, true)},
		},
		{
			name:            "departed hero room removes its paragraph",
			current:         []model.RoomAssociation{room(9, true)},
			removeParagraph: []model.RoomAssociation{room(9, true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := rc.Reconcile(tt.requested, tt.current)
			require.NoError(t, err)
			assert.Equal(t, tt.addParagraph, result.AddParagraph)
			assert.Equal(t, tt.removeParagraph, result.RemoveParagraph)
		})
	}
}

func TestReconcileFullTeardown(t *testing.T) {
	rc := NewRoomAssociationReconciler()

	current := []model.RoomAssociation{room(1, true), room(2, false), room(3, true)}

	result, err := rc.Reconcile(nil, current)

	require.NoError(t, err)
	assert.Empty(t, result.AddCatalog)
	assert.Empty(t, result.AddParagraph)
	assert.Len(t, result.RemoveCatalog, 3)
	assert.Equal(t, []model.RoomAssociation{room(1, true), room(3, true)}, result.RemoveParagraph)
}

func TestReconcilePureAdd(t *testing.T) {
	rc := NewRoomAssociationReconciler()

	requested := []model.RoomAssociation{room(1, true), room(2, false)}

	result, err := rc.Reconcile(requested, nil)

	require.NoError(t, err)
	assert.Len(t, result.AddCatalog, 2)
	assert.Empty(t, result.RemoveCatalog)
	assert.Equal(t, []model.RoomAssociation{room(1, true)}, result.AddParagraph)
	assert.Empty(t, result.RemoveParagraph)
}

func TestReconcileReplacedHeroAppearsInBothCategories(t *testing.T) {
	rc := NewRoomAssociationReconciler()

	// Room 5 leaves the catalog set while room 5 is also the current hero of
	// this media: it shows up in removeCatalog and removeParagraph at once.
	requested := []model.RoomAssociation{room(6, true)}
	current := []model.RoomAssociation{room(5, true)}

	result, err := rc.Reconcile(requested, current)

	require.NoError(t, err)
	assert.Equal(t, []model.RoomAssociation{room(6, true)}, result.AddCatalog)
	assert.Equal(t, []model.RoomAssociation{room(5, true)}, result.RemoveCatalog)
	assert.Equal(t, []model.RoomAssociation{room(6, true)}, result.AddParagraph)
	assert.Equal(t, []model.RoomAssociation{room(5, true)}, result.RemoveParagraph)
}

func TestReconcileAddAndRemoveCatalogAreDisjoint(t *testing.T) {
	rc := NewRoomAssociationReconciler()

	requested := []model.RoomAssociation{room(1, false), room(2, true), room(4, false)}
	current := []model.RoomAssociation{room(2, false), room(3, false), room(5, true)}

	result, err := rc.Reconcile(requested, current)
	require.NoError(t, err)

	added := map[int]bool{}
	for _, r := range result.AddCatalog {
		added[r.RoomID] = true
	}
	for _, r := range result.RemoveCatalog {
		assert.False(t, added[r.RoomID], "room %d in both addCatalog and removeCatalog", r.RoomID)
	}
}

func TestReconcileRejectsDuplicateRoomIDs(t *testing.T) {
	rc := NewRoomAssociationReconciler()

	requested := []model.RoomAssociation{room(1, false), room(1, true)}

	_, err := rc.Reconcile(requested, nil)

	require.Error(t, err)
	clientErr, ok := err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, errors2.DUPLICATE_ROOM_ASSOCIATION.Code, clientErr.Code)

	_, err = rc.Reconcile(nil, requested)
	require.Error(t, err)
}
