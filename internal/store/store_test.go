// internal/store/store_test.go
package store

import (
	"testing"

	"flowius-manage-api-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAssets() []models.Asset {
	return []models.Asset{
		{
			ID: "WS-001", Name: "Main Intake", Code: "SRC-001",
			Type: models.TypeWaterSource, GeometryType: models.GeometryPoint,
			Status: models.StatusActive, Condition: models.ConditionGood,
			Coordinates:        models.Coordinate{Lat: -1.28, Lng: 36.81},
			MaintenanceHistory: []models.MaintenanceRecord{},
		},
		{
			ID: "PMP-001", Name: "Booster Pump A", Code: "pump-1a",
			Type: models.TypePump, GeometryType: models.GeometryPoint,
			Status: models.StatusFaulty, Condition: models.ConditionPoor,
			Coordinates:        models.Coordinate{Lat: -1.29, Lng: 36.82},
			MaintenanceHistory: []models.MaintenanceRecord{},
		},
		{
			ID: "TP-001", Name: "North Trunk Main", Code: "TRN-001",
			Type: models.TypeTransmissionPipe, GeometryType: models.GeometryLine,
			Status: models.StatusActive, Condition: models.ConditionFair,
			LineCoordinates: []models.Coordinate{
				{Lat: -1.28, Lng: 36.81}, {Lat: -1.29, Lng: 36.82},
			},
			MaintenanceHistory: []models.MaintenanceRecord{},
		},
	}
}

func TestFilteredAssetsNoRestriction(t *testing.T) {
	s := New(seedAssets())
	assert.Len(t, s.FilteredAssets(), 3, "empty filters mean no restriction")
}

func TestFilteredAssetsLayerVisibility(t *testing.T) {
	s := New(seedAssets())
	s.ToggleLayer(models.TypePump)

	filtered := s.FilteredAssets()
	assert.Len(t, filtered, 2)
	for _, a := range filtered {
		assert.NotEqual(t, models.TypePump, a.Type)
	}
}

func TestToggleLayerRoundTrip(t *testing.T) {
	s := New(seedAssets())
	before := s.FilteredAssets()

	assert.False(t, s.ToggleLayer(models.TypePump))
	assert.True(t, s.ToggleLayer(models.TypePump))
	assert.Equal(t, before, s.FilteredAssets())
}

func TestFilteredAssetsStatusAndType(t *testing.T) {
	s := New(seedAssets())

	statuses := []models.AssetStatus{models.StatusFaulty}
	s.SetFilters(FilterUpdate{Statuses: &statuses})
	filtered := s.FilteredAssets()
	require.Len(t, filtered, 1)
	assert.Equal(t, "PMP-001", filtered[0].ID)

	// Predicates are conjunctive: faulty AND transmission pipe match nothing.
	types := []models.AssetType{models.TypeTransmissionPipe}
	s.SetFilters(FilterUpdate{Types: &types})
	assert.Empty(t, s.FilteredAssets())
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	s := New(seedAssets())

	search := "PUMP-1"
	s.SetFilters(FilterUpdate{Search: &search})
	filtered := s.FilteredAssets()
	require.Len(t, filtered, 1, "searching PUMP-1 must match code pump-1a")
	assert.Equal(t, "PMP-001", filtered[0].ID)

	search = "trunk"
	s.SetFilters(FilterUpdate{Search: &search})
	filtered = s.FilteredAssets()
	require.Len(t, filtered, 1)
	assert.Equal(t, "TP-001", filtered[0].ID)
}

func TestSetFiltersMergesPartially(t *testing.T) {
	s := New(seedAssets())

	search := "pump"
	s.SetFilters(FilterUpdate{Search: &search})
	statuses := []models.AssetStatus{models.StatusFaulty}
	s.SetFilters(FilterUpdate{Statuses: &statuses})

	f := s.Filters()
	assert.Equal(t, "pump", f.Search, "search survives a statuses-only update")
	assert.Equal(t, statuses, f.Statuses)
}

func TestAddAssetExitsRegistrationMode(t *testing.T) {
	s := New(seedAssets())
	s.SetRegistering(true)

	a := models.Asset{ID: "NEW-1", Name: "New Asset", Code: "AST-1",
		Type: models.TypeValve, GeometryType: models.GeometryPoint}
	require.NoError(t, s.AddAsset(a))

	assert.Len(t, s.Assets(), 4)
	assert.False(t, s.Registering(), "AddAsset leaves registration mode")

	got, ok := s.Asset("NEW-1")
	require.True(t, ok)
	assert.Equal(t, a, got)
}

func TestAddAssetRejectsDuplicateID(t *testing.T) {
	s := New(seedAssets())
	err := s.AddAsset(models.Asset{ID: "PMP-001"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, s.Assets(), 3)
}

func TestUpdateAssetMergesFields(t *testing.T) {
	s := New(seedAssets())

	name := "Renamed Pump"
	status := models.StatusUnderMaintenance
	ok := s.UpdateAsset("PMP-001", AssetUpdate{Name: &name, Status: &status})
	require.True(t, ok)

	a, found := s.Asset("PMP-001")
	require.True(t, found)
	assert.Equal(t, "Renamed Pump", a.Name)
	assert.Equal(t, models.StatusUnderMaintenance, a.Status)
	assert.Equal(t, models.ConditionPoor, a.Condition, "untouched fields keep their value")
}

func TestUpdateAssetClearsOptionalFields(t *testing.T) {
	s := New(seedAssets())

	capacity := "500 m3"
	s.UpdateAsset("WS-001", AssetUpdate{Capacity: &capacity})
	a, _ := s.Asset("WS-001")
	require.Equal(t, "500 m3", a.Capacity)

	empty := ""
	s.UpdateAsset("WS-001", AssetUpdate{Capacity: &empty})
	a, _ = s.Asset("WS-001")
	assert.Empty(t, a.Capacity)
}

func TestUpdateAssetUnknownIDIsNoOp(t *testing.T) {
	s := New(seedAssets())
	name := "ghost"
	assert.False(t, s.UpdateAsset("nope", AssetUpdate{Name: &name}))
	assert.Len(t, s.Assets(), 3)
}

func TestSelectionTracksUpdates(t *testing.T) {
	s := New(seedAssets())
	require.NoError(t, s.Select("PMP-001"))

	name := "Rebuilt Pump"
	s.UpdateAsset("PMP-001", AssetUpdate{Name: &name})

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Rebuilt Pump", sel.Name, "selection reflects mutations by id")

	s.ClearSelection()
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestSelectUnknownID(t *testing.T) {
	s := New(seedAssets())
	assert.ErrorIs(t, s.Select("nope"), ErrAssetNotFound)
}

func TestFilteredAssetsIsSubsetOfAssets(t *testing.T) {
	s := New(seedAssets())
	search := "a"
	s.SetFilters(FilterUpdate{Search: &search})

	byID := make(map[string]bool)
	for _, a := range s.Assets() {
		byID[a.ID] = true
	}
	for _, a := range s.FilteredAssets() {
		assert.True(t, byID[a.ID])
	}
}

func TestSubscribersFireOnEveryMutation(t *testing.T) {
	s := New(seedAssets())
	var fired int
	s.Subscribe(func() { fired++ })

	search := "x"
	s.SetFilters(FilterUpdate{Search: &search})
	s.ToggleLayer(models.TypePump)
	s.SetRegistering(true)
	require.NoError(t, s.AddAsset(models.Asset{ID: "NEW-2"}))
	name := "n"
	s.UpdateAsset("NEW-2", AssetUpdate{Name: &name})
	require.NoError(t, s.Select("NEW-2"))
	s.ClearSelection()

	assert.Equal(t, 7, fired)
}

func TestGeometryInvariantHoldsAfterMutations(t *testing.T) {
	s := New(seedAssets())
	require.NoError(t, s.AddAsset(models.Asset{
		ID: "V-001", Type: models.TypeValve, GeometryType: models.GeometryPoint,
	}))
	status := models.StatusInactive
	s.UpdateAsset("V-001", AssetUpdate{Status: &status})

	for _, a := range s.Assets() {
		assert.Equal(t, models.GeometryFor(a.Type), a.GeometryType)
	}
}
