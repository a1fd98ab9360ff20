// internal/sidebar/sidebar_test.go
package sidebar

import (
	"testing"

	"flowius-manage-api-server/internal/models"
	"flowius-manage-api-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() (*Builder, *store.Store) {
	s := store.New([]models.Asset{
		{ID: "WS-001", Name: "Main Intake", Code: "SRC-001",
			Type: models.TypeWaterSource, GeometryType: models.GeometryPoint,
			Status: models.StatusActive},
		{ID: "PMP-001", Name: "Booster Pump A", Code: "PMP-001",
			Type: models.TypePump, GeometryType: models.GeometryPoint,
			Status: models.StatusFaulty},
		{ID: "PMP-002", Name: "Booster Pump B", Code: "PMP-002",
			Type: models.TypePump, GeometryType: models.GeometryPoint,
			Status: models.StatusUnderMaintenance},
		{ID: "TP-001", Name: "North Trunk Main", Code: "TRN-001",
			Type: models.TypeTransmissionPipe, GeometryType: models.GeometryLine,
			Status: models.StatusActive,
			LineCoordinates: []models.Coordinate{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}},
	})
	return &Builder{Store: s}, s
}

func statusCount(v View, st models.AssetStatus) StatusCount {
	for _, sc := range v.StatusSummary {
		if sc.Status == st {
			return sc
		}
	}
	return StatusCount{}
}

func TestViewStatusSummaryCountsFilteredAssets(t *testing.T) {
	b, s := newTestBuilder()

	v := b.View()
	require.Len(t, v.StatusSummary, 4, "one entry per status enum value")
	assert.Equal(t, 2, statusCount(v, models.StatusActive).Count)
	assert.Equal(t, 1, statusCount(v, models.StatusFaulty).Count)
	assert.Equal(t, 1, statusCount(v, models.StatusUnderMaintenance).Count)
	assert.Equal(t, 0, statusCount(v, models.StatusInactive).Count)

	// Counts are live over the filtered view.
	s.ToggleLayer(models.TypePump)
	v = b.View()
	assert.Equal(t, 0, statusCount(v, models.StatusFaulty).Count)
}

func TestViewLayerGroups(t *testing.T) {
	b, s := newTestBuilder()

	v := b.View()
	require.Len(t, v.PointLayers, 7)
	require.Len(t, v.LinearLayers, 2)

	var pump LayerToggle
	for _, lt := range v.PointLayers {
		if lt.Type == models.TypePump {
			pump = lt
		}
	}
	assert.True(t, pump.Visible)
	assert.Equal(t, 2, pump.Count)
	assert.Equal(t, "Pump", pump.Label)

	s.ToggleLayer(models.TypePump)
	v = b.View()
	for _, lt := range v.PointLayers {
		if lt.Type == models.TypePump {
			assert.False(t, lt.Visible)
			assert.Equal(t, 0, lt.Count, "hidden layers contribute nothing to the filtered view")
		}
	}
}

func TestViewAssetRows(t *testing.T) {
	b, s := newTestBuilder()

	search := "pump"
	s.SetFilters(store.FilterUpdate{Search: &search})

	v := b.View()
	require.Len(t, v.Assets, 2)
	assert.Equal(t, "PMP-001", v.Assets[0].ID)
	assert.Equal(t, "Pump", v.Assets[0].TypeLabel)
	assert.Equal(t, "pump", v.Search)
}

func TestViewRegistrationHint(t *testing.T) {
	b, s := newTestBuilder()

	assert.Empty(t, b.View().Hint)

	s.SetRegistering(true)
	v := b.View()
	assert.True(t, v.Registering)
	assert.Equal(t, "Click on the map to place an asset", v.Hint)
}

func TestToggleStatusFlipsFilterMembership(t *testing.T) {
	b, s := newTestBuilder()

	b.ToggleStatus(models.StatusFaulty)
	assert.Equal(t, []models.AssetStatus{models.StatusFaulty}, s.Filters().Statuses)
	assert.True(t, statusCount(b.View(), models.StatusFaulty).Selected)

	b.ToggleStatus(models.StatusFaulty)
	assert.Empty(t, s.Filters().Statuses, "toggling twice restores the filter")
}

func TestStatusBarCountsWholeCollection(t *testing.T) {
	b, s := newTestBuilder()

	search := "pump"
	s.SetFilters(store.FilterUpdate{Search: &search})

	bar := b.StatusBar()
	assert.Equal(t, 4, bar.Total)
	assert.Equal(t, 2, bar.Active, "status bar ignores filters")
	assert.Equal(t, 1, bar.Faulty)
	assert.Equal(t, 1, bar.UnderMaintenance)
	assert.Equal(t, 2, bar.Shown)
	assert.False(t, bar.Registering)
}
