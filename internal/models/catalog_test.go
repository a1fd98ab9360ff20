// internal/models/catalog_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeCatalogCoversAllTypes(t *testing.T) {
	assert.Len(t, AllTypes, 12)
	for _, at := range AllTypes {
		info, ok := TypeCatalog[at]
		require.True(t, ok, "type %s missing from catalog", at)
		assert.NotEmpty(t, info.Label)
		assert.Contains(t, []GeometryType{GeometryPoint, GeometryLine, GeometryPolygon}, info.Geometry)
	}
}

func TestGeometryForMatchesCatalog(t *testing.T) {
	for at, info := range TypeCatalog {
		assert.Equal(t, info.Geometry, GeometryFor(at))
	}
	// Unknown types fall back to point.
	assert.Equal(t, GeometryPoint, GeometryFor(AssetType("submarine")))
}

func TestLayerGroupsExcludePolygonTypes(t *testing.T) {
	for _, at := range PointTypes {
		assert.Equal(t, CategoryPoint, TypeCatalog[at].Category)
	}
	for _, at := range LinearTypes {
		assert.Equal(t, CategoryLinear, TypeCatalog[at].Category)
	}
	assert.Len(t, PointTypes, 7)
	assert.Len(t, LinearTypes, 2)
}

func TestValidateGeometry(t *testing.T) {
	pump := Asset{ID: "A1", Type: TypePump, GeometryType: GeometryPoint}
	assert.NoError(t, pump.Validate())

	mismatch := Asset{ID: "A2", Type: TypePump, GeometryType: GeometryLine}
	assert.Error(t, mismatch.Validate())

	pipe := Asset{
		ID: "A3", Type: TypeTransmissionPipe, GeometryType: GeometryLine,
		LineCoordinates: []Coordinate{{Lat: 1, Lng: 1}},
	}
	assert.Error(t, pipe.Validate(), "a line needs at least 2 coordinates")

	pipe.LineCoordinates = append(pipe.LineCoordinates, Coordinate{Lat: 2, Lng: 2})
	assert.NoError(t, pipe.Validate())

	zone := Asset{
		ID: "A4", Type: TypeServiceZone, GeometryType: GeometryPolygon,
		PolygonCoordinates: []Coordinate{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}},
	}
	assert.Error(t, zone.Validate(), "a polygon needs at least 3 coordinates")
}

func TestStatusColorFallback(t *testing.T) {
	assert.Equal(t, StatusCatalog[StatusFaulty].Color, StatusColor(StatusFaulty))
	assert.Equal(t, StatusCatalog[StatusInactive].Color, StatusColor(AssetStatus("exploded")))
}

func TestLatestRecord(t *testing.T) {
	a := Asset{MaintenanceHistory: []MaintenanceRecord{}}
	assert.Nil(t, a.LatestRecord())

	a.MaintenanceHistory = []MaintenanceRecord{{ID: "newest"}, {ID: "older"}}
	require.NotNil(t, a.LatestRecord())
	assert.Equal(t, "newest", a.LatestRecord().ID)
}
