// internal/models/catalog.go
package models

import "fmt"

// TypeCategory groups asset types for the sidebar layer panel.
type TypeCategory string

const (
	CategoryPoint   TypeCategory = "point"
	CategoryLinear  TypeCategory = "linear"
	CategoryPolygon TypeCategory = "polygon"
)

// TypeInfo is the per-type catalog entry: display label, the geometry the
// type must carry, and the layer-panel category.
type TypeInfo struct {
	Label    string       `json:"label"`
	Geometry GeometryType `json:"geometryType"`
	Category TypeCategory `json:"category"`
}

// TypeCatalog is the fixed type→geometry mapping. An asset's GeometryType
// must never diverge from this table.
var TypeCatalog = map[AssetType]TypeInfo{
	TypeWaterSource:      {Label: "Water Source", Geometry: GeometryPoint, Category: CategoryPoint},
	TypeReservoir:        {Label: "Reservoir", Geometry: GeometryPoint, Category: CategoryPoint},
	TypePump:             {Label: "Pump", Geometry: GeometryPoint, Category: CategoryPoint},
	TypeValve:            {Label: "Valve", Geometry: GeometryPoint, Category: CategoryPoint},
	TypeJunction:         {Label: "Junction", Geometry: GeometryPoint, Category: CategoryPoint},
	TypeBulkMeter:        {Label: "Bulk Meter", Geometry: GeometryPoint, Category: CategoryPoint},
	TypeTreatmentUnit:    {Label: "Treatment Unit", Geometry: GeometryPoint, Category: CategoryPoint},
	TypeTransmissionPipe: {Label: "Transmission Pipe", Geometry: GeometryLine, Category: CategoryLinear},
	TypeDistributionPipe: {Label: "Distribution Pipe", Geometry: GeometryLine, Category: CategoryLinear},
	TypeTreatmentPlant:   {Label: "Treatment Plant", Geometry: GeometryPolygon, Category: CategoryPolygon},
	TypeStorageCompound:  {Label: "Storage Compound", Geometry: GeometryPolygon, Category: CategoryPolygon},
	TypeServiceZone:      {Label: "Service Zone", Geometry: GeometryPolygon, Category: CategoryPolygon},
}

// AllTypes lists every asset type in a stable display order.
var AllTypes = []AssetType{
	TypeWaterSource, TypeReservoir, TypePump, TypeValve, TypeJunction,
	TypeBulkMeter, TypeTreatmentUnit, TypeTransmissionPipe, TypeDistributionPipe,
	TypeTreatmentPlant, TypeStorageCompound, TypeServiceZone,
}

// PointTypes and LinearTypes drive the two layer-toggle groups in the
// sidebar. Polygon types are modeled but stay out of the layer panel.
var (
	PointTypes = []AssetType{
		TypeWaterSource, TypeReservoir, TypePump, TypeValve, TypeJunction,
		TypeBulkMeter, TypeTreatmentUnit,
	}
	LinearTypes = []AssetType{TypeTransmissionPipe, TypeDistributionPipe}
)

// StatusInfo holds display data for one asset status.
type StatusInfo struct {
	Label string `json:"label"`
	Color string `json:"color"` // HSL used by the map collaborator
}

var StatusCatalog = map[AssetStatus]StatusInfo{
	StatusActive:           {Label: "Active", Color: "hsl(152, 60%, 42%)"},
	StatusFaulty:           {Label: "Faulty", Color: "hsl(0, 72%, 55%)"},
	StatusUnderMaintenance: {Label: "Under Maintenance", Color: "hsl(38, 92%, 50%)"},
	StatusInactive:         {Label: "Inactive", Color: "hsl(215, 12%, 45%)"},
}

// AllStatuses lists statuses in the order the status summary renders them.
var AllStatuses = []AssetStatus{
	StatusActive, StatusFaulty, StatusUnderMaintenance, StatusInactive,
}

// GeometryFor resolves the geometry an asset of the given type must have.
// Unknown types default to point so a bad seed entry still renders somewhere.
func GeometryFor(t AssetType) GeometryType {
	if info, ok := TypeCatalog[t]; ok {
		return info.Geometry
	}
	return GeometryPoint
}

// StatusColor returns the display color for a status, falling back to the
// inactive grey for anything unrecognized.
func StatusColor(s AssetStatus) string {
	if info, ok := StatusCatalog[s]; ok {
		return info.Color
	}
	return StatusCatalog[StatusInactive].Color
}

// Validate checks the geometry invariants for a single asset: the declared
// geometry type matches the type catalog and the matching coordinate field
// has enough points (lines need 2, polygons 3).
func (a *Asset) Validate() error {
	want := GeometryFor(a.Type)
	if a.GeometryType != want {
		return fmt.Errorf("asset %s: geometry type %q does not match type %q (want %q)", a.ID, a.GeometryType, a.Type, want)
	}
	switch a.GeometryType {
	case GeometryLine:
		if len(a.LineCoordinates) < 2 {
			return fmt.Errorf("asset %s: line geometry needs at least 2 coordinates, got %d", a.ID, len(a.LineCoordinates))
		}
	case GeometryPolygon:
		if len(a.PolygonCoordinates) < 3 {
			return fmt.Errorf("asset %s: polygon geometry needs at least 3 coordinates, got %d", a.ID, len(a.PolygonCoordinates))
		}
	}
	return nil
}
