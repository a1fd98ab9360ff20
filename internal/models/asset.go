// internal/models/asset.go
package models

// AssetStatus is the operational state of an asset.
type AssetStatus string

const (
	StatusActive           AssetStatus = "active"
	StatusFaulty           AssetStatus = "faulty"
	StatusUnderMaintenance AssetStatus = "under_maintenance"
	StatusInactive         AssetStatus = "inactive"
)

// AssetType identifies what kind of infrastructure an asset is. The type
// fixes the geometry: point equipment, linear pipes, or polygon areas.
type AssetType string

const (
	TypeWaterSource      AssetType = "water_source"
	TypeReservoir        AssetType = "reservoir"
	TypePump             AssetType = "pump"
	TypeValve            AssetType = "valve"
	TypeJunction         AssetType = "junction"
	TypeBulkMeter        AssetType = "bulk_meter"
	TypeTreatmentUnit    AssetType = "treatment_unit"
	TypeTransmissionPipe AssetType = "transmission_pipe"
	TypeDistributionPipe AssetType = "distribution_pipe"
	TypeTreatmentPlant   AssetType = "treatment_plant"
	TypeStorageCompound  AssetType = "storage_compound"
	TypeServiceZone      AssetType = "service_zone"
)

type GeometryType string

const (
	GeometryPoint   GeometryType = "point"
	GeometryLine    GeometryType = "line"
	GeometryPolygon GeometryType = "polygon"
)

// AssetCondition is a qualitative scale, ordered best to worst.
type AssetCondition string

const (
	ConditionExcellent AssetCondition = "excellent"
	ConditionGood      AssetCondition = "good"
	ConditionFair      AssetCondition = "fair"
	ConditionPoor      AssetCondition = "poor"
	ConditionCritical  AssetCondition = "critical"
)

// ConditionOptions lists conditions in scale order for edit forms.
var ConditionOptions = []AssetCondition{
	ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionCritical,
}

type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
)

type MaintenanceStatus string

const (
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
)

// Coordinate is a WGS84 lat/lng pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MaterialUsage is one inventory line linked to a maintenance record.
type MaterialUsage struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"` // positive
	Unit     string `json:"unit"`     // e.g. "kg", "m", "units"
}

// MaintenanceRecord is owned by its parent asset; records are only ever
// prepended to the history, never deleted or re-sorted.
type MaintenanceRecord struct {
	ID            string            `json:"id"`
	Date          string            `json:"date"` // YYYY-MM-DD
	Type          MaintenanceType   `json:"type"`
	Description   string            `json:"description"`
	Technician    string            `json:"technician"`
	Status        MaintenanceStatus `json:"status"`
	MaterialsUsed []MaterialUsage   `json:"materialsUsed,omitempty"`
}

// Asset is a physical piece of water infrastructure. Exactly one of
// Coordinates / LineCoordinates / PolygonCoordinates carries the geometry,
// depending on GeometryType.
type Asset struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Code               string              `json:"code"` // human-readable unique label, e.g. "PMP-001"
	Type               AssetType           `json:"type"`
	GeometryType       GeometryType        `json:"geometryType"`
	Status             AssetStatus         `json:"status"`
	Coordinates        Coordinate          `json:"coordinates"`
	LineCoordinates    []Coordinate        `json:"lineCoordinates,omitempty"`
	PolygonCoordinates []Coordinate        `json:"polygonCoordinates,omitempty"`
	InstallationDate   string              `json:"installationDate"` // YYYY-MM-DD
	Condition          AssetCondition      `json:"condition"`
	Capacity           string              `json:"capacity,omitempty"`
	Diameter           string              `json:"diameter,omitempty"`
	Material           string              `json:"material,omitempty"`
	LastMaintenance    string              `json:"lastMaintenance,omitempty"`
	MaintenanceHistory []MaintenanceRecord `json:"maintenanceHistory"`
	Photos             []string            `json:"photos,omitempty"`
	Notes              string              `json:"notes,omitempty"`
}

// LatestRecord returns the newest maintenance record, or nil if the
// history is empty. Newest-first ordering makes this element zero.
func (a *Asset) LatestRecord() *MaintenanceRecord {
	if len(a.MaintenanceHistory) == 0 {
		return nil
	}
	return &a.MaintenanceHistory[0]
}
