// internal/geomap/renderer.go
package geomap

import (
	"fmt"
	"strings"
	"time"

	"flowius-manage-api-server/internal/models"
	"flowius-manage-api-server/internal/store"

	"github.com/google/uuid"
)

// Line weights and opacities per pipe class, including the hover emphasis
// the collaborator applies on mouseover and reverts on mouseout.
const (
	transmissionMainWeight = 4
	transmissionGlowWeight = 8
	distributionMainWeight = 3
	distributionGlowWeight = 5

	mainOpacity      = 0.85
	mainHoverOpacity = 1.0
	glowOpacity      = 0.2
	glowHoverOpacity = 0.35

	distributionDash = "8 6" // transmission pipes render solid

	markerSizePx = 28
)

// Tooltip is the hover text for a primitive.
type Tooltip struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Marker describes one point-asset primitive. Clicking it selects the
// asset; clustering of co-located markers is the collaborator's job.
type Marker struct {
	AssetID  string            `json:"assetId"`
	Position models.Coordinate `json:"position"`
	Color    string            `json:"color"`
	Initial  string            `json:"initial"` // first letter of the type label
	SizePx   int               `json:"sizePx"`
	Tooltip  Tooltip           `json:"tooltip"`
}

// LineStyle is one stroke of a pipe: base weight/opacity plus the values
// to apply while hovered.
type LineStyle struct {
	Color        string  `json:"color"`
	Weight       int     `json:"weight"`
	Opacity      float64 `json:"opacity"`
	DashArray    string  `json:"dashArray,omitempty"`
	HoverWeight  int     `json:"hoverWeight"`
	HoverOpacity float64 `json:"hoverOpacity"`
}

// Polyline describes one line-asset primitive as a stacked pair: a wide
// translucent glow under a crisp main line. Clicking the main line selects
// the asset.
type Polyline struct {
	AssetID string              `json:"assetId"`
	Path    []models.Coordinate `json:"path"`
	Glow    LineStyle           `json:"glow"`
	Main    LineStyle           `json:"main"`
	Tooltip Tooltip             `json:"tooltip"`
}

// ClusterOptions is passed through to the marker-cluster collaborator.
type ClusterOptions struct {
	MaxRadius           int  `json:"maxRadius"`
	SpiderfyOnMaxZoom   bool `json:"spiderfyOnMaxZoom"`
	ShowCoverageOnHover bool `json:"showCoverageOnHover"`
}

// Viewport is the initial map camera.
type Viewport struct {
	Center models.Coordinate `json:"center"`
	Zoom   int               `json:"zoom"`
}

// Scene is a full redraw of the filtered view: the collaborator clears
// whatever it drew before and renders exactly these primitives.
type Scene struct {
	Viewport    Viewport        `json:"viewport"`
	Registering bool            `json:"registering"`
	Cursor      string          `json:"cursor"` // "crosshair" while registering
	Cluster     ClusterOptions  `json:"cluster"`
	Markers     []Marker        `json:"markers"`
	Polylines   []Polyline      `json:"polylines"`
}

// Renderer turns the store's filtered view into map primitives and maps
// coordinate clicks back onto store operations.
type Renderer struct {
	Store    *store.Store
	Viewport Viewport
}

// RegistrationRequest optionally overrides the defaults for an asset
// placed by a map click. Only point types can be placed this way.
type RegistrationRequest struct {
	Name string           `json:"name"`
	Type models.AssetType `json:"type"`
}

// BuildScene recomputes the whole scene from the current filtered view.
// Polygon assets are modeled but not drawn; they pass through the filter
// untouched and simply produce no primitive.
func (r *Renderer) BuildScene() Scene {
	scene := Scene{
		Viewport:    r.Viewport,
		Registering: r.Store.Registering(),
		Cluster: ClusterOptions{
			MaxRadius:         50,
			SpiderfyOnMaxZoom: true,
		},
		Markers:   []Marker{},
		Polylines: []Polyline{},
	}
	if scene.Registering {
		scene.Cursor = "crosshair"
	}

	for _, a := range r.Store.FilteredAssets() {
		switch a.GeometryType {
		case models.GeometryPoint:
			scene.Markers = append(scene.Markers, buildMarker(a))
		case models.GeometryLine:
			if len(a.LineCoordinates) >= 2 {
				scene.Polylines = append(scene.Polylines, buildPolyline(a))
			}
		}
	}
	return scene
}

// Click handles a coordinate click on the map surface. In registration
// mode it creates exactly one point asset at the clicked location with the
// default field values and commits it, which also leaves registration mode.
// Outside registration mode the click is ignored.
func (r *Renderer) Click(at models.Coordinate, req RegistrationRequest) (models.Asset, bool, error) {
	if !r.Store.Registering() {
		return models.Asset{}, false, nil
	}
	a := NewPointAsset(at, req)
	if err := r.Store.AddAsset(a); err != nil {
		return models.Asset{}, false, err
	}
	return a, true, nil
}

// NewPointAsset synthesizes a freshly registered point asset: active, in
// good condition, installed today, empty history.
func NewPointAsset(at models.Coordinate, req RegistrationRequest) models.Asset {
	t := req.Type
	if t == "" || models.GeometryFor(t) != models.GeometryPoint {
		t = models.TypeWaterSource
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "New Asset"
	}
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return models.Asset{
		ID:                 "NEW-" + suffix,
		Name:               name,
		Code:               "AST-" + suffix,
		Type:               t,
		GeometryType:       models.GeometryPoint,
		Status:             models.StatusActive,
		Coordinates:        at,
		InstallationDate:   time.Now().Format("2006-01-02"),
		Condition:          models.ConditionGood,
		MaintenanceHistory: []models.MaintenanceRecord{},
	}
}

func buildMarker(a models.Asset) Marker {
	label := models.TypeCatalog[a.Type].Label
	initial := "?"
	if label != "" {
		initial = label[:1]
	}
	return Marker{
		AssetID:  a.ID,
		Position: a.Coordinates,
		Color:    models.StatusColor(a.Status),
		Initial:  initial,
		SizePx:   markerSizePx,
		Tooltip:  Tooltip{Title: a.Name, Subtitle: a.Code},
	}
}

func buildPolyline(a models.Asset) Polyline {
	color := models.StatusColor(a.Status)
	transmission := a.Type == models.TypeTransmissionPipe

	mainWeight, glowWeight := distributionMainWeight, distributionGlowWeight
	if transmission {
		mainWeight, glowWeight = transmissionMainWeight, transmissionGlowWeight
	}
	dash := distributionDash
	if transmission {
		dash = ""
	}

	subtitle := a.Code
	if a.Diameter != "" || a.Material != "" {
		subtitle = strings.TrimSpace(fmt.Sprintf("%s · %s %s", a.Code, a.Diameter, a.Material))
	}

	return Polyline{
		AssetID: a.ID,
		Path:    append([]models.Coordinate(nil), a.LineCoordinates...),
		Glow: LineStyle{
			Color:        color,
			Weight:       glowWeight,
			Opacity:      glowOpacity,
			DashArray:    dash,
			HoverWeight:  glowWeight + 4,
			HoverOpacity: glowHoverOpacity,
		},
		Main: LineStyle{
			Color:        color,
			Weight:       mainWeight,
			Opacity:      mainOpacity,
			DashArray:    dash,
			HoverWeight:  mainWeight + 2,
			HoverOpacity: mainHoverOpacity,
		},
		Tooltip: Tooltip{Title: a.Name, Subtitle: subtitle},
	}
}
