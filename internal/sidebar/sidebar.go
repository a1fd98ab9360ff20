// internal/sidebar/sidebar.go
package sidebar

import (
	"flowius-manage-api-server/internal/models"
	"flowius-manage-api-server/internal/store"
)

// StatusCount is one entry of the status summary. Count is live over the
// filtered view; Selected mirrors membership in the status filter so the
// panel can render the toggle state.
type StatusCount struct {
	Status   models.AssetStatus `json:"status"`
	Label    string             `json:"label"`
	Count    int                `json:"count"`
	Selected bool               `json:"selected"`
}

// LayerToggle is one row of the layer panel.
type LayerToggle struct {
	Type    models.AssetType `json:"type"`
	Label   string           `json:"label"`
	Visible bool             `json:"visible"`
	Count   int              `json:"count"` // filtered assets of this type
}

// AssetRow is one clickable row of the flat asset list.
type AssetRow struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Code      string             `json:"code"`
	Status    models.AssetStatus `json:"status"`
	TypeLabel string             `json:"typeLabel"`
}

// View is the whole sidebar state in one read.
type View struct {
	Search        string        `json:"search"`
	StatusSummary []StatusCount `json:"statusSummary"`
	PointLayers   []LayerToggle `json:"pointLayers"`
	LinearLayers  []LayerToggle `json:"linearLayers"`
	Assets        []AssetRow    `json:"assets"`
	Registering   bool          `json:"registering"`
	Hint          string        `json:"hint,omitempty"`
}

// StatusBar carries the whole-collection stats shown along the bottom of
// the console. Counts here ignore filters; Shown is the filtered size.
type StatusBar struct {
	Total            int  `json:"total"`
	Active           int  `json:"active"`
	Faulty           int  `json:"faulty"`
	UnderMaintenance int  `json:"underMaintenance"`
	Shown            int  `json:"shown"`
	Registering      bool `json:"registering"`
}

// Builder derives sidebar and status-bar view models from the store.
type Builder struct {
	Store *store.Store
}

// View assembles the sidebar from the current store state.
func (b *Builder) View() View {
	filtered := b.Store.FilteredAssets()
	filters := b.Store.Filters()

	statusCounts := make(map[models.AssetStatus]int, len(models.AllStatuses))
	typeCounts := make(map[models.AssetType]int, len(models.AllTypes))
	for _, a := range filtered {
		statusCounts[a.Status]++
		typeCounts[a.Type]++
	}

	selected := make(map[models.AssetStatus]bool, len(filters.Statuses))
	for _, st := range filters.Statuses {
		selected[st] = true
	}

	v := View{
		Search:      filters.Search,
		Registering: b.Store.Registering(),
	}
	if v.Registering {
		v.Hint = "Click on the map to place an asset"
	}

	for _, st := range models.AllStatuses {
		v.StatusSummary = append(v.StatusSummary, StatusCount{
			Status:   st,
			Label:    models.StatusCatalog[st].Label,
			Count:    statusCounts[st],
			Selected: selected[st],
		})
	}

	v.PointLayers = b.layerGroup(models.PointTypes, typeCounts)
	v.LinearLayers = b.layerGroup(models.LinearTypes, typeCounts)

	v.Assets = make([]AssetRow, 0, len(filtered))
	for _, a := range filtered {
		v.Assets = append(v.Assets, AssetRow{
			ID:        a.ID,
			Name:      a.Name,
			Code:      a.Code,
			Status:    a.Status,
			TypeLabel: models.TypeCatalog[a.Type].Label,
		})
	}
	return v
}

// ToggleStatus flips one status's membership in the status filter. The
// summary buttons drive the filter this way rather than replacing it.
func (b *Builder) ToggleStatus(st models.AssetStatus) {
	current := b.Store.Filters().Statuses
	next := make([]models.AssetStatus, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == st {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, st)
	}
	b.Store.SetFilters(store.FilterUpdate{Statuses: &next})
}

// StatusBar assembles the bottom bar stats.
func (b *Builder) StatusBar() StatusBar {
	all := b.Store.Assets()
	bar := StatusBar{
		Total:       len(all),
		Shown:       len(b.Store.FilteredAssets()),
		Registering: b.Store.Registering(),
	}
	for _, a := range all {
		switch a.Status {
		case models.StatusActive:
			bar.Active++
		case models.StatusFaulty:
			bar.Faulty++
		case models.StatusUnderMaintenance:
			bar.UnderMaintenance++
		}
	}
	return bar
}

func (b *Builder) layerGroup(types []models.AssetType, counts map[models.AssetType]int) []LayerToggle {
	out := make([]LayerToggle, 0, len(types))
	for _, t := range types {
		out = append(out, LayerToggle{
			Type:    t,
			Label:   models.TypeCatalog[t].Label,
			Visible: b.Store.LayerVisible(t),
			Count:   counts[t],
		})
	}
	return out
}
