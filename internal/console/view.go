// internal/console/view.go
package console

import "flowius-manage-api-server/internal/models"

// DetailView is everything the detail panel renders for the selection.
type DetailView struct {
	Asset        models.Asset `json:"asset"`
	TypeLabel    string       `json:"typeLabel"`
	StatusLabel  string       `json:"statusLabel"`
	StatusColor  string       `json:"statusColor"`
	RecordCount  int          `json:"recordCount"`
	ActiveDialog Dialog       `json:"activeDialog"`
}

// View returns the detail view for the selected asset, or false when
// nothing is selected (panel closed).
func (p *Panel) View() (DetailView, bool) {
	asset, ok := p.Store.Selected()
	if !ok {
		return DetailView{}, false
	}
	return DetailView{
		Asset:        asset,
		TypeLabel:    models.TypeCatalog[asset.Type].Label,
		StatusLabel:  models.StatusCatalog[asset.Status].Label,
		StatusColor:  models.StatusColor(asset.Status),
		RecordCount:  len(asset.MaintenanceHistory),
		ActiveDialog: p.Active(),
	}, true
}
