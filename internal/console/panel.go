// internal/console/panel.go
package console

import (
	"errors"
	"strings"
	"sync"
	"time"

	"flowius-manage-api-server/internal/models"
	"flowius-manage-api-server/internal/store"

	"github.com/google/uuid"
)

// Dialog names the editing workflow currently open in the detail panel.
// The machine is star-shaped: every workflow is entered from DialogNone and
// returns to DialogNone on submit or cancel.
type Dialog string

const (
	DialogNone        Dialog = "none"
	DialogMaintenance Dialog = "maintenance"
	DialogFault       Dialog = "fault"
	DialogEdit        Dialog = "edit"
	DialogInventory   Dialog = "inventory"
)

var (
	ErrNoSelection      = errors.New("no asset selected")
	ErrDialogOpen       = errors.New("another workflow is already open")
	ErrUnknownDialog    = errors.New("unknown workflow")
	ErrEmptyDescription = errors.New("description is required")
	ErrNoMaterials      = errors.New("at least one material with a name is required")
)

// Notifier receives fire-and-forget success confirmations.
type Notifier interface {
	Success(message string)
}

// MaintenanceInput is the log-maintenance form.
type MaintenanceInput struct {
	Type        models.MaintenanceType   `json:"type"`
	Description string                   `json:"description"`
	Technician  string                   `json:"technician"`
	Status      models.MaintenanceStatus `json:"status"`
}

// FaultInput is the report-fault form.
type FaultInput struct {
	Description string `json:"description"`
}

// EditInput is the edit-asset form; nil fields are left untouched and
// pointers to empty strings clear the optional field.
type EditInput struct {
	Name      *string                `json:"name"`
	Status    *models.AssetStatus    `json:"status"`
	Condition *models.AssetCondition `json:"condition"`
	Capacity  *string                `json:"capacity"`
	Material  *string                `json:"material"`
}

// Panel hosts the detail view and the four editing workflows. Submits
// validate first, commit through the store, confirm through the notifier
// and close whatever dialog was open; cancel commits nothing.
type Panel struct {
	Store    *store.Store
	Notifier Notifier

	mu     sync.Mutex
	active Dialog
}

// NewPanel builds a panel with no workflow open.
func NewPanel(s *store.Store, n Notifier) *Panel {
	return &Panel{Store: s, Notifier: n, active: DialogNone}
}

// Active returns the currently open workflow.
func (p *Panel) Active() Dialog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Open enters a workflow. Only legal from DialogNone, and only while an
// asset is selected.
func (p *Panel) Open(d Dialog) error {
	switch d {
	case DialogMaintenance, DialogFault, DialogEdit, DialogInventory:
	default:
		return ErrUnknownDialog
	}
	if _, ok := p.Store.Selected(); !ok {
		return ErrNoSelection
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active != DialogNone {
		return ErrDialogOpen
	}
	p.active = d
	return nil
}

// Cancel closes any open workflow without mutating anything.
func (p *Panel) Cancel() {
	p.mu.Lock()
	p.active = DialogNone
	p.mu.Unlock()
}

func (p *Panel) closeDialog() {
	p.mu.Lock()
	p.active = DialogNone
	p.mu.Unlock()
}

// LogMaintenance prepends a new record to the asset's history and stamps
// lastMaintenance with the record date. A blank description blocks the
// submit entirely; a blank technician is stored as "Unknown".
func (p *Panel) LogMaintenance(id string, in MaintenanceInput) (models.MaintenanceRecord, error) {
	if strings.TrimSpace(in.Description) == "" {
		return models.MaintenanceRecord{}, ErrEmptyDescription
	}
	asset, ok := p.Store.Asset(id)
	if !ok {
		return models.MaintenanceRecord{}, store.ErrAssetNotFound
	}

	record := models.MaintenanceRecord{
		ID:          newRecordID(),
		Date:        today(),
		Type:        in.Type,
		Description: in.Description,
		Technician:  in.Technician,
		Status:      in.Status,
	}
	if record.Type == "" {
		record.Type = models.MaintenancePreventive
	}
	if record.Status == "" {
		record.Status = models.MaintenanceCompleted
	}
	if strings.TrimSpace(record.Technician) == "" {
		record.Technician = "Unknown"
	}

	history := prepend(record, asset.MaintenanceHistory)
	p.Store.UpdateAsset(id, store.AssetUpdate{
		MaintenanceHistory: &history,
		LastMaintenance:    &record.Date,
	})
	p.Notifier.Success("Maintenance record logged")
	p.closeDialog()
	return record, nil
}

// ReportFault marks the asset faulty in poor condition and opens a pending
// corrective ticket for it.
func (p *Panel) ReportFault(id string, in FaultInput) (models.MaintenanceRecord, error) {
	if strings.TrimSpace(in.Description) == "" {
		return models.MaintenanceRecord{}, ErrEmptyDescription
	}
	asset, ok := p.Store.Asset(id)
	if !ok {
		return models.MaintenanceRecord{}, store.ErrAssetNotFound
	}

	record := models.MaintenanceRecord{
		ID:          newRecordID(),
		Date:        today(),
		Type:        models.MaintenanceCorrective,
		Description: in.Description,
		Technician:  "Current User",
		Status:      models.MaintenancePending,
	}

	history := prepend(record, asset.MaintenanceHistory)
	faulty := models.StatusFaulty
	poor := models.ConditionPoor
	p.Store.UpdateAsset(id, store.AssetUpdate{
		Status:             &faulty,
		Condition:          &poor,
		MaintenanceHistory: &history,
	})
	p.Notifier.Success("Fault reported — asset marked as faulty")
	p.closeDialog()
	return record, nil
}

// EditAsset merges the form fields into the asset.
func (p *Panel) EditAsset(id string, in EditInput) error {
	if _, ok := p.Store.Asset(id); !ok {
		return store.ErrAssetNotFound
	}
	p.Store.UpdateAsset(id, store.AssetUpdate{
		Name:      in.Name,
		Status:    in.Status,
		Condition: in.Condition,
		Capacity:  in.Capacity,
		Material:  in.Material,
	})
	p.Notifier.Success("Asset updated")
	p.closeDialog()
	return nil
}

// LinkInventory attaches material rows to the asset's most recent
// maintenance record, or synthesizes a completed preventive record when the
// history is empty. Rows without a name are dropped; quantities below 1 and
// blank units get the form defaults.
func (p *Panel) LinkInventory(id string, rows []models.MaterialUsage) error {
	valid := make([]models.MaterialUsage, 0, len(rows))
	for _, row := range rows {
		row.Name = strings.TrimSpace(row.Name)
		if row.Name == "" {
			continue
		}
		if row.Quantity < 1 {
			row.Quantity = 1
		}
		if strings.TrimSpace(row.Unit) == "" {
			row.Unit = "units"
		}
		valid = append(valid, row)
	}
	if len(valid) == 0 {
		return ErrNoMaterials
	}

	asset, ok := p.Store.Asset(id)
	if !ok {
		return store.ErrAssetNotFound
	}

	var history []models.MaintenanceRecord
	if len(asset.MaintenanceHistory) > 0 {
		history = append([]models.MaintenanceRecord(nil), asset.MaintenanceHistory...)
		latest := &history[0]
		latest.MaterialsUsed = append(latest.MaterialsUsed, valid...)
	} else {
		history = []models.MaintenanceRecord{{
			ID:            newRecordID(),
			Date:          today(),
			Type:          models.MaintenancePreventive,
			Description:   "Inventory linked",
			Technician:    "Current User",
			Status:        models.MaintenanceCompleted,
			MaterialsUsed: valid,
		}}
	}

	p.Store.UpdateAsset(id, store.AssetUpdate{MaintenanceHistory: &history})
	p.Notifier.Success("Inventory linked to asset")
	p.closeDialog()
	return nil
}

func prepend(r models.MaintenanceRecord, history []models.MaintenanceRecord) []models.MaintenanceRecord {
	out := make([]models.MaintenanceRecord, 0, len(history)+1)
	out = append(out, r)
	return append(out, history...)
}

func newRecordID() string {
	return "MH-" + strings.ToUpper(uuid.New().String()[:8])
}

func today() string {
	return time.Now().Format("2006-01-02")
}
