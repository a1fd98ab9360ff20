// internal/store/store.go
package store

import (
	"errors"
	"strings"
	"sync"

	"flowius-manage-api-server/internal/models"
)

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrDuplicateID   = errors.New("asset with this ID already exists")
)

// Filters narrows the visible asset set. Empty slices and an empty search
// string mean "no restriction" for that dimension; all predicates are ANDed.
type Filters struct {
	Search   string               `json:"search"`
	Statuses []models.AssetStatus `json:"statuses"`
	Types    []models.AssetType   `json:"types"`
}

// FilterUpdate is a partial filter change; nil fields keep their value.
type FilterUpdate struct {
	Search   *string               `json:"search"`
	Statuses *[]models.AssetStatus `json:"statuses"`
	Types    *[]models.AssetType   `json:"types"`
}

// AssetUpdate is a partial asset change; nil fields keep their value.
// Pointers to empty strings clear the optional field they target.
type AssetUpdate struct {
	Name               *string                     `json:"name"`
	Status             *models.AssetStatus         `json:"status"`
	Condition          *models.AssetCondition      `json:"condition"`
	Capacity           *string                     `json:"capacity"`
	Diameter           *string                     `json:"diameter"`
	Material           *string                     `json:"material"`
	Notes              *string                     `json:"notes"`
	LastMaintenance    *string                     `json:"lastMaintenance"`
	MaintenanceHistory *[]models.MaintenanceRecord `json:"maintenanceHistory"`
	Photos             *[]string                   `json:"photos"`
}

// Store is the single source of truth for the console session: the asset
// collection, the current selection, active filters, visible layers and the
// click-to-register flag. Handlers run on concurrent goroutines, so every
// exposed operation takes the lock and is atomic with respect to the rest.
type Store struct {
	mu            sync.RWMutex
	assets        []models.Asset
	selectedID    string
	filters       Filters
	visibleLayers map[models.AssetType]bool
	registering   bool

	subMu       sync.Mutex
	subscribers []func()
}

// New builds a store seeded with the given collection. All layers start
// visible, nothing is selected and no filter is active.
func New(seed []models.Asset) *Store {
	layers := make(map[models.AssetType]bool, len(models.AllTypes))
	for _, t := range models.AllTypes {
		layers[t] = true
	}
	return &Store{
		assets:        append([]models.Asset(nil), seed...),
		visibleLayers: layers,
	}
}

// Subscribe registers a callback invoked after every committed mutation.
// Callbacks run outside the store lock and may read the store freely.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := append(([]func())(nil), s.subscribers...)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Select marks the asset with the given id as selected, which implies an
// open detail view. Returns ErrAssetNotFound for unknown ids.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	if _, ok := s.indexOf(id); !ok {
		s.mu.Unlock()
		return ErrAssetNotFound
	}
	s.selectedID = id
	s.mu.Unlock()
	s.notify()
	return nil
}

// ClearSelection drops the selection, closing the detail view.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selectedID = ""
	s.mu.Unlock()
	s.notify()
}

// Selected returns a copy of the selected asset. The selection is a live
// reference by id, so any committed mutation shows up here immediately.
func (s *Store) Selected() (models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedID == "" {
		return models.Asset{}, false
	}
	if i, ok := s.indexOf(s.selectedID); ok {
		return s.assets[i], true
	}
	return models.Asset{}, false
}

// SetFilters merges the non-nil fields of the update into the current
// filters.
func (s *Store) SetFilters(u FilterUpdate) {
	s.mu.Lock()
	if u.Search != nil {
		s.filters.Search = *u.Search
	}
	if u.Statuses != nil {
		s.filters.Statuses = append([]models.AssetStatus(nil), (*u.Statuses)...)
	}
	if u.Types != nil {
		s.filters.Types = append([]models.AssetType(nil), (*u.Types)...)
	}
	s.mu.Unlock()
	s.notify()
}

// Filters returns the active filter set.
func (s *Store) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := s.filters
	f.Statuses = append([]models.AssetStatus(nil), s.filters.Statuses...)
	f.Types = append([]models.AssetType(nil), s.filters.Types...)
	return f
}

// ToggleLayer flips the visibility of one asset-type layer and reports the
// new visibility. Toggling twice restores the original set.
func (s *Store) ToggleLayer(t models.AssetType) bool {
	s.mu.Lock()
	s.visibleLayers[t] = !s.visibleLayers[t]
	visible := s.visibleLayers[t]
	s.mu.Unlock()
	s.notify()
	return visible
}

// LayerVisible reports whether the given type's layer is shown.
func (s *Store) LayerVisible(t models.AssetType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleLayers[t]
}

// SetRegistering enters or leaves click-to-register mode.
func (s *Store) SetRegistering(v bool) {
	s.mu.Lock()
	s.registering = v
	s.mu.Unlock()
	s.notify()
}

// Registering reports whether the next map click should place an asset.
func (s *Store) Registering() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registering
}

// AddAsset appends a new asset to the collection and leaves registration
// mode as a side effect. The id must not collide with an existing asset.
func (s *Store) AddAsset(a models.Asset) error {
	s.mu.Lock()
	if _, ok := s.indexOf(a.ID); ok {
		s.mu.Unlock()
		return ErrDuplicateID
	}
	s.assets = append(s.assets, a)
	s.registering = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// UpdateAsset merges the non-nil fields of the update into the asset with
// the given id. Unknown ids are a silent no-op and report false; the HTTP
// layer turns that into a 404 before callers get here. The selection tracks
// the same asset by id, so it reflects the merge automatically.
func (s *Store) UpdateAsset(id string, u AssetUpdate) bool {
	s.mu.Lock()
	i, ok := s.indexOf(id)
	if !ok {
		s.mu.Unlock()
		return false
	}
	a := &s.assets[i]
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Condition != nil {
		a.Condition = *u.Condition
	}
	if u.Capacity != nil {
		a.Capacity = *u.Capacity
	}
	if u.Diameter != nil {
		a.Diameter = *u.Diameter
	}
	if u.Material != nil {
		a.Material = *u.Material
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
	if u.LastMaintenance != nil {
		a.LastMaintenance = *u.LastMaintenance
	}
	if u.MaintenanceHistory != nil {
		a.MaintenanceHistory = append([]models.MaintenanceRecord(nil), (*u.MaintenanceHistory)...)
	}
	if u.Photos != nil {
		a.Photos = append([]string(nil), (*u.Photos)...)
	}
	s.mu.Unlock()
	s.notify()
	return true
}

// Asset returns a copy of the asset with the given id.
func (s *Store) Asset(id string) (models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.indexOf(id); ok {
		return s.assets[i], true
	}
	return models.Asset{}, false
}

// Assets returns a copy of the full collection in insertion order.
func (s *Store) Assets() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Asset(nil), s.assets...)
}

// FilteredAssets recomputes the visible subset on every call: layer
// visibility AND type filter AND status filter AND case-insensitive
// substring search over name, code and id. No caching; a read always
// reflects the last committed mutation.
func (s *Store) FilteredAssets() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		if s.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) matches(a models.Asset) bool {
	if !s.visibleLayers[a.Type] {
		return false
	}
	if len(s.filters.Types) > 0 && !containsType(s.filters.Types, a.Type) {
		return false
	}
	if len(s.filters.Statuses) > 0 && !containsStatus(s.filters.Statuses, a.Status) {
		return false
	}
	if s.filters.Search != "" {
		q := strings.ToLower(s.filters.Search)
		return strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Code), q) ||
			strings.Contains(strings.ToLower(a.ID), q)
	}
	return true
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(id string) (int, bool) {
	for i := range s.assets {
		if s.assets[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func containsType(list []models.AssetType, t models.AssetType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func containsStatus(list []models.AssetStatus, st models.AssetStatus) bool {
	for _, v := range list {
		if v == st {
			return true
		}
	}
	return false
}
