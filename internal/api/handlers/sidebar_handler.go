// internal/api/handlers/sidebar_handler.go
package handlers

import (
	"errors"
	"net/http"

	"flowius-manage-api-server/internal/models"
	"flowius-manage-api-server/internal/sidebar"
	"flowius-manage-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

// SidebarHandler fronts the filter panel: search, status summary, layer
// toggles, asset list, selection and the registration toggle.
type SidebarHandler struct {
	Store   *store.Store
	Sidebar *sidebar.Builder
}

// GetSidebar returns the whole sidebar view model.
func (h *SidebarHandler) GetSidebar(c *gin.Context) {
	c.JSON(http.StatusOK, h.Sidebar.View())
}

// GetStatusBar returns the bottom-bar stats.
func (h *SidebarHandler) GetStatusBar(c *gin.Context) {
	c.JSON(http.StatusOK, h.Sidebar.StatusBar())
}

// SetFilters merges a partial filter update.
func (h *SidebarHandler) SetFilters(c *gin.Context) {
	var update store.FilterUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Store.SetFilters(update)
	c.JSON(http.StatusOK, h.Store.Filters())
}

// ToggleLayer flips one asset-type layer. Polygon types stay out of the
// layer panel, so toggling them is rejected.
func (h *SidebarHandler) ToggleLayer(c *gin.Context) {
	t := models.AssetType(c.Param("type"))
	info, ok := models.TypeCatalog[t]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown asset type"})
		return
	}
	if info.Category == models.CategoryPolygon {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Polygon layers are always visible"})
		return
	}
	visible := h.Store.ToggleLayer(t)
	c.JSON(http.StatusOK, gin.H{"type": t, "visible": visible})
}

// ToggleStatus flips one status's membership in the status filter.
func (h *SidebarHandler) ToggleStatus(c *gin.Context) {
	st := models.AssetStatus(c.Param("status"))
	if _, ok := models.StatusCatalog[st]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}
	h.Sidebar.ToggleStatus(st)
	c.JSON(http.StatusOK, h.Store.Filters())
}

type SelectionRequest struct {
	ID string `json:"id"` // empty clears the selection
}

// SetSelection selects an asset by id or clears the selection.
func (h *SidebarHandler) SetSelection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ID == "" {
		h.Store.ClearSelection()
		c.JSON(http.StatusOK, gin.H{"selected": nil})
		return
	}
	if err := h.Store.Select(req.ID); err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	asset, _ := h.Store.Selected()
	c.JSON(http.StatusOK, gin.H{"selected": asset})
}

type RegistrationRequest struct {
	Registering *bool `json:"registering" binding:"required"`
}

// SetRegistration enters or leaves click-to-register mode.
func (h *SidebarHandler) SetRegistration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Store.SetRegistering(*req.Registering)
	c.JSON(http.StatusOK, gin.H{"registering": h.Store.Registering()})
}
