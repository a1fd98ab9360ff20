// internal/api/handlers/workflow_handler.go
package handlers

import (
	"errors"
	"net/http"

	"flowius-manage-api-server/internal/console"
	"flowius-manage-api-server/internal/models"
	"flowius-manage-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler fronts the four detail-panel workflows.
type WorkflowHandler struct {
	Panel *console.Panel
}

type LinkInventoryRequest struct {
	Materials []models.MaterialUsage `json:"materials" binding:"required"`
}

// LogMaintenance appends a maintenance record to the asset's history.
func (h *WorkflowHandler) LogMaintenance(c *gin.Context) {
	var in console.MaintenanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.Panel.LogMaintenance(c.Param("id"), in)
	if err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "record": record})
}

// ReportFault marks the asset faulty and opens a corrective ticket.
func (h *WorkflowHandler) ReportFault(c *gin.Context) {
	var in console.FaultInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.Panel.ReportFault(c.Param("id"), in)
	if err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "record": record})
}

// EditAsset merges the edit form into the asset.
func (h *WorkflowHandler) EditAsset(c *gin.Context) {
	var in console.EditInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Panel.EditAsset(c.Param("id"), in); err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// LinkInventory attaches material usage to the latest maintenance record.
func (h *WorkflowHandler) LinkInventory(c *gin.Context) {
	var req LinkInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Panel.LinkInventory(c.Param("id"), req.Materials); err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetPanel returns the detail view for the current selection.
func (h *WorkflowHandler) GetPanel(c *gin.Context) {
	view, ok := h.Panel.View()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No asset selected"})
		return
	}
	c.JSON(http.StatusOK, view)
}

type OpenDialogRequest struct {
	Dialog console.Dialog `json:"dialog" binding:"required"`
}

// OpenDialog enters one of the four workflows.
func (h *WorkflowHandler) OpenDialog(c *gin.Context) {
	var req OpenDialogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Panel.Open(req.Dialog); err != nil {
		switch {
		case errors.Is(err, console.ErrDialogOpen):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, console.ErrNoSelection):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeDialog": h.Panel.Active()})
}

// CancelDialog closes the open workflow without committing anything.
func (h *WorkflowHandler) CancelDialog(c *gin.Context) {
	h.Panel.Cancel()
	c.JSON(http.StatusOK, gin.H{"activeDialog": h.Panel.Active()})
}

func workflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrAssetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, console.ErrEmptyDescription), errors.Is(err, console.ErrNoMaterials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
