// internal/api/handlers/asset_handler.go
package handlers

import (
	"net/http"

	"flowius-manage-api-server/internal/console"
	"flowius-manage-api-server/internal/models"
	"flowius-manage-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	Store    *store.Store
	Notifier console.Notifier
}

// CreateAssetRequest carries a full asset to register. The geometry type is
// derived from the type server-side, whatever the client sent.
type CreateAssetRequest struct {
	ID                 string              `json:"id" binding:"required"`
	Name               string              `json:"name" binding:"required"`
	Code               string              `json:"code" binding:"required"`
	Type               models.AssetType    `json:"type" binding:"required"`
	Coordinates        models.Coordinate   `json:"coordinates"`
	LineCoordinates    []models.Coordinate `json:"lineCoordinates"`
	PolygonCoordinates []models.Coordinate `json:"polygonCoordinates"`
	InstallationDate   string              `json:"installationDate"`
	Capacity           string              `json:"capacity"`
	Diameter           string              `json:"diameter"`
	Material           string              `json:"material"`
	Notes              string              `json:"notes"`
}

// ListAssets returns the full collection.
func (h *AssetHandler) ListAssets(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Assets())
}

// GetFilteredAssets returns the filtered view.
func (h *AssetHandler) GetFilteredAssets(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.FilteredAssets())
}

// GetAsset returns one asset by id.
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, ok := h.Store.Asset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}
	c.JSON(http.StatusOK, asset)
}

// CreateAsset registers a new asset supplied in full, e.g. by an import
// tool rather than a map click.
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := models.TypeCatalog[req.Type]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown asset type"})
		return
	}

	asset := models.Asset{
		ID:                 req.ID,
		Name:               req.Name,
		Code:               req.Code,
		Type:               req.Type,
		GeometryType:       models.GeometryFor(req.Type),
		Status:             models.StatusActive,
		Coordinates:        req.Coordinates,
		LineCoordinates:    req.LineCoordinates,
		PolygonCoordinates: req.PolygonCoordinates,
		InstallationDate:   req.InstallationDate,
		Condition:          models.ConditionGood,
		Capacity:           req.Capacity,
		Diameter:           req.Diameter,
		Material:           req.Material,
		Notes:              req.Notes,
		MaintenanceHistory: []models.MaintenanceRecord{},
	}
	if err := asset.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.AddAsset(asset); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	h.Notifier.Success("Asset registered")
	c.JSON(http.StatusCreated, asset)
}

// UpdateAsset merges a partial update into the asset.
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	var update store.AssetUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if !h.Store.UpdateAsset(id, update) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}

	asset, _ := h.Store.Asset(id)
	c.JSON(http.StatusOK, asset)
}
