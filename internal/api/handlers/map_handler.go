// internal/api/handlers/map_handler.go
package handlers

import (
	"net/http"

	"flowius-manage-api-server/internal/console"
	"flowius-manage-api-server/internal/geomap"
	"flowius-manage-api-server/internal/models"

	"github.com/gin-gonic/gin"
)

type MapHandler struct {
	Renderer *geomap.Renderer
	Notifier console.Notifier
}

// MapClickRequest is a coordinate click on the map surface, with the
// optional overrides for a registration placement.
type MapClickRequest struct {
	Lat  float64          `json:"lat" binding:"min=-90,max=90"`
	Lng  float64          `json:"lng" binding:"min=-180,max=180"`
	Name string           `json:"name"`
	Type models.AssetType `json:"type"`
}

// GetScene returns the current full redraw of the filtered view.
func (h *MapHandler) GetScene(c *gin.Context) {
	c.JSON(http.StatusOK, h.Renderer.BuildScene())
}

// Click handles a map-surface click. In registration mode exactly one point
// asset is created at the coordinate and registration mode ends; otherwise
// the click does nothing.
func (h *MapHandler) Click(c *gin.Context) {
	var req MapClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, created, err := h.Renderer.Click(
		models.Coordinate{Lat: req.Lat, Lng: req.Lng},
		geomap.RegistrationRequest{Name: req.Name, Type: req.Type},
	)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"created": false})
		return
	}

	h.Notifier.Success("Asset registered")
	c.JSON(http.StatusCreated, gin.H{"created": true, "asset": asset})
}
