// internal/api/handlers/photo_handler.go
package handlers

import (
	"net/http"

	"flowius-manage-api-server/internal/console"
	"flowius-manage-api-server/internal/s3"
	"flowius-manage-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	Store    *store.Store
	Uploader *s3.Uploader // nil when photo storage is not configured
	Notifier console.Notifier
}

// UploadPhoto stores a photo for the asset and appends its URL to the
// asset's photo list.
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo storage is not configured"})
		return
	}

	id := c.Param("id")
	asset, ok := h.Store.Asset(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := h.Uploader.UploadPhoto(c.Request.Context(), id, fileHeader.Filename, contentType, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo", "details": err.Error()})
		return
	}

	photos := append(append([]string(nil), asset.Photos...), url)
	h.Store.UpdateAsset(id, store.AssetUpdate{Photos: &photos})

	h.Notifier.Success("Photo attached to asset")
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
