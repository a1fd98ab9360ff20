// internal/api/routes/routes.go
package routes

import (
	"flowius-manage-api-server/config"
	"flowius-manage-api-server/internal/api/handlers"
	"flowius-manage-api-server/internal/console"
	"flowius-manage-api-server/internal/geomap"
	"flowius-manage-api-server/internal/s3"
	"flowius-manage-api-server/internal/sidebar"
	"flowius-manage-api-server/internal/socket"
	"flowius-manage-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires every handler onto the /api/v1 surface.
func SetupRouter(
	cfg config.Config,
	st *store.Store,
	panel *console.Panel,
	renderer *geomap.Renderer,
	sidebarBuilder *sidebar.Builder,
	wsHub *socket.Hub,
	uploader *s3.Uploader,
	notifier console.Notifier,
	logger *zap.SugaredLogger,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	assetHandler := &handlers.AssetHandler{Store: st, Notifier: notifier}
	workflowHandler := &handlers.WorkflowHandler{Panel: panel}
	mapHandler := &handlers.MapHandler{Renderer: renderer, Notifier: notifier}
	sidebarHandler := &handlers.SidebarHandler{Store: st, Sidebar: sidebarBuilder}
	photoHandler := &handlers.PhotoHandler{Store: st, Uploader: uploader, Notifier: notifier}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, Logger: logger}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		assets := apiV1.Group("/assets")
		{
			assets.GET("/", assetHandler.ListAssets)
			assets.POST("/", assetHandler.CreateAsset)
			assets.GET("/:id", assetHandler.GetAsset)
			assets.PATCH("/:id", assetHandler.UpdateAsset)

			assets.POST("/:id/maintenance", workflowHandler.LogMaintenance)
			assets.POST("/:id/fault", workflowHandler.ReportFault)
			assets.POST("/:id/edit", workflowHandler.EditAsset)
			assets.POST("/:id/inventory", workflowHandler.LinkInventory)
			assets.POST("/:id/photos", photoHandler.UploadPhoto)
		}

		apiV1.GET("/view", assetHandler.GetFilteredAssets)

		geo := apiV1.Group("/map")
		{
			geo.GET("/scene", mapHandler.GetScene)
			geo.POST("/click", mapHandler.Click)
		}

		apiV1.GET("/sidebar", sidebarHandler.GetSidebar)
		apiV1.GET("/statusbar", sidebarHandler.GetStatusBar)
		apiV1.PUT("/filters", sidebarHandler.SetFilters)
		apiV1.POST("/layers/:type/toggle", sidebarHandler.ToggleLayer)
		apiV1.POST("/statuses/:status/toggle", sidebarHandler.ToggleStatus)
		apiV1.PUT("/selection", sidebarHandler.SetSelection)
		apiV1.PUT("/registration", sidebarHandler.SetRegistration)

		panelRoutes := apiV1.Group("/panel")
		{
			panelRoutes.GET("/", workflowHandler.GetPanel)
			panelRoutes.POST("/dialog", workflowHandler.OpenDialog)
			panelRoutes.DELETE("/dialog", workflowHandler.CancelDialog)
		}
	}

	return router
}
