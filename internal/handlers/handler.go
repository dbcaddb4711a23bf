package handlers

import (
	"time"

	_ "smart_fridge/docs"
	"smart_fridge/internal/logger"
	"smart_fridge/internal/metrics"
	"smart_fridge/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	metrics        *metrics.Metrics
	streamInterval time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{services: services, log: log, metrics: m, streamInterval: defaultInterval}
}

// WithStreamInterval sets the default period of the /ws dashboard stream.
func (h *Handler) WithStreamInterval(d time.Duration) *Handler {
	if d > 0 && d <= maxInterval {
		h.streamInterval = d
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.operatorMiddleware)
	{
		h.registerInventoryRoutes(api)
		api.POST("/scan", h.scanImage)
		api.POST("/recipes", h.suggestRecipe)
		api.GET("/telemetry", h.getTelemetry)
		api.GET("/dashboard", h.getDashboard)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerInventoryRoutes(api *gin.RouterGroup) {
	inventory := api.Group("/inventory")
	{
		inventory.GET("", h.listInventory)
		// Body example: {"name":"Milk","quantity":1,"unit":"carton","category":"Dairy","expiry_date":"2025-03-12"}
		inventory.POST("", h.addItem)
		inventory.DELETE("/:id", h.removeItem)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
