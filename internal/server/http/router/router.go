package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/salwa-health/rentalboard/internal/server/http/handlers"
	"github.com/salwa-health/rentalboard/internal/server/http/middleware"
)

// Facade is the combined surface the router wires into handlers and
// middleware.
type Facade interface {
	handlers.RentalFacade
	middleware.SessionFacade
}

// Setup configures gin router with handlers and middleware.
func Setup(facade Facade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.Session(facade))

	workspaceHandler := handlers.NewWorkspaceHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)

	api := engine.Group("/api")
	api.POST("/workspace", workspaceHandler.Reset)

	rental := api.Group("/rental-services")
	rental.GET("/orders", orderHandler.List)
	rental.GET("/orders/:id", orderHandler.Detail)
	rental.POST("/orders/:id/approve", orderHandler.Approve)
	rental.GET("/orders/:id/reject", orderHandler.RejectPrompt)
	rental.POST("/orders/:id/reject", orderHandler.Reject)
	rental.POST("/orders/:id/publish", orderHandler.Publish)
	rental.POST("/orders/:id/pending", orderHandler.MarkPending)
	rental.POST("/orders/:id/reopen", orderHandler.Reopen)
	rental.POST("/orders/:id/decision", orderHandler.Decide)
	rental.GET("/notifications", notificationHandler.Feed)

	return engine
}
