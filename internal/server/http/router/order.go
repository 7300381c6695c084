package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/micromart/internal/server/http/handlers"
)

// SetupOrder configures the order service router.
func SetupOrder(facade handlers.OrderFacade, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)

	serviceHandler := handlers.NewServiceHandler("Order Service")
	orderHandler := handlers.NewOrderHandler(facade)

	engine.GET("/", serviceHandler.Root)
	engine.GET("/health", serviceHandler.Health)
	engine.GET("/orders/:id", orderHandler.Get)
	engine.GET("/orders", orderHandler.List)
	engine.GET("/orders/user/:id", orderHandler.ListForUser)
	engine.POST("/orders", orderHandler.Create)

	return engine
}
