package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/micromart/internal/server/http/handlers"
	"github.com/polkiloo/micromart/internal/server/http/middleware"
)

// SetupDirectory configures the user directory router.
func SetupDirectory(facade handlers.DirectoryFacade, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)

	serviceHandler := handlers.NewServiceHandler("User Service")
	userHandler := handlers.NewUserHandler(facade)

	engine.GET("/", serviceHandler.Root)
	engine.GET("/health", serviceHandler.Health)
	engine.GET("/users/:id", userHandler.Get)
	engine.GET("/users", userHandler.List)
	engine.POST("/users", userHandler.Create)
	engine.DELETE("/users/:id", userHandler.Delete)

	return engine
}

func newEngine(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	return engine
}
