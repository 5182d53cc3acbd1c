package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-service/internal/adapter/gin/handler"
	"shop-service/internal/adapter/gin/middleware"
	"shop-service/pkg/token"
)

// Setup configures and returns a Gin router with all routes and middleware.
// Item listing and the auth routes are public; item mutations and all
// cart routes sit behind the bearer-token guard. Unmatched GETs fall
// through to the static app shell.
func Setup(
	authHandler *handler.AuthHandler,
	itemHandler *handler.ItemHandler,
	cartHandler *handler.CartHandler,
	tokens *token.Manager,
	staticDir string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "shop-service",
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		api.GET("/items", itemHandler.List)

		guarded := api.Group("")
		guarded.Use(middleware.RequireAuth(tokens))
		{
			guarded.POST("/items", itemHandler.Create)
			guarded.PUT("/items/:id", itemHandler.Update)
			guarded.DELETE("/items/:id", itemHandler.Delete)

			guarded.GET("/cart", cartHandler.Get)
			guarded.POST("/cart/add", cartHandler.Add)
			guarded.POST("/cart/remove", cartHandler.Remove)
		}
	}

	router.NoRoute(spaFallback(staticDir))

	return router
}

// spaFallback serves static assets out of staticDir and hands every
// other GET the single-page-app entry file. Unmatched API routes stay
// JSON 404s instead of leaking HTML.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
