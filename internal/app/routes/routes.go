package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/setnu/clubportal/internal/app/controllers"
	"github.com/setnu/clubportal/internal/middleware"
	"github.com/setnu/clubportal/internal/pkg/websocket"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Auth           *controllers.AuthController
	Portal         *controllers.PortalController
	Admin          *controllers.AdminController
	Notifications  *websocket.Handler
	AuthMiddleware *middleware.AuthMiddleware
	// Health reports backend reachability; nil means always healthy.
	Health func(*gin.Context) error
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, h Handlers) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		if h.Health != nil {
			if err := h.Health(c); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/profile", h.AuthMiddleware.JWTAuth(), h.Auth.GetProfile)
	}

	// --- Public portal pages ---
	v1.GET("/home", h.Portal.Home)
	v1.GET("/events", h.Portal.Events)
	v1.GET("/resources", h.Portal.Resources)
	v1.GET("/gallery", h.Portal.Gallery)
	v1.GET("/team", h.Portal.Team)
	v1.GET("/about", h.Portal.About)

	// --- Admin panel ---
	admin := v1.Group("/admin")
	admin.Use(h.AuthMiddleware.JWTAuth(), h.AuthMiddleware.RequireAdmin())
	{
		admin.GET("", h.Admin.Tabs)
		if h.Notifications != nil {
			admin.GET("/notifications/ws", h.Notifications.HandleConnection)
		}

		admin.POST("/events", h.Admin.CreateEvent())
		admin.PUT("/events/:id", h.Admin.UpdateEvent())

		admin.POST("/team", h.Admin.CreateTeamMember())
		admin.PUT("/team/:id", h.Admin.UpdateTeamMember())

		admin.POST("/about", h.Admin.CreateSection())
		admin.PUT("/about/:id", h.Admin.UpdateSection())

		admin.POST("/resources", h.Admin.UploadResource())
		admin.PUT("/resources/:id", h.Admin.UpdateResource())

		admin.POST("/gallery", h.Admin.UploadImage())
		admin.PUT("/gallery/:id", h.Admin.UpdateImage())

		// generic across tabs
		admin.GET("/:tab", h.Admin.Mount)
		admin.GET("/:tab/:id/edit", h.Admin.Edit)
		admin.DELETE("/:tab/:id", h.Admin.Delete)
	}
}
