package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/defect-tracker-api/internal/constants"
	"github.com/yukikurage/defect-tracker-api/internal/middleware"
	"github.com/yukikurage/defect-tracker-api/internal/models"
)

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Auth    *AuthHandler
	Defects *DefectHandler
	Users   *UserHandler
}

// RegisterRoutes mounts the public and token-protected API routes on r.
func RegisterRoutes(r *gin.Engine, tokens middleware.TokenVerifier, h Handlers) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, constants.RootMessage)
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Defect Tracker API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// Defect routes (protected)
		defects := api.Group("/defects")
		defects.Use(middleware.RequireAuth(tokens))
		{
			defects.GET("", h.Defects.ListDefects)
			defects.GET("/:id", h.Defects.GetDefect)
			defects.POST("",
				middleware.RequirePermission(models.ActionDefectCreate, "Permission denied. Observers cannot create defects."),
				h.Defects.CreateDefect)
			defects.PUT("/:id",
				middleware.RequirePermission(models.ActionDefectUpdate, "Permission denied. Observers cannot update defects."),
				h.Defects.UpdateDefect)
			defects.DELETE("/:id",
				middleware.RequirePermission(models.ActionDefectDelete, "Permission denied. Only managers can delete defects."),
				h.Defects.DeleteDefect)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(tokens))
		{
			users.GET("", h.Users.ListUsers)
			users.PUT("/role", h.Users.ChangeRole)
		}
	}
}
