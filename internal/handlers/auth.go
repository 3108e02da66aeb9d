package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/defect-tracker-api/internal/errors"
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"github.com/yukikurage/defect-tracker-api/internal/services"
)

// AuthHandler coordinates registration and login.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email    string      `json:"email" binding:"required"`
		Password string      `json:"password" binding:"required"`
		Role     models.Role `json:"role" binding:"omitempty,oneof=ENGINEER MANAGER OBSERVER"`
	}

	var req RegisterRequest
	if !bindJSON(c, &req, map[string]string{
		"Email":    services.ErrEmailAndPasswordRequired.Error(),
		"Password": services.ErrEmailAndPasswordRequired.Error(),
		"Role":     services.ErrInvalidRole.Error(),
	}) {
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondAuthError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"userId":  user.ID,
	})
}

// Login authenticates a user and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if !bindJSON(c, &req, map[string]string{
		"Email":    services.ErrEmailAndPasswordRequired.Error(),
		"Password": services.ErrEmailAndPasswordRequired.Error(),
	}) {
		return
	}

	token, _, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func respondAuthError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrEmailAndPasswordRequired),
		errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, fallback, err)
	}
}
