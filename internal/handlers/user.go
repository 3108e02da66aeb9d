package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/defect-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/defect-tracker-api/internal/errors"
	"github.com/yukikurage/defect-tracker-api/internal/middleware"
	"github.com/yukikurage/defect-tracker-api/internal/models"
	"github.com/yukikurage/defect-tracker-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns the id and email of every user
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// ChangeRole sets the caller's own role and returns a fresh token
func (h *UserHandler) ChangeRole(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ChangeRoleRequest struct {
		Role models.Role `json:"role" binding:"required,oneof=ENGINEER MANAGER OBSERVER"`
	}

	var req ChangeRoleRequest
	if !bindJSON(c, &req, map[string]string{"Role": services.ErrInvalidRole.Error()}) {
		return
	}

	user, token, err := h.userService.ChangeRole(identity.UserID, req.Role)
	if err != nil {
		respondAuthError(c, err, "An error occurred while updating the role")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Role updated to %s", user.Role),
		"token":   token,
	})
}
