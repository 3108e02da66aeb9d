package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/defect-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/defect-tracker-api/internal/errors"
	"github.com/yukikurage/defect-tracker-api/internal/middleware"
	"github.com/yukikurage/defect-tracker-api/internal/services"
)

type DefectHandler struct {
	defectService *services.DefectService
}

func NewDefectHandler(defectService *services.DefectService) *DefectHandler {
	return &DefectHandler{
		defectService: defectService,
	}
}

// ListDefects returns every defect with the assignee email
func (h *DefectHandler) ListDefects(c *gin.Context) {
	defects, err := h.defectService.ListDefects()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch defects", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDefectDTOs(defects))
}

// GetDefect returns a single defect
func (h *DefectHandler) GetDefect(c *gin.Context) {
	id, ok := parseDefectID(c)
	if !ok {
		return
	}

	defect, err := h.defectService.GetDefect(id)
	if err != nil {
		respondDefectError(c, err, "Failed to fetch defect")
		return
	}

	c.JSON(http.StatusOK, dto.ToDefectDTO(*defect))
}

// CreateDefect creates a new defect
func (h *DefectHandler) CreateDefect(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.DefectRequest
	if !bindJSON(c, &req, defectFieldMessages(services.ErrTitleAndAssigneeRequired)) {
		return
	}

	defect, err := h.defectService.CreateDefect(identity.Role, toDefectInput(req))
	if err != nil {
		respondDefectError(c, err, "Failed to create defect")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDefectDTO(*defect))
}

// UpdateDefect replaces every field of a defect. Omitted optional fields
// are cleared.
func (h *DefectHandler) UpdateDefect(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseDefectID(c)
	if !ok {
		return
	}

	var req dto.DefectRequest
	if !bindJSON(c, &req, defectFieldMessages(services.ErrTitleRequired)) {
		return
	}

	defect, err := h.defectService.ReplaceDefect(identity.Role, id, toDefectInput(req))
	if err != nil {
		respondDefectError(c, err, "Failed to update defect")
		return
	}

	c.JSON(http.StatusOK, dto.ToDefectDTO(*defect))
}

// DeleteDefect deletes a defect
func (h *DefectHandler) DeleteDefect(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseDefectID(c)
	if !ok {
		return
	}

	if err := h.defectService.DeleteDefect(identity.Role, id); err != nil {
		respondDefectError(c, err, "Failed to delete defect")
		return
	}

	c.Status(http.StatusNoContent)
}

func parseDefectID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid defect ID")
		return 0, false
	}
	return id, true
}

func defectFieldMessages(titleErr error) map[string]string {
	return map[string]string{
		"Title":    titleErr.Error(),
		"Priority": services.ErrInvalidPriority.Error(),
		"Status":   services.ErrInvalidStatus.Error(),
	}
}

func toDefectInput(req dto.DefectRequest) services.DefectInput {
	return services.DefectInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID.Value,
	}
}

func respondDefectError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrCreateDenied),
		errors.Is(err, services.ErrUpdateDenied),
		errors.Is(err, services.ErrDeleteDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTitleAndAssigneeRequired),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDefectNotFound):
		apierrors.NotFound(c, "Defect not found")
	default:
		apierrors.InternalError(c, fallback, err)
	}
}
