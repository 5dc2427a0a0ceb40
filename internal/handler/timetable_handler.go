package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-api/internal/dto"
	"github.com/noah-isme/sma-adp-api/internal/service"
	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
	"github.com/noah-isme/sma-adp-api/pkg/response"
)

// TimetableHandler exposes the config/generate/export gateway endpoints.
type TimetableHandler struct {
	service *service.TimetableService
}

// NewTimetableHandler constructs a timetable handler.
func NewTimetableHandler(svc *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// SetConfig godoc
// @Summary Store the scheduling and hall-fleet configuration
// @Tags Config
// @Accept json
// @Produce json
// @Param payload body dto.ConfigRequest true "Configuration payload"
// @Success 200 {object} dto.ConfigResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /config [post]
func (h *TimetableHandler) SetConfig(c *gin.Context) {
	var req dto.ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	cfg, appErr := h.service.SetConfig(req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.JSON(c, http.StatusOK, cfg)
}

// GetConfig godoc
// @Summary Read the current stored configuration
// @Tags Config
// @Produce json
// @Success 200 {object} dto.ConfigResponse
// @Router /config [get]
func (h *TimetableHandler) GetConfig(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.GetConfig())
}

// Subjects godoc
// @Summary List the subjects known to the current configuration
// @Tags Config
// @Produce json
// @Success 200 {object} dto.SubjectsResponse
// @Router /subjects [get]
func (h *TimetableHandler) Subjects(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Subjects())
}

// AddGroup godoc
// @Summary Add a student group to the current configuration
// @Tags Config
// @Accept json
// @Produce json
// @Param payload body dto.StudentGroupRequest true "Group payload"
// @Success 201
// @Failure 400 {object} dto.ErrorResponse
// @Router /groups [post]
func (h *TimetableHandler) AddGroup(c *gin.Context) {
	var req dto.StudentGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if appErr := h.service.AddGroup(req); appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.Created(c, req)
}

// DeleteGroup godoc
// @Summary Remove a student group by name
// @Tags Config
// @Produce json
// @Param name path string true "Group name"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /groups/{name} [delete]
func (h *TimetableHandler) DeleteGroup(c *gin.Context) {
	if appErr := h.service.DeleteGroup(c.Param("name")); appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.NoContent(c)
}

// Generate godoc
// @Summary Solve a timetable and hall allocation for the given configuration
// @Tags Generate
// @Accept json
// @Produce json
// @Param payload body dto.GenerateRequest true "Generate payload"
// @Success 200 {object} core.ExternalResult
// @Failure 422 {object} dto.ErrorResponse
// @Router /generate [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, appErr := h.service.Generate(req)
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// ExportCSV godoc
// @Summary Export the last generated result as CSV
// @Tags Export
// @Produce text/csv
// @Success 200 {file} byte
// @Failure 404 {object} dto.ErrorResponse
// @Router /export/csv [get]
func (h *TimetableHandler) ExportCSV(c *gin.Context) {
	out, appErr := h.service.ExportCSV()
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="timetable_export.csv"`)
	c.Data(http.StatusOK, "text/csv", out)
}

// ExportPDF godoc
// @Summary Export the last generated result as a PDF document
// @Tags Export
// @Produce application/pdf
// @Success 200 {file} byte
// @Failure 404 {object} dto.ErrorResponse
// @Router /export/pdf [get]
func (h *TimetableHandler) ExportPDF(c *gin.Context) {
	out, appErr := h.service.ExportPDF()
	if appErr != nil {
		response.Error(c, appErr)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="timetable_export.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
