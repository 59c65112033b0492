package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
	"github.com/SscSPs/hr_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const departmentNameRequired = "Le nom du département est requis"

type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func newDepartmentHandler(ds portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{departmentService: ds}
}

func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)

	departements := rg.Group("/departements")
	{
		departements.GET("", h.listDepartments)
		departements.POST("", h.createDepartment)
		departements.GET("/:id", h.getDepartment)
		departements.PUT("/:id", h.renameDepartment)
		departements.DELETE("/:id", h.deleteDepartment)
	}
}

// listDepartments godoc
// @Summary List departments
// @Description Every department with its live employee count.
// @Tags departements
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Security ApiKeyAuth
// @Router /api/departements [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list departments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDepartmentResponse(departments))
}

// getDepartment godoc
// @Summary Get a department with its employees
// @Tags departements
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} dto.DepartmentDetailResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/departements/{id} [get]
func (h *departmentHandler) getDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	detail, err := h.departmentService.GetDepartmentDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve department")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentDetailResponse(detail))
}

// createDepartment godoc
// @Summary Create a department
// @Tags departements
// @Accept json
// @Produce json
// @Param department body dto.DepartmentRequest true "Department"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/departements [post]
func (h *departmentHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DepartmentRequest
	if !bindJSON(c, logger, &req, departmentNameRequired) {
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create department")
		return
	}

	logger.Info("Department created", slog.String("department_id", department.DepartmentID))
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

// renameDepartment godoc
// @Summary Rename a department
// @Description Employees referencing the old name are moved to the new one.
// @Tags departements
// @Accept json
// @Produce json
// @Param id path string true "Department ID"
// @Param department body dto.DepartmentRequest true "New name"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/departements/{id} [put]
func (h *departmentHandler) renameDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DepartmentRequest
	if !bindJSON(c, logger, &req, departmentNameRequired) {
		return
	}

	department, err := h.departmentService.RenameDepartment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update department")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

// deleteDepartment godoc
// @Summary Delete a department
// @Description Refused while any employee references the department.
// @Tags departements
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/departements/{id} [delete]
func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.departmentService.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, logger, err, "Failed to delete department")
		return
	}

	c.JSON(http.StatusOK, dto.ResultResponse{Result: "Département supprimé"})
}
