package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
	"github.com/SscSPs/hr_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	uploadMaxBytes  int64
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade, uploadMaxBytes int64) *employeeHandler {
	return &employeeHandler{employeeService: es, uploadMaxBytes: uploadMaxBytes}
}

// registerEmployeeRoutes registers all employee CRUD routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService, 0)

	employes := rg.Group("/employes")
	{
		employes.GET("", h.listEmployees)
		employes.POST("", h.createEmployee)
		employes.GET("/:id", h.getEmployee)
		employes.PUT("/:id", h.updateEmployee)
		employes.DELETE("/:id", h.deleteEmployee)
	}
}

// registerUploadRoutes registers the bulk text import.
func registerUploadRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, uploadMaxBytes int64) {
	h := newEmployeeHandler(employeeService, uploadMaxBytes)
	rg.POST("/employees/upload-txt", h.uploadEmployees)
}

// listEmployees godoc
// @Summary List employees
// @Description Returns one page of employees, optionally filtered by nom or email.
// @Tags employes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10)
// @Param search query string false "Case-insensitive substring of nom or email"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/employes [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEmployees", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Paramètres de pagination invalides"})
		return
	}

	resp, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employes
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse "Employé non trouvé"
// @Security ApiKeyAuth
// @Router /api/employes/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// createEmployee godoc
// @Summary Create an employee
// @Description A non-empty departement must name an existing department.
// @Tags employes
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/employes [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, logger, &req, "Données d'employé invalides") {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Shallow merge: omitted fields are left unchanged.
// @Tags employes
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/employes/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, logger, &req, "Données d'employé invalides") {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Tags employes
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/employes/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, logger, err, "Failed to delete employee")
		return
	}

	c.JSON(http.StatusOK, dto.ResultResponse{Result: "Employé supprimé"})
}

// uploadEmployees godoc
// @Summary Bulk import employees
// @Description Accepts a .txt file with one "nom,prenom,email,departement" record per line.
// @Tags employes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Text file"
// @Success 200 {object} dto.ImportEmployeesResponse
// @Failure 400 {object} ErrorResponse "Invalid file type"
// @Router /api/employees/upload-txt [post]
func (h *employeeHandler) uploadEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if h.uploadMaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadMaxBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Upload without a readable file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".txt") {
		logger.Warn("Rejected upload", slog.String("filename", fileHeader.Filename))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid file type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	added, err := h.employeeService.ImportEmployees(c.Request.Context(), file)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to import employees")
		return
	}

	logger.Info("Employees imported", slog.String("filename", fileHeader.Filename), slog.Int("added", added))
	c.JSON(http.StatusOK, dto.ImportEmployeesResponse{Status: "success", Added: added})
}
