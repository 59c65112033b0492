package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
	"github.com/SscSPs/hr_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const roleFieldsRequired = "Le nom et la description du rôle sont requis"

type roleHandler struct {
	roleService portssvc.RoleSvcFacade
}

func registerRoleRoutes(rg *gin.RouterGroup, roleService portssvc.RoleSvcFacade) {
	h := &roleHandler{roleService: roleService}

	roles := rg.Group("/roles")
	{
		roles.GET("", h.listRoles)
		roles.POST("", h.createRole)
		roles.GET("/:id", h.getRole)
		roles.PUT("/:id", h.updateRole)
		roles.DELETE("/:id", h.deleteRole)
	}
}

// listRoles godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {array} dto.RoleResponse
// @Security ApiKeyAuth
// @Router /api/roles [get]
func (h *roleHandler) listRoles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list roles")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRoleResponse(roles))
}

// getRole godoc
// @Summary Get a role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.RoleResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/roles/{id} [get]
func (h *roleHandler) getRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	role, err := h.roleService.GetRoleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve role")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

// createRole godoc
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body dto.RoleRequest true "Role"
// @Success 201 {object} dto.RoleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/roles [post]
func (h *roleHandler) createRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RoleRequest
	if !bindJSON(c, logger, &req, roleFieldsRequired) {
		return
	}

	role, err := h.roleService.CreateRole(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create role")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoleResponse(role))
}

// updateRole godoc
// @Summary Update a role
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param role body dto.RoleRequest true "Role"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/roles/{id} [put]
func (h *roleHandler) updateRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RoleRequest
	if !bindJSON(c, logger, &req, roleFieldsRequired) {
		return
	}

	role, err := h.roleService.UpdateRole(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

// deleteRole godoc
// @Summary Delete a role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/roles/{id} [delete]
func (h *roleHandler) deleteRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.roleService.DeleteRole(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, logger, err, "Failed to delete role")
		return
	}

	c.JSON(http.StatusOK, dto.ResultResponse{Result: "Rôle supprimé"})
}
