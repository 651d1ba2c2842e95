package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workforce/internal/model"
	"workforce/internal/repository"
)

type RoleHandler struct {
	roles    repository.RoleRepositoryInterface
	counters repository.CounterRepositoryInterface
}

func NewRoleHandler(
	roles repository.RoleRepositoryInterface,
	counters repository.CounterRepositoryInterface,
) *RoleHandler {
	return &RoleHandler{roles: roles, counters: counters}
}

// List fetches all roles with their associated permissions.
func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, roles)
}

func (h *RoleHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid role ID")
		return
	}

	role, err := h.roles.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Role not found"})
			return
		}
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, role)
}

type RoleRequest struct {
	Name          string  `json:"name" binding:"required"`
	Level         int     `json:"level"`
	IsSystemRole  *bool   `json:"isSystemRole"`
	PermissionIDs []int64 `json:"permissionIds"`
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Name is required")
		return
	}

	id, err := h.counters.NextBlock(c.Request.Context(), model.CounterRoles, 1)
	if err != nil {
		respondError(c, err)
		return
	}

	role := &model.Role{
		ID:           id,
		Name:         req.Name,
		Level:        req.Level,
		IsSystemRole: true,
	}
	if req.IsSystemRole != nil {
		role.IsSystemRole = *req.IsSystemRole
	}
	if err := h.roles.Create(c.Request.Context(), role, req.PermissionIDs); err != nil {
		respondError(c, err)
		return
	}

	created, err := h.roles.GetByID(c.Request.Context(), role.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, created)
}

// Update replaces the role's fields and permission set.
func (h *RoleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid role ID")
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Name is required")
		return
	}

	role := &model.Role{
		ID:           id,
		Name:         req.Name,
		Level:        req.Level,
		IsSystemRole: true,
	}
	if req.IsSystemRole != nil {
		role.IsSystemRole = *req.IsSystemRole
	}
	if err := h.roles.Update(c.Request.Context(), role, req.PermissionIDs); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Role not found"})
			return
		}
		respondError(c, err)
		return
	}

	updated, err := h.roles.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

func (h *RoleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid role ID")
		return
	}

	if err := h.roles.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Role not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedId": id})
}
