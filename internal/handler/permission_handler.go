package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workforce/internal/model"
	"workforce/internal/repository"
)

type PermissionHandler struct {
	permissions repository.PermissionRepositoryInterface
	counters    repository.CounterRepositoryInterface
}

func NewPermissionHandler(
	permissions repository.PermissionRepositoryInterface,
	counters repository.CounterRepositoryInterface,
) *PermissionHandler {
	return &PermissionHandler{permissions: permissions, counters: counters}
}

func (h *PermissionHandler) List(c *gin.Context) {
	permissions, err := h.permissions.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, permissions)
}

type PermissionRequest struct {
	Module string `json:"module" binding:"required"`
	Action string `json:"action" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

func (h *PermissionHandler) Create(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Module, action and code are required")
		return
	}

	id, err := h.counters.NextBlock(c.Request.Context(), model.CounterPermissions, 1)
	if err != nil {
		respondError(c, err)
		return
	}

	permission := &model.Permission{
		ID:     id,
		Module: req.Module,
		Action: req.Action,
		Code:   req.Code,
	}
	if err := h.permissions.Create(c.Request.Context(), permission); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, permission)
}

func (h *PermissionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid permission ID")
		return
	}

	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Module, action and code are required")
		return
	}

	permission := &model.Permission{
		ID:     id,
		Module: req.Module,
		Action: req.Action,
		Code:   req.Code,
	}
	if err := h.permissions.Update(c.Request.Context(), permission); err != nil {
		if errors.Is(err, repository.ErrPermissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Permission not found"})
			return
		}
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, permission)
}

func (h *PermissionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid permission ID")
		return
	}

	if err := h.permissions.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrPermissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Permission not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedId": id})
}
