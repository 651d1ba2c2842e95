package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workforce/internal/repository"
)

type VehicleHandler struct {
	vehicles repository.VehicleRepositoryInterface
}

func NewVehicleHandler(vehicles repository.VehicleRepositoryInterface) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.vehicles.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, vehicles)
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicles.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if vehicle == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle not found"})
		return
	}
	respondData(c, http.StatusOK, vehicle)
}
