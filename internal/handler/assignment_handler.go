package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workforce/internal/model"
	"workforce/internal/service"
)

type AssignmentHandler struct {
	service service.AssignmentServiceInterface
}

func NewAssignmentHandler(service service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

type BulkAssignRequest struct {
	ProjectID    int64   `json:"projectId"`
	SupervisorID int64   `json:"supervisorId"`
	VehicleID    *int64  `json:"vehicleId"`
	Date         string  `json:"date"`
	EmployeeIDs  []int64 `json:"employeeIds"`
}

// BulkAssign creates one assignment per employee for a date.
func (h *AssignmentHandler) BulkAssign(c *gin.Context) {
	var req BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	var date model.Date
	if req.Date != "" {
		parsed, err := model.ParseDate(req.Date)
		if err != nil {
			respondBadRequest(c, "Date is required (YYYY-MM-DD)")
			return
		}
		date = parsed
	}

	result, err := h.service.BulkAssign(c.Request.Context(), service.BulkAssignInput{
		ProjectID:    req.ProjectID,
		SupervisorID: req.SupervisorID,
		VehicleID:    req.VehicleID,
		Date:         date,
		EmployeeIDs:  req.EmployeeIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated,
		fmt.Sprintf("%d workers assigned successfully", result.Count), result)
}

// List returns denormalized assignment rows, optionally filtered by project.
func (h *AssignmentHandler) List(c *gin.Context) {
	var projectID *int64
	if raw := c.Query("projectId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "Invalid project ID")
			return
		}
		projectID = &id
	}

	rows, err := h.service.List(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, rows)
}

// Available returns the unassigned active workers for a date.
func (h *AssignmentHandler) Available(c *gin.Context) {
	var date model.Date
	if raw := c.Query("date"); raw != "" {
		parsed, err := model.ParseDate(raw)
		if err != nil {
			respondBadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	workers, err := h.service.AvailableWorkers(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, workers)
}

// AssignmentUpdateRequest keeps the nullable references as raw JSON so an
// explicit null (clear the vehicle/task) is distinguishable from an absent
// field (leave it alone).
type AssignmentUpdateRequest struct {
	ProjectID    *int64          `json:"projectId"`
	SupervisorID *int64          `json:"supervisorId"`
	VehicleID    json.RawMessage `json:"vehicleId"`
	EmployeeID   *int64          `json:"employeeId"`
	TaskID       json.RawMessage `json:"taskId"`
	Date         *string         `json:"date"`
	CompanyID    *int64          `json:"companyId"`
}

// optionalID reports the three states of a nullable id field: absent, explicit
// null (clear), or a numeric value.
func optionalID(raw json.RawMessage) (id *int64, clear bool, err error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, err
	}
	return &v, false, nil
}

// Update applies a partial field set to one assignment.
func (h *AssignmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid assignment ID")
		return
	}

	var req AssignmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	vehicleID, clearVehicle, err := optionalID(req.VehicleID)
	if err != nil {
		respondBadRequest(c, "Invalid vehicle ID")
		return
	}
	taskID, clearTask, err := optionalID(req.TaskID)
	if err != nil {
		respondBadRequest(c, "Invalid task ID")
		return
	}

	patch := service.AssignmentPatch{
		ProjectID:    req.ProjectID,
		SupervisorID: req.SupervisorID,
		VehicleID:    vehicleID,
		ClearVehicle: clearVehicle,
		EmployeeID:   req.EmployeeID,
		TaskID:       taskID,
		ClearTask:    clearTask,
		CompanyID:    req.CompanyID,
	}
	if req.Date != nil {
		parsed, err := model.ParseDate(*req.Date)
		if err != nil {
			respondBadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		patch.Date = &parsed
	}

	updated, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, updated)
}

// Delete removes one assignment by id.
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid assignment ID")
		return
	}

	deletedID, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"deletedId": deletedID,
	})
}
