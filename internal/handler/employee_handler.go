package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"workforce/internal/model"
	"workforce/internal/repository"
)

type EmployeeHandler struct {
	employees repository.EmployeeRepositoryInterface
	counters  repository.CounterRepositoryInterface
}

func NewEmployeeHandler(
	employees repository.EmployeeRepositoryInterface,
	counters repository.CounterRepositoryInterface,
) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, counters: counters}
}

type EmployeeRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	Trade        string `json:"trade"`
	EmployeeCode string `json:"employeeCode"`
	UserID       int64  `json:"userId"`
	CompanyID    int64  `json:"companyId"`
	Status       string `json:"status"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Full name is required")
		return
	}

	id, err := h.counters.NextBlock(c.Request.Context(), model.CounterEmployees, 1)
	if err != nil {
		respondError(c, err)
		return
	}

	status := req.Status
	if status == "" {
		status = model.StatusActive
	}
	employee := &model.Employee{
		ID:           id,
		FullName:     req.FullName,
		Trade:        req.Trade,
		EmployeeCode: req.EmployeeCode,
		UserID:       req.UserID,
		CompanyID:    req.CompanyID,
		Status:       status,
	}
	if err := h.employees.Create(c.Request.Context(), employee); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, employee)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	var companyID *int64
	if raw := c.Query("companyId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "Invalid company ID")
			return
		}
		companyID = &id
	}

	employees, err := h.employees.List(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employees.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Employee not found"})
		return
	}
	respondData(c, http.StatusOK, employee)
}

func (h *EmployeeHandler) ListByCompany(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("companyId"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid company ID")
		return
	}

	employees, err := h.employees.List(c.Request.Context(), &companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, employees)
}

// ListWorkersByCompany returns the active worker-role employees of a company.
func (h *EmployeeHandler) ListWorkersByCompany(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("companyId"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid company ID")
		return
	}

	workers, err := h.employees.ListWorkersByCompany(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, workers)
}

type EmployeeUpdateRequest struct {
	FullName     *string `json:"fullName"`
	Trade        *string `json:"trade"`
	EmployeeCode *string `json:"employeeCode"`
	UserID       *int64  `json:"userId"`
	CompanyID    *int64  `json:"companyId"`
	Status       *string `json:"status"`
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid employee ID")
		return
	}

	var req EmployeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	fields := make(map[string]interface{})
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Trade != nil {
		fields["trade"] = *req.Trade
	}
	if req.EmployeeCode != nil {
		fields["employee_code"] = *req.EmployeeCode
	}
	if req.UserID != nil {
		fields["user_id"] = *req.UserID
	}
	if req.CompanyID != nil {
		fields["company_id"] = *req.CompanyID
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	employee, err := h.employees.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Employee not found"})
			return
		}
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employees.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Employee not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedId": id})
}

// Import ingests an xlsx upload with a header row of
// fullName, trade, employeeCode, userId, companyId. Rows with a blank full
// name are skipped.
func (h *EmployeeHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "File is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		respondBadRequest(c, "File is not a valid xlsx workbook")
		return
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		respondBadRequest(c, "Workbook has no sheets")
		return
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		respondError(c, err)
		return
	}
	if len(rows) < 2 {
		respondBadRequest(c, "Workbook has no data rows")
		return
	}

	type importedRow struct {
		fullName     string
		trade        string
		employeeCode string
		userID       int64
		companyID    int64
	}
	var parsed []importedRow
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		r := importedRow{fullName: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			r.trade = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			r.employeeCode = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			r.userID, _ = strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
		}
		if len(row) > 4 {
			r.companyID, _ = strconv.ParseInt(strings.TrimSpace(row[4]), 10, 64)
		}
		parsed = append(parsed, r)
	}
	if len(parsed) == 0 {
		respondBadRequest(c, "Workbook has no data rows")
		return
	}

	firstID, err := h.counters.NextBlock(c.Request.Context(), model.CounterEmployees, len(parsed))
	if err != nil {
		respondError(c, err)
		return
	}

	employees := make([]model.Employee, 0, len(parsed))
	for i, r := range parsed {
		employees = append(employees, model.Employee{
			ID:           firstID + int64(i),
			FullName:     r.fullName,
			Trade:        r.trade,
			EmployeeCode: r.employeeCode,
			UserID:       r.userID,
			CompanyID:    r.companyID,
			Status:       model.StatusActive,
		})
	}
	if err := h.employees.CreateBatch(c.Request.Context(), employees); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "Employees imported successfully", gin.H{
		"count": len(employees),
	})
}
