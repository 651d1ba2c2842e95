package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workforce/internal/handler"
	"workforce/internal/model"
	"workforce/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) BulkAssign(ctx context.Context, input service.BulkAssignInput) (*service.BulkAssignResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkAssignResult), args.Error(1)
}

func (m *MockAssignmentService) List(ctx context.Context, projectID *int64) ([]service.AssignmentRow, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AssignmentRow), args.Error(1)
}

func (m *MockAssignmentService) AvailableWorkers(ctx context.Context, date model.Date) ([]service.AvailableWorker, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AvailableWorker), args.Error(1)
}

func (m *MockAssignmentService) Update(ctx context.Context, id int64, patch service.AssignmentPatch) (*model.WorkerTaskAssignment, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WorkerTaskAssignment), args.Error(1)
}

func (m *MockAssignmentService) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func setupAssignmentRouter() (*gin.Engine, *MockAssignmentService) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockService := new(MockAssignmentService)
	h := handler.NewAssignmentHandler(mockService)

	r.POST("/assignments/bulk", h.BulkAssign)
	r.GET("/assignments", h.List)
	r.GET("/assignments/available", h.Available)
	r.PUT("/assignments/:id", h.Update)
	r.DELETE("/assignments/:id", h.Delete)

	return r, mockService
}

func TestBulkAssignHandler_Created(t *testing.T) {
	// Arrange
	router, mockService := setupAssignmentRouter()

	date, _ := model.ParseDate("2024-03-01")
	mockService.On("BulkAssign", mock.Anything, mock.AnythingOfType("service.BulkAssignInput")).
		Return(&service.BulkAssignResult{Count: 2, ProjectID: 1, Date: date, SupervisorID: 5}, nil)

	body, _ := json.Marshal(handler.BulkAssignRequest{
		ProjectID:    1,
		SupervisorID: 5,
		Date:         "2024-03-01",
		EmployeeIDs:  []int64{10, 11},
	})
	req, _ := http.NewRequest("POST", "/assignments/bulk", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Count        int    `json:"count"`
			ProjectID    int64  `json:"projectId"`
			Date         string `json:"date"`
			SupervisorID int64  `json:"supervisorId"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "2 workers assigned successfully", response.Message)
	assert.Equal(t, 2, response.Data.Count)
	assert.Equal(t, "2024-03-01", response.Data.Date)

	mockService.AssertExpectations(t)
}

func TestBulkAssignHandler_ConflictReportsDuplicates(t *testing.T) {
	// Arrange
	router, mockService := setupAssignmentRouter()

	mockService.On("BulkAssign", mock.Anything, mock.Anything).
		Return(nil, &service.ConflictError{
			Message:    "Some workers are already assigned for this date",
			Duplicates: []string{"Aman Zhaksybek", "Daniyar Seitkali"},
		})

	body, _ := json.Marshal(handler.BulkAssignRequest{
		ProjectID:    1,
		SupervisorID: 5,
		Date:         "2024-03-01",
		EmployeeIDs:  []int64{10, 11},
	})
	req, _ := http.NewRequest("POST", "/assignments/bulk", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response struct {
		Success    bool     `json:"success"`
		Message    string   `json:"message"`
		Duplicates []string `json:"duplicates"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, []string{"Aman Zhaksybek", "Daniyar Seitkali"}, response.Duplicates)
}

func TestBulkAssignHandler_ProjectNotFound(t *testing.T) {
	router, mockService := setupAssignmentRouter()

	mockService.On("BulkAssign", mock.Anything, mock.Anything).
		Return(nil, &service.NotFoundError{Message: "Project not found"})

	body, _ := json.Marshal(handler.BulkAssignRequest{
		ProjectID:    42,
		SupervisorID: 5,
		Date:         "2024-03-01",
		EmployeeIDs:  []int64{10},
	})
	req, _ := http.NewRequest("POST", "/assignments/bulk", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Project not found")
}

func TestBulkAssignHandler_BadDate(t *testing.T) {
	router, _ := setupAssignmentRouter()

	req, _ := http.NewRequest("POST", "/assignments/bulk",
		bytes.NewBufferString(`{"projectId":1,"supervisorId":5,"date":"01/03/2024","employeeIds":[10]}`))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "YYYY-MM-DD")
}

func TestListHandler_ReturnsRows(t *testing.T) {
	router, mockService := setupAssignmentRouter()

	date, _ := model.ParseDate("2024-03-01")
	mockService.On("List", mock.Anything, (*int64)(nil)).
		Return([]service.AssignmentRow{
			{ID: 2, Date: date, EmployeeName: "Aman Zhaksybek", ProjectName: "Tower A", SupervisorName: "—", VehicleCode: "—"},
		}, nil)

	req, _ := http.NewRequest("GET", "/assignments", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Aman Zhaksybek")
	assert.Contains(t, resp.Body.String(), "—")
}

func TestAvailableHandler_MissingDate(t *testing.T) {
	router, mockService := setupAssignmentRouter()

	mockService.On("AvailableWorkers", mock.Anything, model.Date{}).
		Return(nil, &service.ValidationError{Message: "Date is required"})

	req, _ := http.NewRequest("GET", "/assignments/available", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Date is required")
}

func TestUpdateHandler_NotFound(t *testing.T) {
	router, mockService := setupAssignmentRouter()

	mockService.On("Update", mock.Anything, int64(99), mock.Anything).
		Return(nil, &service.NotFoundError{Message: "Not found"})

	req, _ := http.NewRequest("PUT", "/assignments/99", bytes.NewBufferString(`{"supervisorId":6}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateHandler_NullClearsVehicle(t *testing.T) {
	// Arrange
	router, mockService := setupAssignmentRouter()

	date, _ := model.ParseDate("2024-03-01")
	var captured service.AssignmentPatch
	mockService.On("Update", mock.Anything, int64(1), mock.AnythingOfType("service.AssignmentPatch")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(service.AssignmentPatch)
		}).
		Return(&model.WorkerTaskAssignment{ID: 1, EmployeeID: 10, WorkDate: date}, nil)

	req, _ := http.NewRequest("PUT", "/assignments/1", bytes.NewBufferString(`{"vehicleId":null}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: an explicit null arrives as a clear, not as an absent field
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, captured.ClearVehicle)
	assert.Nil(t, captured.VehicleID)
	assert.False(t, captured.ClearTask)
}

func TestDeleteHandler_Success(t *testing.T) {
	router, mockService := setupAssignmentRouter()

	mockService.On("Delete", mock.Anything, int64(4)).Return(int64(4), nil)

	req, _ := http.NewRequest("DELETE", "/assignments/4", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response struct {
		Success   bool  `json:"success"`
		DeletedID int64 `json:"deletedId"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, int64(4), response.DeletedID)
}

func TestDeleteHandler_NotFound(t *testing.T) {
	router, mockService := setupAssignmentRouter()

	mockService.On("Delete", mock.Anything, int64(99)).
		Return(int64(0), &service.NotFoundError{Message: "Not found"})

	req, _ := http.NewRequest("DELETE", "/assignments/99", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
