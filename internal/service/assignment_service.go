package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"workforce/internal/model"
	"workforce/internal/repository"
)

// placeholder is the display value for unresolved references.
const placeholder = "—"

const conflictMessage = "Some workers are already assigned for this date"

type AssignmentService struct {
	assignments  repository.AssignmentRepositoryInterface
	employees    repository.EmployeeRepositoryInterface
	projects     repository.ProjectRepositoryInterface
	companyUsers repository.CompanyUserRepositoryInterface
	vehicles     repository.VehicleRepositoryInterface
	counters     repository.CounterRepositoryInterface
}

type AssignmentServiceInterface interface {
	BulkAssign(ctx context.Context, input BulkAssignInput) (*BulkAssignResult, error)
	List(ctx context.Context, projectID *int64) ([]AssignmentRow, error)
	AvailableWorkers(ctx context.Context, date model.Date) ([]AvailableWorker, error)
	Update(ctx context.Context, id int64, patch AssignmentPatch) (*model.WorkerTaskAssignment, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

var _ AssignmentServiceInterface = (*AssignmentService)(nil)

func NewAssignmentService(
	assignments repository.AssignmentRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	companyUsers repository.CompanyUserRepositoryInterface,
	vehicles repository.VehicleRepositoryInterface,
	counters repository.CounterRepositoryInterface,
) *AssignmentService {
	return &AssignmentService{
		assignments:  assignments,
		employees:    employees,
		projects:     projects,
		companyUsers: companyUsers,
		vehicles:     vehicles,
		counters:     counters,
	}
}

type BulkAssignInput struct {
	ProjectID    int64
	SupervisorID int64
	VehicleID    *int64
	Date         model.Date
	EmployeeIDs  []int64
}

type BulkAssignResult struct {
	Count        int        `json:"count"`
	ProjectID    int64      `json:"projectId"`
	Date         model.Date `json:"date"`
	SupervisorID int64      `json:"supervisorId"`
}

// BulkAssign creates one assignment per employee for the date. The batch is
// all-or-nothing: any employee already assigned on the date rejects the whole
// request with the conflicting full names and nothing is written.
func (s *AssignmentService) BulkAssign(ctx context.Context, input BulkAssignInput) (*BulkAssignResult, error) {
	if input.ProjectID == 0 || input.SupervisorID == 0 || len(input.EmployeeIDs) == 0 {
		return nil, &ValidationError{Message: "Project ID, supervisor ID, and at least one employee ID are required"}
	}
	if input.Date.IsZero() {
		return nil, &ValidationError{Message: "Date is required (YYYY-MM-DD)"}
	}

	project, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, &NotFoundError{Message: "Project not found"}
	}

	existing, err := s.assignments.FindByEmployeesAndDate(ctx, input.EmployeeIDs, input.Date)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		names, err := s.resolveNames(ctx, existing)
		if err != nil {
			return nil, err
		}
		return nil, &ConflictError{Message: conflictMessage, Duplicates: names}
	}

	firstID, err := s.counters.NextBlock(ctx, model.CounterAssignments, len(input.EmployeeIDs))
	if err != nil {
		return nil, err
	}

	rows := make([]model.WorkerTaskAssignment, 0, len(input.EmployeeIDs))
	for i, employeeID := range input.EmployeeIDs {
		rows = append(rows, model.WorkerTaskAssignment{
			ID:           firstID + int64(i),
			ProjectID:    input.ProjectID,
			SupervisorID: input.SupervisorID,
			VehicleID:    input.VehicleID,
			EmployeeID:   employeeID,
			TaskID:       nil,
			WorkDate:     input.Date,
			CompanyID:    project.CompanyID,
		})
	}

	if err := s.assignments.CreateBatch(ctx, rows); err != nil {
		if errors.Is(err, repository.ErrDuplicateAssignment) {
			// A concurrent batch won the unique index; the names of the
			// losers are not known at this point.
			return nil, &ConflictError{Message: conflictMessage}
		}
		return nil, err
	}

	return &BulkAssignResult{
		Count:        len(rows),
		ProjectID:    input.ProjectID,
		Date:         input.Date,
		SupervisorID: input.SupervisorID,
	}, nil
}

func (s *AssignmentService) resolveNames(ctx context.Context, rows []model.WorkerTaskAssignment) ([]string, error) {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.EmployeeID)
	}
	employees, err := s.employees.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, e.FullName)
	}
	return names, nil
}

// AssignmentRow is a display-ready assignment with resolved names.
type AssignmentRow struct {
	ID             int64      `json:"id"`
	Date           model.Date `json:"date"`
	EmployeeID     int64      `json:"employeeId"`
	SupervisorID   int64      `json:"supervisorId"`
	ProjectID      int64      `json:"projectId"`
	VehicleID      *int64     `json:"vehicleId"`
	EmployeeName   string     `json:"employeeName"`
	SupervisorName string     `json:"supervisorName"`
	ProjectName    string     `json:"projectName"`
	VehicleCode    string     `json:"vehicleCode"`
}

// List returns every assignment (optionally filtered by project) joined with
// employee, supervisor, project and vehicle names, newest first by
// (date desc, id desc), deduplicated by assignment id.
func (s *AssignmentService) List(ctx context.Context, projectID *int64) ([]AssignmentRow, error) {
	assignments, err := s.assignments.List(ctx, projectID)
	if err != nil {
		return nil, err
	}

	employeeIDs := make(map[int64]struct{})
	projectIDs := make(map[int64]struct{})
	vehicleIDs := make(map[int64]struct{})
	for _, a := range assignments {
		employeeIDs[a.EmployeeID] = struct{}{}
		employeeIDs[a.SupervisorID] = struct{}{}
		projectIDs[a.ProjectID] = struct{}{}
		if a.VehicleID != nil {
			vehicleIDs[*a.VehicleID] = struct{}{}
		}
	}

	employees, err := s.employees.GetByIDs(ctx, setToSlice(employeeIDs))
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.GetByIDs(ctx, setToSlice(projectIDs))
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.GetByIDs(ctx, setToSlice(vehicleIDs))
	if err != nil {
		return nil, err
	}

	employeeNames := make(map[int64]string, len(employees))
	for _, e := range employees {
		employeeNames[e.ID] = e.FullName
	}
	projectNames := make(map[int64]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.ProjectName
	}
	vehicleCodes := make(map[int64]string, len(vehicles))
	for _, v := range vehicles {
		vehicleCodes[v.ID] = v.VehicleCode
	}

	rows := make([]AssignmentRow, 0, len(assignments))
	for _, a := range assignments {
		row := AssignmentRow{
			ID:             a.ID,
			Date:           a.WorkDate,
			EmployeeID:     a.EmployeeID,
			SupervisorID:   a.SupervisorID,
			ProjectID:      a.ProjectID,
			VehicleID:      a.VehicleID,
			EmployeeName:   nameOrPlaceholder(employeeNames, a.EmployeeID),
			SupervisorName: nameOrPlaceholder(employeeNames, a.SupervisorID),
			ProjectName:    nameOrPlaceholder(projectNames, a.ProjectID),
			VehicleCode:    placeholder,
		}
		if a.VehicleID != nil {
			row.VehicleCode = nameOrPlaceholder(vehicleCodes, *a.VehicleID)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		di, dj := time.Time(rows[i].Date), time.Time(rows[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return rows[i].ID > rows[j].ID
	})

	return dedupeByID(rows), nil
}

// dedupeByID keeps one row per assignment id, preserving order; the last
// occurrence wins.
func dedupeByID(rows []AssignmentRow) []AssignmentRow {
	result := make([]AssignmentRow, 0, len(rows))
	seen := make(map[int64]int, len(rows))
	for _, row := range rows {
		if idx, ok := seen[row.ID]; ok {
			result[idx] = row
			continue
		}
		seen[row.ID] = len(result)
		result = append(result, row)
	}
	return result
}

// AvailableWorker is an unassigned active worker for a given date.
type AvailableWorker struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	Trade        string `json:"trade"`
	EmployeeCode string `json:"employeeCode"`
	UserID       int64  `json:"userId"`
}

// AvailableWorkers returns every active employee linked to an active "worker"
// account that has no assignment on the date. An empty result is not an error.
func (s *AssignmentService) AvailableWorkers(ctx context.Context, date model.Date) ([]AvailableWorker, error) {
	if date.IsZero() {
		return nil, &ValidationError{Message: "Date is required"}
	}

	workers := make([]AvailableWorker, 0)

	userIDs, err := s.companyUsers.ActiveWorkerUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return workers, nil
	}

	employees, err := s.employees.ListActiveByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return workers, nil
	}

	employeeIDs := make([]int64, 0, len(employees))
	for _, e := range employees {
		employeeIDs = append(employeeIDs, e.ID)
	}

	assignedIDs, err := s.assignments.AssignedEmployeeIDs(ctx, date, employeeIDs)
	if err != nil {
		return nil, err
	}
	assigned := make(map[int64]struct{}, len(assignedIDs))
	for _, id := range assignedIDs {
		assigned[id] = struct{}{}
	}

	for _, e := range employees {
		if _, ok := assigned[e.ID]; ok {
			continue
		}
		workers = append(workers, AvailableWorker{
			ID:           e.ID,
			FullName:     e.FullName,
			Trade:        orPlaceholder(e.Trade),
			EmployeeCode: orPlaceholder(e.EmployeeCode),
			UserID:       e.UserID,
		})
	}
	return workers, nil
}

// AssignmentPatch is a partial field set for a single-assignment update. Nil
// fields are left untouched. ClearVehicle and ClearTask null out the nullable
// references, which a pointer alone cannot express.
type AssignmentPatch struct {
	ProjectID    *int64
	SupervisorID *int64
	VehicleID    *int64
	ClearVehicle bool
	EmployeeID   *int64
	TaskID       *int64
	ClearTask    bool
	Date         *model.Date
	CompanyID    *int64
}

// Update applies the patch to the assignment with the given id. When the patch
// moves the assignment to another employee or date, the creation-time conflict
// check runs again so the one-assignment-per-date rule cannot be bypassed.
func (s *AssignmentService) Update(ctx context.Context, id int64, patch AssignmentPatch) (*model.WorkerTaskAssignment, error) {
	current, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, &NotFoundError{Message: "Not found"}
		}
		return nil, err
	}

	fields := make(map[string]interface{})
	if patch.ProjectID != nil {
		fields["project_id"] = *patch.ProjectID
	}
	if patch.SupervisorID != nil {
		fields["supervisor_id"] = *patch.SupervisorID
	}
	if patch.VehicleID != nil {
		fields["vehicle_id"] = *patch.VehicleID
	} else if patch.ClearVehicle {
		fields["vehicle_id"] = nil
	}
	if patch.EmployeeID != nil {
		fields["employee_id"] = *patch.EmployeeID
	}
	if patch.TaskID != nil {
		fields["task_id"] = *patch.TaskID
	} else if patch.ClearTask {
		fields["task_id"] = nil
	}
	if patch.Date != nil {
		fields["work_date"] = *patch.Date
	}
	if patch.CompanyID != nil {
		fields["company_id"] = *patch.CompanyID
	}
	if len(fields) == 0 {
		return current, nil
	}

	if patch.EmployeeID != nil || patch.Date != nil {
		targetEmployee := current.EmployeeID
		if patch.EmployeeID != nil {
			targetEmployee = *patch.EmployeeID
		}
		targetDate := current.WorkDate
		if patch.Date != nil {
			targetDate = *patch.Date
		}
		existing, err := s.assignments.FindByEmployeesAndDate(ctx, []int64{targetEmployee}, targetDate)
		if err != nil {
			return nil, err
		}
		for _, row := range existing {
			if row.ID != id {
				names, err := s.resolveNames(ctx, []model.WorkerTaskAssignment{row})
				if err != nil {
					return nil, err
				}
				return nil, &ConflictError{Message: conflictMessage, Duplicates: names}
			}
		}
	}

	updated, err := s.assignments.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, &NotFoundError{Message: "Not found"}
		}
		if errors.Is(err, repository.ErrDuplicateAssignment) {
			return nil, &ConflictError{Message: conflictMessage}
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the assignment with the given id and returns it.
func (s *AssignmentService) Delete(ctx context.Context, id int64) (int64, error) {
	if err := s.assignments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return 0, &NotFoundError{Message: "Not found"}
		}
		return 0, err
	}
	return id, nil
}

func setToSlice(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

func nameOrPlaceholder(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return placeholder
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
