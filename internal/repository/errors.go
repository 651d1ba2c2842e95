package repository

import "errors"

// Common repository errors
var (
	// ErrAssignmentNotFound is returned when an assignment is not found
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrEmployeeNotFound is returned when an employee is not found
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrRoleNotFound is returned when a role is not found
	ErrRoleNotFound = errors.New("role not found")

	// ErrPermissionNotFound is returned when a permission is not found
	ErrPermissionNotFound = errors.New("permission not found")

	// ErrDuplicateAssignment is returned when an insert hits the unique
	// (employee_id, work_date) index
	ErrDuplicateAssignment = errors.New("employee already assigned for this date")
)
