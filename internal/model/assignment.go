package model

import "time"

// WorkerTaskAssignment links one employee to one project, supervisor and date,
// optionally with a vehicle. The composite unique index on
// (employee_id, work_date) is the storage-level guarantee that a worker is
// never double-booked on a date, closing the race between the service-level
// conflict check and the insert.
type WorkerTaskAssignment struct {
	RowID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID           int64     `gorm:"uniqueIndex;not null" json:"id"`
	ProjectID    int64     `gorm:"not null;index" json:"projectId"`
	SupervisorID int64     `gorm:"not null" json:"supervisorId"`
	VehicleID    *int64    `json:"vehicleId"`
	EmployeeID   int64     `gorm:"not null;uniqueIndex:idx_assignment_employee_date" json:"employeeId"`
	TaskID       *int64    `json:"taskId"`
	WorkDate     Date      `gorm:"type:date;not null;uniqueIndex:idx_assignment_employee_date" json:"date"`
	CompanyID    int64     `gorm:"not null" json:"companyId"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}
