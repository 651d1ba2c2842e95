package model

// Counter backs sequential id allocation. One row per collection name; the
// value is bumped atomically so concurrent allocators never hand out the same
// block.
type Counter struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}

// Counter names, one per collection with sequential ids.
const (
	CounterAssignments = "worker_task_assignments"
	CounterEmployees   = "employees"
	CounterRoles       = "roles"
	CounterPermissions = "permissions"
)
