package activity

import (
	"time"
)

// ActivityType represents the kind of mutation an item records
type ActivityType string

const (
	TypeEmployeeAdded   ActivityType = "employee_added"
	TypeEmployeeUpdated ActivityType = "employee_updated"
	TypeEmployeeRemoved ActivityType = "employee_removed"
	TypeLeaveRequested  ActivityType = "leave_requested"
	TypeLeaveUpdated    ActivityType = "leave_updated"
)

// DefaultRetention is how many items the feed keeps, oldest evicted first.
const DefaultRetention = 10

// ActivityItem is an append-only audit record. Description is a snapshot of
// the triggering entity's name and status at event time, never re-derived.
type ActivityItem struct {
	ID          string
	Type        ActivityType
	Description string
	Timestamp   time.Time
	EmployeeID  string
}
