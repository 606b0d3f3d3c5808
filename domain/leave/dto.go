package leave

import (
	"errors"
	"time"

	"github.com/worknest-hr/workforce-go/pkg/validator"
)

type SubmitLeaveRequestRequest struct {
	EmployeeID string    `json:"employee_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
}

// StatusBuckets groups requests for the admin decisioning view. Always
// computed on demand from the full collection, never stored.
type StatusBuckets struct {
	Pending  []LeaveRequest `json:"pending"`
	Approved []LeaveRequest `json:"approved"`
	Rejected []LeaveRequest `json:"rejected"`
}

// Validate implements the form-level checks the presentation layer runs
// before submitting. The store never calls it.
func (r SubmitLeaveRequestRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) {
		return errors.New("employee id is required")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if !validator.IsOrderedDateRange(r.StartDate, r.EndDate) {
		return errors.New("end date must not be before start date")
	}
	if validator.IsEmpty(r.Reason) {
		return errors.New("reason is required")
	}
	return nil
}
