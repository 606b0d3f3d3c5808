package leave

import (
	"context"
)

// LeaveService defines submission and admin decisioning over leave requests.
type LeaveService interface {
	// SubmitLeaveRequest inserts a new request with status "pending". The
	// request is inserted even when EmployeeID resolves to no employee; the
	// activity entry is skipped in that case.
	SubmitLeaveRequest(ctx context.Context, req SubmitLeaveRequestRequest) (LeaveRequest, error)

	// UpdateLeaveRequestStatus sets the request status (approved or rejected
	// in the expected flow). Returns ErrLeaveRequestNotFound when the id is
	// unknown. A decided request may be decided again; the new status simply
	// overwrites.
	UpdateLeaveRequestStatus(ctx context.Context, id string, status LeaveRequestStatus) (LeaveRequest, error)

	// GetLeaveRequestsByEmployee filters by exact employee id, insertion order
	GetLeaveRequestsByEmployee(ctx context.Context, employeeID string) []LeaveRequest

	// ListLeaveRequests returns all requests in insertion order
	ListLeaveRequests(ctx context.Context) []LeaveRequest

	// GroupLeaveRequestsByStatus buckets the full collection for display
	GroupLeaveRequestsByStatus(ctx context.Context) StatusBuckets
}
