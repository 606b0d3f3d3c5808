package memory

import (
	"context"
	"strings"

	"github.com/worknest-hr/workforce-go/domain/activity"
	"github.com/worknest-hr/workforce-go/domain/leave"
)

func (s *Store) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request := leave.LeaveRequest{
		ID:         newID("leave"),
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
		CreatedAt:  s.now(),
	}
	s.leaveRequests = append(s.leaveRequests, request)

	// The request is kept even when the employee id does not resolve; only
	// the feed entry is skipped.
	if idx := s.employeeIndexLocked(req.EmployeeID); idx >= 0 {
		s.appendActivityLocked(activity.TypeLeaveRequested,
			"New leave request from "+s.employees[idx].Name, req.EmployeeID)
	}

	return request, nil
}

func (s *Store) UpdateLeaveRequestStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) (leave.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, req := range s.leaveRequests {
		if req.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	// A decided request may be decided again; the new status overwrites.
	s.leaveRequests[idx].Status = status
	request := s.leaveRequests[idx]

	if empIdx := s.employeeIndexLocked(request.EmployeeID); empIdx >= 0 {
		s.appendActivityLocked(activity.TypeLeaveUpdated,
			capitalize(string(status))+" leave request for "+s.employees[empIdx].Name,
			request.EmployeeID)
	}

	return request, nil
}

func (s *Store) GetLeaveRequestsByEmployee(ctx context.Context, employeeID string) []leave.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []leave.LeaveRequest
	for _, req := range s.leaveRequests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out
}

func (s *Store) ListLeaveRequests(ctx context.Context) []leave.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]leave.LeaveRequest, len(s.leaveRequests))
	copy(out, s.leaveRequests)
	return out
}

func (s *Store) GroupLeaveRequestsByStatus(ctx context.Context) leave.StatusBuckets {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buckets leave.StatusBuckets
	for _, req := range s.leaveRequests {
		switch req.Status {
		case leave.LeaveRequestStatusPending:
			buckets.Pending = append(buckets.Pending, req)
		case leave.LeaveRequestStatusApproved:
			buckets.Approved = append(buckets.Approved, req)
		case leave.LeaveRequestStatusRejected:
			buckets.Rejected = append(buckets.Rejected, req)
		}
	}
	return buckets
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
