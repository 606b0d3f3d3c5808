package dashboard

// SummaryResponse contains the headline numbers for the admin dashboard,
// recomputed from current collection state on every call.
type SummaryResponse struct {
	TotalEmployees       int    `json:"total_employees"`
	ActiveEmployees      int    `json:"active_employees"`
	Departments          int    `json:"departments"`
	PendingLeaveRequests int    `json:"pending_leave_requests"`
	UpdatedAt            string `json:"updated_at"`
}
