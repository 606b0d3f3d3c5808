package dashboard

import (
	"context"
	"time"

	"github.com/worknest-hr/workforce-go/domain/activity"
	"github.com/worknest-hr/workforce-go/domain/dashboard"
	"github.com/worknest-hr/workforce-go/domain/employee"
	"github.com/worknest-hr/workforce-go/domain/leave"
)

type DashboardServiceImpl struct {
	employees employee.EmployeeService
	leaves    leave.LeaveService
	feed      activity.Feed
}

func NewDashboardService(employees employee.EmployeeService, leaves leave.LeaveService, feed activity.Feed) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employees: employees,
		leaves:    leaves,
		feed:      feed,
	}
}

func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.SummaryResponse, error) {
	return dashboard.SummaryResponse{
		TotalEmployees:       len(s.employees.ListEmployees(ctx)),
		ActiveEmployees:      s.employees.ActiveEmployeesCount(ctx),
		Departments:          s.employees.DepartmentsCount(ctx),
		PendingLeaveRequests: len(s.leaves.GroupLeaveRequestsByStatus(ctx).Pending),
		UpdatedAt:            time.Now().Format(time.RFC3339),
	}, nil
}

func (s *DashboardServiceImpl) RecentActivities(ctx context.Context) []activity.ActivityItem {
	return s.feed.Recent(ctx)
}
