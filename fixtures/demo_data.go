package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/worknest-hr/workforce-go/domain/activity"
	"github.com/worknest-hr/workforce-go/domain/employee"
	"github.com/worknest-hr/workforce-go/domain/leave"
	"github.com/worknest-hr/workforce-go/pkg/validator"
)

// The fixed dataset the dashboard starts from: 5 employees, 2 leave requests
// and 3 activity entries. Each call returns fresh slices so a store can
// mutate them freely.

func strPtr(s string) *string { return &s }

func salaryPtr(amount int64) *decimal.Decimal {
	d := decimal.NewFromInt(amount)
	return &d
}

func date(s string) time.Time {
	d, _ := validator.IsValidDate(s)
	return d
}

func timestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// Employees returns the seed employee records in insertion order.
func Employees() []employee.Employee {
	return []employee.Employee{
		{
			ID:          "1",
			Name:        "John Smith",
			Email:       "john.smith@worknest.com",
			Department:  "Engineering",
			Position:    "Senior Developer",
			JoiningDate: date("2022-06-15"),
			Status:      employee.StatusActive,
			Avatar:      "https://ui-avatars.com/api/?name=John+Smith&background=0D8ABC&color=fff",
			Salary:      salaryPtr(95000),
			PhoneNumber: strPtr("555-123-4567"),
			Address:     strPtr("123 Tech Lane, San Francisco, CA"),
		},
		{
			ID:          "2",
			Name:        "Emily Johnson",
			Email:       "emily.johnson@worknest.com",
			Department:  "Marketing",
			Position:    "Marketing Manager",
			JoiningDate: date("2022-08-01"),
			Status:      employee.StatusActive,
			Avatar:      "https://ui-avatars.com/api/?name=Emily+Johnson&background=8E44AD&color=fff",
			Salary:      salaryPtr(85000),
			PhoneNumber: strPtr("555-987-6543"),
			Address:     strPtr("456 Market Street, New York, NY"),
		},
		{
			ID:          "3",
			Name:        "Michael Chen",
			Email:       "michael.chen@worknest.com",
			Department:  "Design",
			Position:    "Senior UI Designer",
			JoiningDate: date("2022-09-12"),
			Status:      employee.StatusOnLeave,
			Avatar:      "https://ui-avatars.com/api/?name=Michael+Chen&background=27AE60&color=fff",
			Salary:      salaryPtr(88000),
			PhoneNumber: strPtr("555-456-7890"),
			Address:     strPtr("789 Design Ave, Seattle, WA"),
		},
		{
			ID:          "4",
			Name:        "Sarah Wilson",
			Email:       "sarah.wilson@worknest.com",
			Department:  "HR",
			Position:    "HR Manager",
			JoiningDate: date("2021-11-05"),
			Status:      employee.StatusActive,
			Avatar:      "https://ui-avatars.com/api/?name=Sarah+Wilson&background=C0392B&color=fff",
			Salary:      salaryPtr(92000),
			PhoneNumber: strPtr("555-789-0123"),
			Address:     strPtr("101 People Street, Chicago, IL"),
		},
		{
			ID:          "5",
			Name:        "David Rodriguez",
			Email:       "david.rodriguez@worknest.com",
			Department:  "Engineering",
			Position:    "DevOps Engineer",
			JoiningDate: date("2023-01-20"),
			Status:      employee.StatusActive,
			Avatar:      "https://ui-avatars.com/api/?name=David+Rodriguez&background=2C3E50&color=fff",
			Salary:      salaryPtr(98000),
			PhoneNumber: strPtr("555-321-6547"),
			Address:     strPtr("234 Cloud Road, Austin, TX"),
		},
	}
}

// LeaveRequests returns the seed leave requests in insertion order.
func LeaveRequests() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{
			ID:         "1",
			EmployeeID: "3",
			StartDate:  date("2025-05-15"),
			EndDate:    date("2025-05-20"),
			Reason:     "Family vacation",
			Status:     leave.LeaveRequestStatusApproved,
			CreatedAt:  timestamp("2025-05-01T10:30:00Z"),
		},
		{
			ID:         "2",
			EmployeeID: "2",
			StartDate:  date("2025-06-10"),
			EndDate:    date("2025-06-12"),
			Reason:     "Medical appointment",
			Status:     leave.LeaveRequestStatusPending,
			CreatedAt:  timestamp("2025-05-18T09:15:00Z"),
		},
	}
}

// Activities returns the seed feed entries, newest first.
func Activities() []activity.ActivityItem {
	return []activity.ActivityItem{
		{
			ID:          "1",
			Type:        activity.TypeEmployeeAdded,
			Description: "Added new employee: David Rodriguez",
			Timestamp:   timestamp("2025-05-18T14:30:00Z"),
			EmployeeID:  "5",
		},
		{
			ID:          "2",
			Type:        activity.TypeLeaveUpdated,
			Description: "Approved leave request for Michael Chen",
			Timestamp:   timestamp("2025-05-17T11:45:00Z"),
			EmployeeID:  "3",
		},
		{
			ID:          "3",
			Type:        activity.TypeEmployeeUpdated,
			Description: "Updated details for Emily Johnson",
			Timestamp:   timestamp("2025-05-16T16:20:00Z"),
			EmployeeID:  "2",
		},
	}
}
