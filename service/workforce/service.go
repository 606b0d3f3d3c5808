package workforce

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/worknest-hr/workforce-go/config"
	"github.com/worknest-hr/workforce-go/domain/activity"
	"github.com/worknest-hr/workforce-go/domain/employee"
	"github.com/worknest-hr/workforce-go/domain/leave"
	"github.com/worknest-hr/workforce-go/fixtures"
	"github.com/worknest-hr/workforce-go/repository/memory"
)

// WorkforceService is the operation set the presentation layer calls. It
// wraps the memory store with structured logging; every mutation is atomic
// inside the store itself.
type WorkforceService struct {
	store  *memory.Store
	logger *slog.Logger
}

func NewWorkforceService(store *memory.Store, logger *slog.Logger) *WorkforceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkforceService{store: store, logger: logger}
}

// NewFromConfig is the composition root: it builds the logger and the store
// from configuration and owns their lifecycle.
func NewFromConfig(cfg *config.Config) *WorkforceService {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(
		slog.String("app", "worknest-workforce"),
		slog.String("env", cfg.App.Env),
	)

	opts := []memory.Option{
		memory.WithRetention(cfg.Store.ActivityRetention),
	}
	if cfg.Store.AvatarSeed != 0 {
		opts = append(opts, memory.WithAvatarSeed(cfg.Store.AvatarSeed))
	}
	if cfg.Store.SeedDemoData {
		opts = append(opts, memory.WithSeedData(
			fixtures.Employees(),
			fixtures.LeaveRequests(),
			fixtures.Activities(),
		))
	}

	return NewWorkforceService(memory.NewStore(opts...), logger)
}

func (s *WorkforceService) AddEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	emp, err := s.store.AddEmployee(ctx, req)
	if err != nil {
		return employee.Employee{}, err
	}
	s.logger.InfoContext(ctx, "employee added", "employee_id", emp.ID, "department", emp.Department)
	return emp, nil
}

func (s *WorkforceService) UpdateEmployee(ctx context.Context, id string, patch employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, err := s.store.UpdateEmployee(ctx, id, patch)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			s.logger.WarnContext(ctx, "employee update skipped", "employee_id", id, "error", err)
		}
		return employee.Employee{}, err
	}
	s.logger.InfoContext(ctx, "employee updated", "employee_id", emp.ID)
	return emp, nil
}

func (s *WorkforceService) DeleteEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.store.DeleteEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			s.logger.WarnContext(ctx, "employee delete skipped", "employee_id", id, "error", err)
		}
		return employee.Employee{}, err
	}
	s.logger.InfoContext(ctx, "employee removed", "employee_id", emp.ID)
	return emp, nil
}

func (s *WorkforceService) GetEmployeeByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.store.GetEmployeeByID(ctx, id)
}

func (s *WorkforceService) ListEmployees(ctx context.Context) []employee.Employee {
	return s.store.ListEmployees(ctx)
}

func (s *WorkforceService) GetEmployeesByDepartment(ctx context.Context, department string) []employee.Employee {
	return s.store.GetEmployeesByDepartment(ctx, department)
}

func (s *WorkforceService) ActiveEmployeesCount(ctx context.Context) int {
	return s.store.ActiveEmployeesCount(ctx)
}

func (s *WorkforceService) DepartmentsCount(ctx context.Context) int {
	return s.store.DepartmentsCount(ctx)
}

func (s *WorkforceService) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequest, error) {
	request, err := s.store.SubmitLeaveRequest(ctx, req)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	s.logger.InfoContext(ctx, "leave request submitted", "request_id", request.ID, "employee_id", request.EmployeeID)
	return request, nil
}

func (s *WorkforceService) UpdateLeaveRequestStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) (leave.LeaveRequest, error) {
	request, err := s.store.UpdateLeaveRequestStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			s.logger.WarnContext(ctx, "leave decision skipped", "request_id", id, "error", err)
		}
		return leave.LeaveRequest{}, err
	}
	s.logger.InfoContext(ctx, "leave request decided", "request_id", request.ID, "status", string(request.Status))
	return request, nil
}

func (s *WorkforceService) GetLeaveRequestsByEmployee(ctx context.Context, employeeID string) []leave.LeaveRequest {
	return s.store.GetLeaveRequestsByEmployee(ctx, employeeID)
}

func (s *WorkforceService) ListLeaveRequests(ctx context.Context) []leave.LeaveRequest {
	return s.store.ListLeaveRequests(ctx)
}

func (s *WorkforceService) GroupLeaveRequestsByStatus(ctx context.Context) leave.StatusBuckets {
	return s.store.GroupLeaveRequestsByStatus(ctx)
}

func (s *WorkforceService) Recent(ctx context.Context) []activity.ActivityItem {
	return s.store.Recent(ctx)
}

var (
	_ employee.EmployeeService = (*WorkforceService)(nil)
	_ leave.LeaveService       = (*WorkforceService)(nil)
	_ activity.Feed            = (*WorkforceService)(nil)
)
