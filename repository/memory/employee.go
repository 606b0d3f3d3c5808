package memory

import (
	"context"

	"github.com/worknest-hr/workforce-go/domain/activity"
	"github.com/worknest-hr/workforce-go/domain/employee"
	"github.com/worknest-hr/workforce-go/pkg/avatar"
)

func (s *Store) AddEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp := employee.Employee{
		ID:          newID("emp"),
		Name:        req.Name,
		Email:       req.Email,
		Department:  req.Department,
		Position:    req.Position,
		JoiningDate: req.JoiningDate,
		Status:      req.Status,
		Avatar:      req.Avatar,
		Salary:      req.Salary,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if emp.Avatar == "" {
		emp.Avatar = avatar.Placeholder(emp.Name, s.rng)
	}

	s.employees = append(s.employees, emp)
	s.appendActivityLocked(activity.TypeEmployeeAdded, "Added new employee: "+emp.Name, emp.ID)

	return emp, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id string, patch employee.UpdateEmployeeRequest) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndexLocked(id)
	if idx < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	emp := &s.employees[idx]
	// The feed records the name as it was before the patch applied.
	previousName := emp.Name

	if patch.Name != nil {
		emp.Name = *patch.Name
	}
	if patch.Email != nil {
		emp.Email = *patch.Email
	}
	if patch.Department != nil {
		emp.Department = *patch.Department
	}
	if patch.Position != nil {
		emp.Position = *patch.Position
	}
	if patch.JoiningDate != nil {
		emp.JoiningDate = *patch.JoiningDate
	}
	if patch.Status != nil {
		emp.Status = *patch.Status
	}
	if patch.Avatar != nil {
		emp.Avatar = *patch.Avatar
	}
	if patch.Salary != nil {
		salary := *patch.Salary
		emp.Salary = &salary
	}
	if patch.PhoneNumber != nil {
		phone := *patch.PhoneNumber
		emp.PhoneNumber = &phone
	}
	if patch.Address != nil {
		address := *patch.Address
		emp.Address = &address
	}

	s.appendActivityLocked(activity.TypeEmployeeUpdated, "Updated details for "+previousName, id)

	return *emp, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndexLocked(id)
	if idx < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	emp := s.employees[idx]
	s.employees = append(s.employees[:idx], s.employees[idx+1:]...)

	// Leave requests referencing this employee are left in place; the
	// reference simply stops resolving.
	s.appendActivityLocked(activity.TypeEmployeeRemoved, "Removed employee: "+emp.Name, id)

	return emp, nil
}

func (s *Store) GetEmployeeByID(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndexLocked(id)
	if idx < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.employees[idx], nil
}

func (s *Store) ListEmployees(ctx context.Context) []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Store) GetEmployeesByDepartment(ctx context.Context, department string) []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []employee.Employee
	for _, emp := range s.employees {
		if emp.Department == department {
			out = append(out, emp)
		}
	}
	return out
}

func (s *Store) ActiveEmployeesCount(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, emp := range s.employees {
		if emp.Status == employee.StatusActive {
			count++
		}
	}
	return count
}

func (s *Store) DepartmentsCount(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	departments := make(map[string]struct{}, len(s.employees))
	for _, emp := range s.employees {
		departments[emp.Department] = struct{}{}
	}
	return len(departments)
}

func (s *Store) employeeIndexLocked(id string) int {
	for i, emp := range s.employees {
		if emp.ID == id {
			return i
		}
	}
	return -1
}
