package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	Name        string
	Email       string
	Department  string
	Position    string
	JoiningDate time.Time
	Status      EmployeeStatus
	Avatar      string
	Salary      *decimal.Decimal
	PhoneNumber *string
	Address     *string
}

type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "active"
	StatusInactive EmployeeStatus = "inactive"
	StatusOnLeave  EmployeeStatus = "on-leave"
)
