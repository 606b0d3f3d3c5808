package employee

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/worknest-hr/workforce-go/pkg/validator"
)

// CreateEmployeeRequest carries the fields for a new employee record. When
// Avatar is empty the store derives a placeholder image URL from the name.
type CreateEmployeeRequest struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Department  string           `json:"department"`
	Position    string           `json:"position"`
	JoiningDate time.Time        `json:"joining_date"`
	Status      EmployeeStatus   `json:"status"`
	Avatar      string           `json:"avatar,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Address     *string          `json:"address,omitempty"`
}

// UpdateEmployeeRequest is a partial patch: nil fields leave the stored value
// untouched. A field can be overwritten with an empty value but never un-set.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Position    *string          `json:"position,omitempty"`
	JoiningDate *time.Time       `json:"joining_date,omitempty"`
	Status      *EmployeeStatus  `json:"status,omitempty"`
	Avatar      *string          `json:"avatar,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Address     *string          `json:"address,omitempty"`
}

// Validate implements the form-level required-field checks the presentation
// layer runs before calling the store. The store itself never calls it and
// accepts whatever it is given.
func (r CreateEmployeeRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return errors.New("name is required")
	}
	if !validator.IsValidEmail(r.Email) {
		return errors.New("a valid email is required")
	}
	if validator.IsEmpty(r.Department) {
		return errors.New("department is required")
	}
	if validator.IsEmpty(r.Position) {
		return errors.New("position is required")
	}
	if r.JoiningDate.IsZero() {
		return errors.New("joining date is required")
	}
	return nil
}
