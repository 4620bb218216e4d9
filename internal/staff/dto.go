package staff

import (
	errors "github.com/andika/attendance-management/internal"
	"github.com/andika/attendance-management/internal/core/common/validation"
)

// CreateStaffDTO is the request payload for creating a staff member.
// Department is optional and defaults to Engineering; role and
// employeeId default to empty.
type CreateStaffDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
}

func (dto CreateStaffDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(200)
	v.Field("email", dto.Email).Required().Email()
	v.Field("department", dto.Department).MaxLength(100)
	return v.Validate()
}

// UpdateStaffDTO carries the full replacement state for PUT.
type UpdateStaffDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId"`
}

func (dto UpdateStaffDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(200)
	v.Field("email", dto.Email).Required().Email()
	v.Field("department", dto.Department).MaxLength(100)
	return v.Validate()
}
