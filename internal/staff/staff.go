package staff

import (
	"time"

	staffDatamodel "github.com/andika/attendance-management/internal/core/datamodel/staff"
)

// DefaultDepartment is applied when a create request omits the department.
const DefaultDepartment = "Engineering"

type Staff struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId"`
}

func NewStaff(id string, dto CreateStaffDTO) *Staff {
	department := dto.Department
	if department == "" {
		department = DefaultDepartment
	}
	return &Staff{
		ID:         id,
		Name:       dto.Name,
		Email:      dto.Email,
		Department: department,
		Role:       dto.Role,
		EmployeeID: dto.EmployeeID,
	}
}

func ToDataModel(s *Staff) *staffDatamodel.Staff {
	now := time.Now()
	return &staffDatamodel.Staff{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Department: s.Department,
		Role:       s.Role,
		EmployeeID: s.EmployeeID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func FromDataModel(s *staffDatamodel.Staff) *Staff {
	return &Staff{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Department: s.Department,
		Role:       s.Role,
		EmployeeID: s.EmployeeID,
	}
}

func FromDataModelSlice(rows []*staffDatamodel.Staff) []*Staff {
	result := make([]*Staff, len(rows))
	for i, s := range rows {
		result[i] = FromDataModel(s)
	}
	return result
}
