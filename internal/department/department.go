package department

import (
	departmentDatamodel "github.com/andika/attendance-management/internal/core/datamodel/department"
)

type Department struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"-"`
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:       d.ID,
		Name:     d.Name,
		IsActive: d.IsActive,
	}
}

type DepartmentResponse struct {
	Name string `json:"name"`
}

type DepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}
