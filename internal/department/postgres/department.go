package postgres

import (
	departmentDatamodel "github.com/andika/attendance-management/internal/core/datamodel/department"
	"github.com/andika/attendance-management/internal/department"
	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetAll() ([]*departmentDatamodel.Department, error) {
	var rows []*departmentDatamodel.Department
	err := r.db.Order("name ASC").Find(&rows).Error
	return rows, err
}
