package postgres

import (
	attendanceDatamodel "github.com/andika/attendance-management/internal/core/datamodel/attendance"
	staffDatamodel "github.com/andika/attendance-management/internal/core/datamodel/staff"
	"github.com/andika/attendance-management/internal/staff"
	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) staff.RepositoryAPI {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) GetAll() ([]*staffDatamodel.Staff, error) {
	var rows []*staffDatamodel.Staff
	err := r.db.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *StaffRepository) GetByID(id string) (*staffDatamodel.Staff, error) {
	var row staffDatamodel.Staff
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *StaffRepository) Create(row *staffDatamodel.Staff) error {
	return r.db.Create(row).Error
}

func (r *StaffRepository) Update(row *staffDatamodel.Staff) error {
	return r.db.Save(row).Error
}

// Delete removes the staff row and its attendance records in one
// transaction. The attendance FK also carries ON DELETE CASCADE, so the
// explicit delete keeps the behavior identical on engines where the
// constraint is not enforced.
func (r *StaffRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", id).Delete(&attendanceDatamodel.Record{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&staffDatamodel.Staff{}).Error
	})
}
