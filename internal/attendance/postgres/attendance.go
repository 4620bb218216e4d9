package postgres

import (
	"time"

	"github.com/andika/attendance-management/internal/attendance"
	attendanceDatamodel "github.com/andika/attendance-management/internal/core/datamodel/attendance"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) GetByStaffAndDate(staffID, date string) (*attendanceDatamodel.Record, error) {
	var row attendanceDatamodel.Record
	err := r.db.Where("staff_id = ? AND date = ?", staffID, date).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// InsertIfAbsent leans on the (staff_id, date) unique index: two racing
// check-ins both reach the insert, one wins, the loser reads the
// winner's row back. No application-level locking.
func (r *AttendanceRepository) InsertIfAbsent(rec *attendanceDatamodel.Record) (*attendanceDatamodel.Record, bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(rec)
	if res.Error != nil {
		return nil, false, res.Error
	}

	if res.RowsAffected == 1 {
		return rec, true, nil
	}

	existing, err := r.GetByStaffAndDate(rec.StaffID, rec.Date)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *AttendanceRepository) CloseOpen(staffID, date string, at time.Time) (int64, error) {
	res := r.db.Model(&attendanceDatamodel.Record{}).
		Where("staff_id = ? AND date = ? AND check_out IS NULL", staffID, date).
		Update("check_out", at)
	return res.RowsAffected, res.Error
}

func (r *AttendanceRepository) GetForDate(date string) ([]*attendanceDatamodel.Record, error) {
	var rows []*attendanceDatamodel.Record
	err := r.db.Where("date = ?", date).
		Order("check_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *AttendanceRepository) GetRange(from, to, staffID string) ([]*attendanceDatamodel.Record, error) {
	query := r.db.Model(&attendanceDatamodel.Record{})
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}
	if staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}

	var rows []*attendanceDatamodel.Record
	err := query.Order("date DESC, check_in DESC").Find(&rows).Error
	return rows, err
}
