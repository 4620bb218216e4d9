package attendance

import (
	"time"

	errors "github.com/andika/attendance-management/internal"
	attendanceDatamodel "github.com/andika/attendance-management/internal/core/datamodel/attendance"
)

// CheckDTO is the shared payload for check-in and check-out.
type CheckDTO struct {
	StaffID string `json:"staffId"`
}

func (dto CheckDTO) Validate() *errors.AppError {
	if dto.StaffID == "" {
		return errors.NewValidationFieldError("staffId", "staffId is required", errors.ErrCodeValidationFailed)
	}
	return nil
}

// RangeQuery bounds a record listing. From and To are inclusive ISO
// dates; either may be empty for an unbounded side. StaffID optionally
// narrows to one person.
type RangeQuery struct {
	From    string
	To      string
	StaffID string
}

func (q RangeQuery) Validate() *errors.AppError {
	if err := validateDate("from", q.From); err != nil {
		return err
	}
	return validateDate("to", q.To)
}

func validateDate(field, value string) *errors.AppError {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(attendanceDatamodel.DateLayout, value); err != nil {
		return errors.NewValidationFieldError(field, field+" must be a date in YYYY-MM-DD form", errors.ErrCodeInvalidDate)
	}
	return nil
}

// StaffSummary is the derived per-staff report line. TotalHours keeps
// full float precision; rounding is a display concern.
type StaffSummary struct {
	StaffID    string  `json:"staffId"`
	Name       string  `json:"name"`
	Days       int     `json:"days"`
	TotalHours float64 `json:"totalHours"`
}
