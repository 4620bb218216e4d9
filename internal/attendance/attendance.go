package attendance

import (
	"time"

	attendanceDatamodel "github.com/andika/attendance-management/internal/core/datamodel/attendance"
)

// Record is one attendance entry: a check-in for a calendar day, and
// the matching check-out once it happens. A nil CheckOut means the
// person is still in the office.
type Record struct {
	ID       string     `json:"id"`
	StaffID  string     `json:"staffId"`
	Date     string     `json:"date"`
	CheckIn  time.Time  `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
}

func (r *Record) IsOpen() bool {
	return r.CheckOut == nil
}

// Hours returns the session length in fractional hours, 0 while the
// session is still open. Computed instant-to-instant, never rounded.
func (r *Record) Hours() float64 {
	if r.CheckOut == nil {
		return 0
	}
	return r.CheckOut.Sub(r.CheckIn).Hours()
}

func ToDataModel(r *Record) *attendanceDatamodel.Record {
	return &attendanceDatamodel.Record{
		ID:       r.ID,
		StaffID:  r.StaffID,
		Date:     r.Date,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
	}
}

func FromDataModel(r *attendanceDatamodel.Record) *Record {
	return &Record{
		ID:       r.ID,
		StaffID:  r.StaffID,
		Date:     r.Date,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
	}
}

func FromDataModelSlice(rows []*attendanceDatamodel.Record) []*Record {
	result := make([]*Record, len(rows))
	for i, r := range rows {
		result[i] = FromDataModel(r)
	}
	return result
}
