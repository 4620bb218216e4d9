package attendance_test

import (
	"time"

	"github.com/andika/attendance-management/internal/attendance"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Summarize", func() {
	names := map[string]string{
		"staff-1": "Sarah Chen",
		"staff-2": "James Wilson",
	}

	record := func(staffID, date string, checkIn time.Time, hours float64) *attendance.Record {
		rec := &attendance.Record{
			ID:      staffID + "-" + date,
			StaffID: staffID,
			Date:    date,
			CheckIn: checkIn,
		}
		if hours > 0 {
			out := checkIn.Add(time.Duration(hours * float64(time.Hour)))
			rec.CheckOut = &out
		}
		return rec
	}

	nine := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	It("returns no lines for no records", func() {
		Expect(attendance.Summarize(nil, names)).To(BeEmpty())
	})

	It("counts every record as a day and only closed ones toward hours", func() {
		records := []*attendance.Record{
			record("staff-1", "2025-03-09", nine.AddDate(0, 0, -1), 8),
			record("staff-1", "2025-03-10", nine, 0), // still open
		}
		summary := attendance.Summarize(records, names)
		Expect(summary).To(HaveLen(1))
		Expect(summary[0].Days).To(Equal(2))
		Expect(summary[0].TotalHours).To(Equal(8.0))
	})

	It("accumulates fractional hours", func() {
		records := []*attendance.Record{
			record("staff-1", "2025-03-09", nine.AddDate(0, 0, -1), 7.5),
			record("staff-1", "2025-03-10", nine, 8.25),
		}
		summary := attendance.Summarize(records, names)
		Expect(summary[0].TotalHours).To(BeNumerically("~", 15.75, 1e-9))
	})

	It("groups by staff and orders lines by staff id", func() {
		records := []*attendance.Record{
			record("staff-2", "2025-03-10", nine, 8),
			record("staff-1", "2025-03-10", nine, 6),
		}
		summary := attendance.Summarize(records, names)
		Expect(summary).To(HaveLen(2))
		Expect(summary[0].StaffID).To(Equal("staff-1"))
		Expect(summary[0].Name).To(Equal("Sarah Chen"))
		Expect(summary[1].StaffID).To(Equal("staff-2"))
		Expect(summary[1].Name).To(Equal("James Wilson"))
	})

	It("labels staff missing from the directory as Unknown", func() {
		records := []*attendance.Record{
			record("staff-9", "2025-03-10", nine, 8),
		}
		summary := attendance.Summarize(records, names)
		Expect(summary[0].Name).To(Equal("Unknown"))
	})
})
