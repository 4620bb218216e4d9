package attendance_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/andika/attendance-management/internal/attendance"
	attendancePostgres "github.com/andika/attendance-management/internal/attendance/postgres"
	attendanceDatamodel "github.com/andika/attendance-management/internal/core/datamodel/attendance"
	staffDatamodel "github.com/andika/attendance-management/internal/core/datamodel/staff"
	"github.com/andika/attendance-management/internal/staff"
	staffPostgres "github.com/andika/attendance-management/internal/staff/postgres"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var _ = Describe("Attendance Handler Integration", func() {
	var (
		db      *gorm.DB
		router  *chi.Mux
		service *attendance.Service
		now     time.Time
	)

	checkBody := func(staffID string) *bytes.Buffer {
		body, err := json.Marshal(attendance.CheckDTO{StaffID: staffID})
		Expect(err).NotTo(HaveOccurred())
		return bytes.NewBuffer(body)
	}

	doRequest := func(method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
		var req *http.Request
		if body != nil {
			req = httptest.NewRequest(method, target, body)
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, target, nil)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&staffDatamodel.Staff{}, &attendanceDatamodel.Record{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&staffDatamodel.Staff{
			ID:         "staff-1",
			Name:       "Sarah Chen",
			Email:      "sarah.chen@example.com",
			Department: "Engineering",
		}).Error).NotTo(HaveOccurred())

		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		staffService := staff.NewService(staffPostgres.NewStaffRepository(db), lg)

		now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		service = attendance.NewService(attendancePostgres.NewAttendanceRepository(db), staffService, lg).
			WithClock(func() time.Time { return now })

		handler := attendance.NewHandler(service)
		router = chi.NewRouter()
		router.Route("/attendance", func(r chi.Router) {
			r.Get("/", handler.ListRecords)
			r.Get("/today", handler.TodayRecords)
			r.Get("/summary", handler.Summary)
			r.Post("/check-in", handler.CheckIn)
			r.Post("/check-out", handler.CheckOut)
		})
	})

	Describe("POST /attendance/check-in", func() {
		It("answers 201 with the open record", func() {
			rec := doRequest(http.MethodPost, "/attendance/check-in", checkBody("staff-1"))
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var record attendance.Record
			Expect(json.Unmarshal(rec.Body.Bytes(), &record)).To(Succeed())
			Expect(record.StaffID).To(Equal("staff-1"))
			Expect(record.Date).To(Equal("2025-03-10"))
			Expect(record.CheckOut).To(BeNil())
		})

		It("answers 200 with the existing record on replay", func() {
			first := doRequest(http.MethodPost, "/attendance/check-in", checkBody("staff-1"))
			Expect(first.Code).To(Equal(http.StatusCreated))

			second := doRequest(http.MethodPost, "/attendance/check-in", checkBody("staff-1"))
			Expect(second.Code).To(Equal(http.StatusOK))

			var a, b attendance.Record
			Expect(json.Unmarshal(first.Body.Bytes(), &a)).To(Succeed())
			Expect(json.Unmarshal(second.Body.Bytes(), &b)).To(Succeed())
			Expect(b.ID).To(Equal(a.ID))
		})

		It("answers 404 for an unknown staff id", func() {
			rec := doRequest(http.MethodPost, "/attendance/check-in", checkBody("ghost"))
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("answers 400 for a missing staffId", func() {
			rec := doRequest(http.MethodPost, "/attendance/check-in", checkBody(""))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /attendance/check-out", func() {
		It("closes the open session and answers 200", func() {
			Expect(doRequest(http.MethodPost, "/attendance/check-in", checkBody("staff-1")).Code).
				To(Equal(http.StatusCreated))

			now = now.Add(8 * time.Hour)
			rec := doRequest(http.MethodPost, "/attendance/check-out", checkBody("staff-1"))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var record attendance.Record
			Expect(json.Unmarshal(rec.Body.Bytes(), &record)).To(Succeed())
			Expect(record.CheckOut).NotTo(BeNil())
		})

		It("answers 400 without a prior check-in today", func() {
			rec := doRequest(http.MethodPost, "/attendance/check-out", checkBody("staff-1"))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("no active check-in"))
		})
	})

	Describe("GET /attendance/today", func() {
		It("answers an empty array, not null, with no records", func() {
			rec := doRequest(http.MethodGet, "/attendance/today", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON("[]"))
		})
	})

	Describe("GET /attendance", func() {
		It("filters by the from and to query params", func() {
			Expect(doRequest(http.MethodPost, "/attendance/check-in", checkBody("staff-1")).Code).
				To(Equal(http.StatusCreated))

			rec := doRequest(http.MethodGet, "/attendance?from=2025-03-10&to=2025-03-10", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var records []attendance.Record
			Expect(json.Unmarshal(rec.Body.Bytes(), &records)).To(Succeed())
			Expect(records).To(HaveLen(1))

			rec = doRequest(http.MethodGet, "/attendance?from=2025-03-11", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON("[]"))
		})

		It("answers 400 for a malformed date", func() {
			rec := doRequest(http.MethodGet, "/attendance?from=10-03-2025", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /attendance/summary", func() {
		It("folds records into per-staff lines", func() {
			Expect(doRequest(http.MethodPost, "/attendance/check-in", checkBody("staff-1")).Code).
				To(Equal(http.StatusCreated))
			now = now.Add(8 * time.Hour)
			Expect(doRequest(http.MethodPost, "/attendance/check-out", checkBody("staff-1")).Code).
				To(Equal(http.StatusOK))

			rec := doRequest(http.MethodGet, "/attendance/summary", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var summary []attendance.StaffSummary
			Expect(json.Unmarshal(rec.Body.Bytes(), &summary)).To(Succeed())
			Expect(summary).To(HaveLen(1))
			Expect(summary[0].Name).To(Equal("Sarah Chen"))
			Expect(summary[0].Days).To(Equal(1))
			Expect(summary[0].TotalHours).To(Equal(8.0))
		})
	})
})
