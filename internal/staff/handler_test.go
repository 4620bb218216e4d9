package staff_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

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

var _ = Describe("Staff Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	jsonBody := func(v interface{}) *bytes.Buffer {
		body, err := json.Marshal(v)
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

	createMember := func(dto staff.CreateStaffDTO) *staff.Staff {
		rec := doRequest(http.MethodPost, "/staff", jsonBody(dto))
		Expect(rec.Code).To(Equal(http.StatusCreated))
		var member staff.Staff
		Expect(json.Unmarshal(rec.Body.Bytes(), &member)).To(Succeed())
		return &member
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&staffDatamodel.Staff{}, &attendanceDatamodel.Record{})
		Expect(err).NotTo(HaveOccurred())

		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := staff.NewService(staffPostgres.NewStaffRepository(db), lg)
		handler := staff.NewHandler(service)

		router = chi.NewRouter()
		router.Route("/staff", func(r chi.Router) {
			r.Get("/", handler.ListStaff)
			r.Post("/", handler.CreateStaff)
			r.Get("/{id}", handler.GetStaff)
			r.Put("/{id}", handler.UpdateStaff)
			r.Delete("/{id}", handler.DeleteStaff)
		})
	})

	Describe("POST /staff", func() {
		It("answers 201 with the created member", func() {
			member := createMember(staff.CreateStaffDTO{
				Name:       "Sarah Chen",
				Email:      "sarah.chen@example.com",
				Department: "Engineering",
				Role:       "Senior Developer",
				EmployeeID: "EMP001",
			})
			Expect(member.ID).NotTo(BeEmpty())
			Expect(member.EmployeeID).To(Equal("EMP001"))
		})

		It("fills in the default department", func() {
			member := createMember(staff.CreateStaffDTO{
				Name:  "James Wilson",
				Email: "james.wilson@example.com",
			})
			Expect(member.Department).To(Equal(staff.DefaultDepartment))
		})

		It("answers 400 for an invalid payload", func() {
			rec := doRequest(http.MethodPost, "/staff", jsonBody(staff.CreateStaffDTO{Name: "No Email"}))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /staff", func() {
		It("answers an empty array, not null, with no rows", func() {
			rec := doRequest(http.MethodGet, "/staff", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON("[]"))
		})

		It("lists created members", func() {
			createMember(staff.CreateStaffDTO{Name: "Sarah Chen", Email: "sarah.chen@example.com"})

			rec := doRequest(http.MethodGet, "/staff", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var members []staff.Staff
			Expect(json.Unmarshal(rec.Body.Bytes(), &members)).To(Succeed())
			Expect(members).To(HaveLen(1))
		})
	})

	Describe("GET /staff/{id}", func() {
		It("answers 404 for an unknown id", func() {
			rec := doRequest(http.MethodGet, "/staff/missing", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("PUT /staff/{id}", func() {
		It("replaces the member", func() {
			member := createMember(staff.CreateStaffDTO{Name: "Sarah Chen", Email: "sarah.chen@example.com"})

			rec := doRequest(http.MethodPut, "/staff/"+member.ID, jsonBody(staff.UpdateStaffDTO{
				Name:       "Sarah Chen",
				Email:      "s.chen@example.com",
				Department: "Operations",
			}))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var updated staff.Staff
			Expect(json.Unmarshal(rec.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated.Email).To(Equal("s.chen@example.com"))
		})

		It("answers 404 for an unknown id", func() {
			rec := doRequest(http.MethodPut, "/staff/missing", jsonBody(staff.UpdateStaffDTO{
				Name:  "Nobody",
				Email: "nobody@example.com",
			}))
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /staff/{id}", func() {
		It("answers 204 and removes the member", func() {
			member := createMember(staff.CreateStaffDTO{Name: "Sarah Chen", Email: "sarah.chen@example.com"})

			rec := doRequest(http.MethodDelete, "/staff/"+member.ID, nil)
			Expect(rec.Code).To(Equal(http.StatusNoContent))

			rec = doRequest(http.MethodGet, "/staff/"+member.ID, nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("answers 404 for an unknown id", func() {
			rec := doRequest(http.MethodDelete, "/staff/missing", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
