package attendance

import (
	"log/slog"
	"time"

	errors "github.com/andika/attendance-management/internal"
	attendanceDatamodel "github.com/andika/attendance-management/internal/core/datamodel/attendance"
	"github.com/google/uuid"
)

type RepositoryAPI interface {
	GetByStaffAndDate(staffID, date string) (*attendanceDatamodel.Record, error)
	// InsertIfAbsent inserts the record unless a row for the same
	// (staff, date) already exists, in which case it returns that row.
	// The bool reports whether the insert happened.
	InsertIfAbsent(rec *attendanceDatamodel.Record) (*attendanceDatamodel.Record, bool, error)
	// CloseOpen stamps check_out on the open row for (staff, date) and
	// returns the number of rows affected; zero means no open session.
	CloseOpen(staffID, date string, at time.Time) (int64, error)
	GetForDate(date string) ([]*attendanceDatamodel.Record, error)
	GetRange(from, to, staffID string) ([]*attendanceDatamodel.Record, error)
}

// StaffDirectory is the slice of the staff service the attendance flow
// needs: the referential check before check-in and names for summaries.
type StaffDirectory interface {
	Exists(id string) (bool, error)
	Names() (map[string]string, error)
}

type Service struct {
	repo     RepositoryAPI
	staffDir StaffDirectory
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(repo RepositoryAPI, staffDir StaffDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		staffDir: staffDir,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock swaps the wall clock, so tests can pin "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CheckIn opens a session for the current calendar day. A second
// check-in the same day is idempotent: the existing record comes back
// unchanged and created is false.
func (s *Service) CheckIn(dto CheckDTO) (*Record, bool, error) {
	if err := dto.Validate(); err != nil {
		return nil, false, err
	}

	ok, err := s.staffDir.Exists(dto.StaffID)
	if err != nil {
		s.logger.Error("failed to resolve staff for check-in", "error", err, "staff_id", dto.StaffID)
		return nil, false, errors.NewInternalError("failed to check in", err)
	}
	if !ok {
		s.logger.Warn("check-in for unknown staff rejected", "staff_id", dto.StaffID)
		return nil, false, errors.ErrStaffNotFound
	}

	now := s.now()
	today := now.Format(attendanceDatamodel.DateLayout)

	rec := &attendanceDatamodel.Record{
		ID:      uuid.NewString(),
		StaffID: dto.StaffID,
		Date:    today,
		CheckIn: now,
	}

	row, created, err := s.repo.InsertIfAbsent(rec)
	if err != nil {
		s.logger.Error("failed to insert attendance record", "error", err, "staff_id", dto.StaffID, "date", today)
		return nil, false, errors.NewInternalError("failed to check in", err)
	}

	if created {
		s.logger.Info("checked in", "staff_id", dto.StaffID, "date", today, "record_id", row.ID)
	} else {
		s.logger.Info("check-in replayed, returning existing record", "staff_id", dto.StaffID, "date", today, "record_id", row.ID)
	}
	return FromDataModel(row), created, nil
}

// CheckOut closes today's open session. With no open session it fails
// with the no-active-check-in condition; it never creates a record or
// reopens a closed one.
func (s *Service) CheckOut(dto CheckDTO) (*Record, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.staffDir.Exists(dto.StaffID)
	if err != nil {
		s.logger.Error("failed to resolve staff for check-out", "error", err, "staff_id", dto.StaffID)
		return nil, errors.NewInternalError("failed to check out", err)
	}
	if !ok {
		return nil, errors.ErrStaffNotFound
	}

	now := s.now()
	today := now.Format(attendanceDatamodel.DateLayout)

	affected, err := s.repo.CloseOpen(dto.StaffID, today, now)
	if err != nil {
		s.logger.Error("failed to close attendance record", "error", err, "staff_id", dto.StaffID, "date", today)
		return nil, errors.NewInternalError("failed to check out", err)
	}
	if affected == 0 {
		s.logger.Warn("check-out without open session", "staff_id", dto.StaffID, "date", today)
		return nil, errors.ErrNoActiveCheckIn
	}

	row, err := s.repo.GetByStaffAndDate(dto.StaffID, today)
	if err != nil {
		s.logger.Error("failed to reload record after check-out", "error", err, "staff_id", dto.StaffID, "date", today)
		return nil, errors.NewInternalError("failed to check out", err)
	}
	if row == nil {
		// closed a row that vanished before the reload; only a cascade
		// delete racing this request can do that
		return nil, errors.ErrRecordNotFound
	}

	s.logger.Info("checked out", "staff_id", dto.StaffID, "date", today, "record_id", row.ID)
	return FromDataModel(row), nil
}

// Today lists the current day's records, most recent check-in first.
func (s *Service) Today() ([]*Record, error) {
	today := s.now().Format(attendanceDatamodel.DateLayout)
	rows, err := s.repo.GetForDate(today)
	if err != nil {
		s.logger.Error("failed to list today's records", "error", err, "date", today)
		return nil, errors.NewInternalError("failed to list today's records", err)
	}
	return FromDataModelSlice(rows), nil
}

// Range lists records inside the inclusive [from, to] window, newest
// date first.
func (s *Service) Range(q RangeQuery) ([]*Record, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.repo.GetRange(q.From, q.To, q.StaffID)
	if err != nil {
		s.logger.Error("failed to list records", "error", err, "from", q.From, "to", q.To, "staff_id", q.StaffID)
		return nil, errors.NewInternalError("failed to list records", err)
	}
	return FromDataModelSlice(rows), nil
}

// SummaryReport runs the range query and folds the result into
// per-staff lines via Summarize.
func (s *Service) SummaryReport(q RangeQuery) ([]StaffSummary, error) {
	records, err := s.Range(q)
	if err != nil {
		return nil, err
	}

	names, err := s.staffDir.Names()
	if err != nil {
		s.logger.Error("failed to load staff names for summary", "error", err)
		return nil, errors.NewInternalError("failed to build summary", err)
	}

	return Summarize(records, names), nil
}
