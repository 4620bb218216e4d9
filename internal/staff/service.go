package staff

import (
	"log/slog"

	errors "github.com/andika/attendance-management/internal"
	staffDatamodel "github.com/andika/attendance-management/internal/core/datamodel/staff"
	"github.com/google/uuid"
)

type RepositoryAPI interface {
	GetAll() ([]*staffDatamodel.Staff, error)
	GetByID(id string) (*staffDatamodel.Staff, error)
	Create(staff *staffDatamodel.Staff) error
	Update(staff *staffDatamodel.Staff) error
	// Delete removes the staff row and, through the schema cascade,
	// every attendance record referencing it.
	Delete(id string) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListStaff() ([]*Staff, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list staff", "error", err)
		return nil, errors.NewInternalError("failed to list staff", err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetStaff(id string) (*Staff, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get staff", "error", err, "staff_id", id)
		return nil, errors.NewInternalError("failed to get staff", err)
	}
	if row == nil {
		return nil, errors.ErrStaffNotFound
	}
	return FromDataModel(row), nil
}

func (s *Service) CreateStaff(dto CreateStaffDTO) (*Staff, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("staff validation failed", "error", err)
		return nil, err
	}

	member := NewStaff(uuid.NewString(), dto)
	if err := s.repo.Create(ToDataModel(member)); err != nil {
		s.logger.Error("failed to create staff", "error", err, "email", dto.Email)
		return nil, errors.NewInternalError("failed to create staff", err)
	}

	s.logger.Info("staff created", "staff_id", member.ID, "department", member.Department)
	return member, nil
}

func (s *Service) UpdateStaff(id string, dto UpdateStaffDTO) (*Staff, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("staff validation failed", "error", err, "staff_id", id)
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load staff for update", "error", err, "staff_id", id)
		return nil, errors.NewInternalError("failed to update staff", err)
	}
	if row == nil {
		return nil, errors.ErrStaffNotFound
	}

	row.Name = dto.Name
	row.Email = dto.Email
	row.Department = dto.Department
	row.Role = dto.Role
	row.EmployeeID = dto.EmployeeID

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update staff", "error", err, "staff_id", id)
		return nil, errors.NewInternalError("failed to update staff", err)
	}

	s.logger.Info("staff updated", "staff_id", id)
	return FromDataModel(row), nil
}

func (s *Service) DeleteStaff(id string) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load staff for delete", "error", err, "staff_id", id)
		return errors.NewInternalError("failed to delete staff", err)
	}
	if row == nil {
		return errors.ErrStaffNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete staff", "error", err, "staff_id", id)
		return errors.NewInternalError("failed to delete staff", err)
	}

	s.logger.Info("staff deleted, attendance cascaded", "staff_id", id)
	return nil
}

// Exists reports whether a staff id resolves to a row; the attendance
// service uses it as the referential check before check-in.
func (s *Service) Exists(id string) (bool, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	return row != nil, nil
}

// Names returns the id-to-name roster map used by summary reporting.
func (s *Service) Names() (map[string]string, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
