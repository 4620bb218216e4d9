package department

import (
	"log/slog"

	departmentDatamodel "github.com/andika/attendance-management/internal/core/datamodel/department"
)

type RepositoryAPI interface {
	GetAll() ([]*departmentDatamodel.Department, error)
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

// ListDepartments returns the active suggestion names for the staff
// form. Staff departments themselves stay free text.
func (s *Service) ListDepartments() ([]DepartmentResponse, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get departments from repository", "error", err)
		return nil, err
	}

	var responses []DepartmentResponse
	for _, row := range rows {
		dept := FromDataModel(row)
		if dept.IsActive {
			responses = append(responses, DepartmentResponse{Name: dept.Name})
		}
	}

	return responses, nil
}
