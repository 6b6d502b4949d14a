package joinrequest

import (
	"log/slog"
	"time"
)

// Repository defines the data access methods for join requests.
type Repository interface {
	Create(req *JoinRequest) error
	GetByID(id int64) (*JoinRequest, error)
	List() ([]*JoinRequest, error)
	UpdateStatus(id int64, status string) error
}

// Service handles join request logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new join request service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Submit(dto SubmitDTO) (*JoinRequest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("join request validation failed", "error", err)
		return nil, err
	}

	now := time.Now()
	req := &JoinRequest{
		Name:       dto.Name,
		Email:      dto.Email,
		Experience: dto.Experience,
		Message:    dto.Message,
		Status:     StatusNew,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to store join request", "error", err)
		return nil, err
	}

	s.logger.Info("join request received", "request_id", req.ID, "email", req.Email)
	return req, nil
}

func (s *Service) List() ([]*JoinRequest, error) {
	requests, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list join requests", "error", err)
		return nil, err
	}
	return requests, nil
}

func (s *Service) UpdateStatus(id int64, dto UpdateStatusDTO) (*JoinRequest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("status update validation failed", "error", err, "request_id", id)
		return nil, err
	}

	if err := s.repo.UpdateStatus(id, dto.Status); err != nil {
		s.logger.Error("failed to update join request status", "error", err, "request_id", id)
		return nil, err
	}

	s.logger.Info("join request status updated", "request_id", id, "status", dto.Status)
	return s.repo.GetByID(id)
}
