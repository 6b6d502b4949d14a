package paymentmethod

import (
	"log/slog"
	"time"
)

// Repository defines the data access methods for payment methods.
type Repository interface {
	Create(pm *PaymentMethod) error
	GetByID(id int64) (*PaymentMethod, error)
	ListAll() ([]*PaymentMethod, error)
	ListActive() ([]*PaymentMethod, error)
	Update(id int64, updates map[string]interface{}) error
	Delete(id int64) error
	CountActive() (int64, error)
}

// Service handles payment method management
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new payment method service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create validates and stores a new payment method. Active by default.
func (s *Service) Create(dto CreatePaymentMethodDTO) (*PaymentMethod, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("payment method validation failed", "error", err)
		return nil, err
	}

	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}

	now := time.Now()
	pm := &PaymentMethod{
		Name:       dto.Name,
		Type:       dto.Type,
		Details:    dto.Details,
		QRImageURL: dto.QRImageURL,
		IsActive:   isActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(pm); err != nil {
		s.logger.Error("failed to create payment method", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("payment method created", "id", pm.ID, "name", pm.Name, "type", pm.Type)
	return pm, nil
}

// ListPublic returns only active methods, for the public donation page.
func (s *Service) ListPublic() ([]*PaymentMethod, error) {
	methods, err := s.repo.ListActive()
	if err != nil {
		s.logger.Error("failed to list active payment methods", "error", err)
		return nil, err
	}
	return methods, nil
}

// ListAdmin returns every method, active or not.
func (s *Service) ListAdmin() ([]*PaymentMethod, error) {
	methods, err := s.repo.ListAll()
	if err != nil {
		s.logger.Error("failed to list payment methods", "error", err)
		return nil, err
	}
	return methods, nil
}

// Update applies a partial field replacement and bumps updated_at.
func (s *Service) Update(id int64, dto UpdatePaymentMethodDTO) (*PaymentMethod, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := dto.Validate(current); err != nil {
		s.logger.Error("payment method update validation failed", "error", err, "id", id)
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Type != nil {
		updates["type"] = *dto.Type
	}
	if dto.Details != nil {
		updates["details"] = dto.Details
	}
	if dto.QRImageURL != nil {
		updates["qr_image_url"] = *dto.QRImageURL
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}

	if err := s.repo.Update(id, updates); err != nil {
		s.logger.Error("failed to update payment method", "error", err, "id", id)
		return nil, err
	}

	s.logger.Info("payment method updated", "id", id)
	return s.repo.GetByID(id)
}

// Delete hard-deletes a method by id.
func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete payment method", "error", err, "id", id)
		return err
	}
	s.logger.Info("payment method deleted", "id", id)
	return nil
}

// CountActive satisfies the donation stats dependency.
func (s *Service) CountActive() (int64, error) {
	return s.repo.CountActive()
}
