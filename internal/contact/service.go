package contact

import (
	"log/slog"
	"time"
)

// Repository defines the data access methods for contact messages.
type Repository interface {
	Create(msg *Message) error
	List() ([]*Message, error)
	MarkRead(id int64) error
	Delete(id int64) error
}

// Service handles contact message logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new contact service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Submit(dto SubmitMessageDTO) (*Message, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("message validation failed", "error", err)
		return nil, err
	}

	msg := &Message{
		Name:      dto.Name,
		Email:     dto.Email,
		Subject:   dto.Subject,
		Body:      dto.Body,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(msg); err != nil {
		s.logger.Error("failed to store contact message", "error", err)
		return nil, err
	}

	s.logger.Info("contact message received", "message_id", msg.ID, "email", msg.Email)
	return msg, nil
}

func (s *Service) List() ([]*Message, error) {
	messages, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list contact messages", "error", err)
		return nil, err
	}
	return messages, nil
}

func (s *Service) MarkRead(id int64) error {
	if err := s.repo.MarkRead(id); err != nil {
		s.logger.Error("failed to mark message read", "error", err, "message_id", id)
		return err
	}
	return nil
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete message", "error", err, "message_id", id)
		return err
	}
	return nil
}
