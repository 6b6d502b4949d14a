package joinrequest

import (
	"errors"
	"time"
)

// JoinRequest is an application to join a photo tour or workshop.
type JoinRequest struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"not null"`
	Experience string    `json:"experience"`
	Message    string    `json:"message"`
	Status     string    `json:"status" gorm:"default:new"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (JoinRequest) TableName() string {
	return "join_requests"
}

const (
	StatusNew      = "new"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// SubmitDTO is the public application payload.
type SubmitDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Experience string `json:"experience,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (dto SubmitDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if dto.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// UpdateStatusDTO is the admin status change payload.
type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateStatusDTO) Validate() error {
	if !ValidStatus(dto.Status) {
		return errors.New("status must be one of new, reviewed, accepted, rejected")
	}
	return nil
}

// Domain errors
var (
	ErrRequestNotFound = errors.New("join request not found")
)
