package contact

import (
	"errors"
	"time"
)

// Message is a contact-form submission.
type Message struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body" gorm:"not null"`
	IsRead    bool      `json:"is_read" gorm:"column:is_read;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "contact_messages"
}

// SubmitMessageDTO is the public contact-form payload.
type SubmitMessageDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

func (dto SubmitMessageDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if dto.Email == "" {
		return errors.New("email is required")
	}
	if dto.Body == "" {
		return errors.New("body is required")
	}
	return nil
}

// Domain errors
var (
	ErrMessageNotFound = errors.New("message not found")
)
