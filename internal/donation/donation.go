package donation

import (
	"errors"
	"time"
)

// Donor is a person who has donated at least once. The aggregate columns
// (total_donated, donation_count, last_donation) are denormalized caches
// maintained by the submission transaction; they include donations of any
// status, while the public stats endpoint counts completed donations only.
type Donor struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" gorm:"not null"`
	Email         *string    `json:"email,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Country       *string    `json:"country,omitempty"`
	AvatarURL     *string    `json:"avatar_url,omitempty" gorm:"column:avatar_url"`
	IsAnonymous   bool       `json:"is_anonymous" gorm:"column:is_anonymous;default:false"`
	TotalDonated  int64      `json:"total_donated" gorm:"column:total_donated;default:0"`
	DonationCount int64      `json:"donation_count" gorm:"column:donation_count;default:0"`
	LastDonation  *time.Time `json:"last_donation,omitempty" gorm:"column:last_donation"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Donor) TableName() string {
	return "donors"
}

// Donation is a single contribution. Immutable after creation except for
// status, which admins flip as offline payments settle.
type Donation struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	DonorID       int64     `json:"donor_id" gorm:"column:donor_id;not null;index"`
	Amount        int64     `json:"amount" gorm:"not null"`
	Currency      string    `json:"currency" gorm:"default:USD"`
	PaymentMethod string    `json:"payment_method" gorm:"column:payment_method;not null"`
	Message       *string   `json:"message,omitempty"`
	IsAnonymous   bool      `json:"is_anonymous" gorm:"column:is_anonymous;default:false"`
	Status        string    `json:"status" gorm:"default:pending"`
	TransactionID *string   `json:"transaction_id,omitempty" gorm:"column:transaction_id"`
	DonationDate  time.Time `json:"donation_date" gorm:"column:donation_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonationWithDonor is the admin list row: a donation joined with the
// owning donor's display name.
type DonationWithDonor struct {
	Donation
	DonorName string `json:"donor_name"`
}

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"

	DefaultCurrency = "USD"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Domain errors
var (
	ErrDonorNotFound    = errors.New("donor not found")
	ErrDonationNotFound = errors.New("donation not found")
)
