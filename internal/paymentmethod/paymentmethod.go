package paymentmethod

import (
	"encoding/json"
	"errors"
	"time"
)

// PaymentMethod is a catalog entry shown on the public donation page. It is
// not relationally tied to donations: a donation only carries the method's
// name as a free-text label.
type PaymentMethod struct {
	ID         int64           `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"not null"`
	Type       string          `json:"type" gorm:"not null"`
	Details    json.RawMessage `json:"details" gorm:"type:jsonb"`
	QRImageURL *string         `json:"qr_image_url,omitempty" gorm:"column:qr_image_url"`
	IsActive   bool            `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

const (
	TypeBank    = "bank"
	TypeDigital = "digital"
	TypeCrypto  = "crypto"
	TypeMobile  = "mobile"
)

func ValidType(t string) bool {
	switch t {
	case TypeBank, TypeDigital, TypeCrypto, TypeMobile:
		return true
	}
	return false
}

// Domain errors
var (
	ErrMethodNotFound = errors.New("payment method not found")
)
