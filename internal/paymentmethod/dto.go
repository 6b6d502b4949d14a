package paymentmethod

import (
	"encoding/json"
	"errors"
	"fmt"
)

// requiredDetailFields maps each method type to the keys its details blob
// must carry. The blob stays schemaless in storage; the shape check happens
// here so a bank method cannot be saved without an account number.
var requiredDetailFields = map[string][]string{
	TypeBank:    {"bank_name", "account_number"},
	TypeDigital: {"provider", "identifier"},
	TypeCrypto:  {"network", "address"},
	TypeMobile:  {"provider", "phone"},
}

// CreatePaymentMethodDTO is the admin request for creating a payment method.
type CreatePaymentMethodDTO struct {
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Details    json.RawMessage `json:"details"`
	QRImageURL *string         `json:"qr_image_url,omitempty"`
	IsActive   *bool           `json:"is_active,omitempty"`
}

func (dto CreatePaymentMethodDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if !ValidType(dto.Type) {
		return errors.New("type must be one of bank, digital, crypto, mobile")
	}
	return validateDetails(dto.Type, dto.Details)
}

// UpdatePaymentMethodDTO carries partial field replacements. Nil pointers
// leave the stored value alone.
type UpdatePaymentMethodDTO struct {
	Name       *string         `json:"name,omitempty"`
	Type       *string         `json:"type,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
	QRImageURL *string         `json:"qr_image_url,omitempty"`
	IsActive   *bool           `json:"is_active,omitempty"`
}

func (dto UpdatePaymentMethodDTO) Validate(current *PaymentMethod) error {
	methodType := current.Type
	if dto.Type != nil {
		if !ValidType(*dto.Type) {
			return errors.New("type must be one of bank, digital, crypto, mobile")
		}
		methodType = *dto.Type
	}
	if dto.Name != nil && *dto.Name == "" {
		return errors.New("name cannot be empty")
	}
	if dto.Details != nil {
		return validateDetails(methodType, dto.Details)
	}
	// a type change without a new blob must still fit the stored details
	if dto.Type != nil && *dto.Type != current.Type {
		return validateDetails(methodType, current.Details)
	}
	return nil
}

func validateDetails(methodType string, details json.RawMessage) error {
	if len(details) == 0 {
		return errors.New("details is required")
	}

	var blob map[string]interface{}
	if err := json.Unmarshal(details, &blob); err != nil {
		return errors.New("details must be a JSON object")
	}

	for _, field := range requiredDetailFields[methodType] {
		v, ok := blob[field]
		if !ok {
			return fmt.Errorf("details for type %q must include %q", methodType, field)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return fmt.Errorf("details field %q cannot be empty", field)
		}
	}

	return nil
}
