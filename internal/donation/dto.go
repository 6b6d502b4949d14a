package donation

import (
	"errors"
	"time"
)

// SubmitDonationDTO is the request payload for submitting a donation. Either
// donor_id or donor_name must be present; a missing donor_id makes the
// submission create a new donor from the contact fields.
type SubmitDonationDTO struct {
	DonorID       *int64  `json:"donor_id,omitempty"`
	DonorName     string  `json:"donor_name"`
	DonorEmail    *string `json:"donor_email,omitempty"`
	DonorPhone    *string `json:"donor_phone,omitempty"`
	DonorCountry  *string `json:"donor_country,omitempty"`
	Amount        int64   `json:"amount"`
	Currency      string  `json:"currency,omitempty"`
	PaymentMethod string  `json:"payment_method"`
	Message       *string `json:"message,omitempty"`
	IsAnonymous   bool    `json:"is_anonymous,omitempty"`
	Status        string  `json:"status,omitempty"`
	TransactionID *string `json:"transaction_id,omitempty"`
}

// Validate checks the DTO before any write happens.
func (dto SubmitDonationDTO) Validate() error {
	if dto.Amount <= 0 {
		return errors.New("amount must be a positive integer in minor currency units")
	}
	if dto.DonorID == nil && dto.DonorName == "" {
		return errors.New("donor_name is required when donor_id is not given")
	}
	if dto.PaymentMethod == "" {
		return errors.New("payment_method is required")
	}
	if dto.Status != "" && !ValidStatus(dto.Status) {
		return errors.New("status must be one of pending, completed, failed")
	}
	return nil
}

// UpdateDonationStatusDTO is the admin request for flipping a donation status.
type UpdateDonationStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateDonationStatusDTO) Validate() error {
	if dto.Status == "" {
		return errors.New("status is required")
	}
	if !ValidStatus(dto.Status) {
		return errors.New("status must be one of pending, completed, failed")
	}
	return nil
}

// DonorDetail is a donor plus its donation history, newest first.
type DonorDetail struct {
	Donor     *Donor      `json:"donor"`
	Donations []*Donation `json:"donations"`
}

// Stats is the public aggregate figure set.
type Stats struct {
	TotalDonated         int64 `json:"total_donated"`
	DonorCount           int64 `json:"donor_count"`
	ActivePaymentMethods int64 `json:"active_payment_methods"`
	AverageDonation      int64 `json:"average_donation"`
}

// ListQuery carries optional pagination for the list endpoints. Zero values
// keep the original all-rows contract shape with a generous default limit.
type ListQuery struct {
	Limit  int
	Offset int
}

const defaultListLimit = 500

func (q ListQuery) Normalize() (limit, offset int) {
	limit = q.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	offset = q.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func donationFromDTO(dto SubmitDonationDTO, now time.Time) *Donation {
	currency := dto.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	status := dto.Status
	if status == "" {
		status = StatusPending
	}
	return &Donation{
		Amount:        dto.Amount,
		Currency:      currency,
		PaymentMethod: dto.PaymentMethod,
		Message:       dto.Message,
		IsAnonymous:   dto.IsAnonymous,
		Status:        status,
		TransactionID: dto.TransactionID,
		DonationDate:  now,
		CreatedAt:     now,
	}
}

func donorFromDTO(dto SubmitDonationDTO, now time.Time) *Donor {
	return &Donor{
		Name:        dto.DonorName,
		Email:       dto.DonorEmail,
		Phone:       dto.DonorPhone,
		Country:     dto.DonorCountry,
		IsAnonymous: dto.IsAnonymous,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
