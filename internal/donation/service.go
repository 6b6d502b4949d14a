package donation

import (
	"log/slog"
	"math"
	"time"
)

// Repository defines the data access methods for the donation ledger.
type Repository interface {
	// SubmitDonation persists a donation and the owning donor's aggregate
	// update in one transaction. When newDonor is non-nil it is inserted
	// first and the donation is attached to it.
	SubmitDonation(don *Donation, newDonor *Donor) error
	GetDonation(id int64) (*Donation, error)
	UpdateStatus(id int64, status string) error
	ListDonors(limit, offset int) ([]*Donor, error)
	GetDonor(id int64) (*Donor, error)
	GetDonationsByDonor(donorID int64) ([]*Donation, error)
	ListDonationsWithDonor(limit, offset int) ([]*DonationWithDonor, error)
	CompletedTotal() (int64, error)
	CountDonors() (int64, error)
}

// PaymentMethodCounter supplies the active payment-method count for stats.
type PaymentMethodCounter interface {
	CountActive() (int64, error)
}

// Service handles donation ledger business logic
type Service struct {
	repo          Repository
	methodCounter PaymentMethodCounter
	logger        *slog.Logger
}

// NewService creates a new donation service
func NewService(repo Repository, methodCounter PaymentMethodCounter, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		methodCounter: methodCounter,
		logger:        logger,
	}
}

// SubmitDonation resolves or creates the donor, records the donation and
// bumps the donor aggregates, all inside one database transaction. The
// aggregate increments happen regardless of the donation status; the public
// stats endpoint is the completed-only view.
func (s *Service) SubmitDonation(dto SubmitDonationDTO) (*Donation, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("donation validation failed", "error", err)
		return nil, err
	}

	now := time.Now()
	don := donationFromDTO(dto, now)

	var newDonor *Donor
	if dto.DonorID != nil {
		don.DonorID = *dto.DonorID
	} else {
		newDonor = donorFromDTO(dto, now)
	}

	if err := s.repo.SubmitDonation(don, newDonor); err != nil {
		s.logger.Error("failed to create donation", "error", err, "amount", dto.Amount)
		return nil, err
	}

	s.logger.Info("donation recorded",
		"donation_id", don.ID,
		"donor_id", don.DonorID,
		"amount", don.Amount,
		"currency", don.Currency,
		"status", don.Status,
		"new_donor", newDonor != nil)

	return don, nil
}

// UpdateDonationStatus flips only the status column. Donor aggregates are
// left untouched on purpose: they reflect submissions, not settlements.
func (s *Service) UpdateDonationStatus(id int64, dto UpdateDonationStatusDTO) (*Donation, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("status update validation failed", "error", err, "donation_id", id)
		return nil, err
	}

	if err := s.repo.UpdateStatus(id, dto.Status); err != nil {
		s.logger.Error("failed to update donation status", "error", err, "donation_id", id)
		return nil, err
	}

	don, err := s.repo.GetDonation(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("donation status updated", "donation_id", id, "status", dto.Status)
	return don, nil
}

// ListDonors returns donors newest first, cached aggregates included.
func (s *Service) ListDonors(q ListQuery) ([]*Donor, error) {
	limit, offset := q.Normalize()
	donors, err := s.repo.ListDonors(limit, offset)
	if err != nil {
		s.logger.Error("failed to list donors", "error", err)
		return nil, err
	}
	return donors, nil
}

// GetDonorDetail returns the donor and its donation history, newest first.
func (s *Service) GetDonorDetail(id int64) (*DonorDetail, error) {
	donor, err := s.repo.GetDonor(id)
	if err != nil {
		s.logger.Error("failed to get donor", "error", err, "donor_id", id)
		return nil, err
	}

	donations, err := s.repo.GetDonationsByDonor(id)
	if err != nil {
		s.logger.Error("failed to get donor donations", "error", err, "donor_id", id)
		return nil, err
	}

	return &DonorDetail{Donor: donor, Donations: donations}, nil
}

// ListDonations returns all donations joined with donor name, newest first.
func (s *Service) ListDonations(q ListQuery) ([]*DonationWithDonor, error) {
	limit, offset := q.Normalize()
	donations, err := s.repo.ListDonationsWithDonor(limit, offset)
	if err != nil {
		s.logger.Error("failed to list donations", "error", err)
		return nil, err
	}
	return donations, nil
}

// GetStats computes the public aggregate figures. The total covers completed
// donations only; the average guards against a zero donor count.
func (s *Service) GetStats() (*Stats, error) {
	total, err := s.repo.CompletedTotal()
	if err != nil {
		s.logger.Error("failed to sum completed donations", "error", err)
		return nil, err
	}

	donorCount, err := s.repo.CountDonors()
	if err != nil {
		s.logger.Error("failed to count donors", "error", err)
		return nil, err
	}

	activeMethods, err := s.methodCounter.CountActive()
	if err != nil {
		s.logger.Error("failed to count active payment methods", "error", err)
		return nil, err
	}

	var average int64
	if donorCount > 0 {
		average = int64(math.Round(float64(total) / float64(donorCount)))
	}

	return &Stats{
		TotalDonated:         total,
		DonorCount:           donorCount,
		ActivePaymentMethods: activeMethods,
		AverageDonation:      average,
	}, nil
}
