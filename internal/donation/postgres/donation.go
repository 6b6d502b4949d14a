package postgres

import (
	"errors"
	"time"

	"github.com/sanjaygurung/wildfolio/internal/donation"
	"gorm.io/gorm"
)

// DonationRepository implements the donation.Repository interface using GORM
type DonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) donation.Repository {
	return &DonationRepository{db: db}
}

// SubmitDonation runs the whole write path in one transaction: optional
// donor insert, donation insert, donor aggregate bump. The increments are
// evaluated by the database (gorm.Expr), so concurrent submissions against
// the same donor serialize on the row and no update is lost.
func (r *DonationRepository) SubmitDonation(don *donation.Donation, newDonor *donation.Donor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if newDonor != nil {
			if err := tx.Create(newDonor).Error; err != nil {
				return err
			}
			don.DonorID = newDonor.ID
		}

		if err := tx.Create(don).Error; err != nil {
			return err
		}

		res := tx.Model(&donation.Donor{}).
			Where("id = ?", don.DonorID).
			Updates(map[string]interface{}{
				"total_donated":  gorm.Expr("total_donated + ?", don.Amount),
				"donation_count": gorm.Expr("donation_count + 1"),
				"last_donation":  don.DonationDate,
				"updated_at":     time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return donation.ErrDonorNotFound
		}

		return nil
	})
}

// GetDonation retrieves a donation by its ID
func (r *DonationRepository) GetDonation(id int64) (*donation.Donation, error) {
	var don donation.Donation
	err := r.db.First(&don, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, donation.ErrDonationNotFound
		}
		return nil, err
	}
	return &don, nil
}

// UpdateStatus updates only the status column of a donation
func (r *DonationRepository) UpdateStatus(id int64, status string) error {
	res := r.db.Model(&donation.Donation{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return donation.ErrDonationNotFound
	}
	return nil
}

// ListDonors returns donors ordered by creation time descending
func (r *DonationRepository) ListDonors(limit, offset int) ([]*donation.Donor, error) {
	var donors []*donation.Donor
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&donors).Error
	return donors, err
}

// GetDonor retrieves a donor by its ID
func (r *DonationRepository) GetDonor(id int64) (*donation.Donor, error) {
	var donor donation.Donor
	err := r.db.First(&donor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, donation.ErrDonorNotFound
		}
		return nil, err
	}
	return &donor, nil
}

// GetDonationsByDonor returns a donor's donations, newest first
func (r *DonationRepository) GetDonationsByDonor(donorID int64) ([]*donation.Donation, error) {
	var donations []*donation.Donation
	err := r.db.Where("donor_id = ?", donorID).
		Order("donation_date DESC").
		Find(&donations).Error
	return donations, err
}

// ListDonationsWithDonor returns donations joined with donor name, newest first
func (r *DonationRepository) ListDonationsWithDonor(limit, offset int) ([]*donation.DonationWithDonor, error) {
	var rows []*donation.DonationWithDonor
	err := r.db.Table("donations").
		Select("donations.*, donors.name AS donor_name").
		Joins("LEFT JOIN donors ON donors.id = donations.donor_id").
		Order("donations.donation_date DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

// CompletedTotal sums the amounts of completed donations
func (r *DonationRepository) CompletedTotal() (int64, error) {
	var total int64
	err := r.db.Model(&donation.Donation{}).
		Where("status = ?", donation.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// CountDonors counts all donor rows
func (r *DonationRepository) CountDonors() (int64, error) {
	var count int64
	err := r.db.Model(&donation.Donor{}).Count(&count).Error
	return count, err
}
