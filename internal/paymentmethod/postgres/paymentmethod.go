package postgres

import (
	"errors"

	"github.com/sanjaygurung/wildfolio/internal/paymentmethod"
	"gorm.io/gorm"
)

// PaymentMethodRepository implements paymentmethod.Repository using GORM
type PaymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *gorm.DB) paymentmethod.Repository {
	return &PaymentMethodRepository{db: db}
}

func (r *PaymentMethodRepository) Create(pm *paymentmethod.PaymentMethod) error {
	return r.db.Create(pm).Error
}

func (r *PaymentMethodRepository) GetByID(id int64) (*paymentmethod.PaymentMethod, error) {
	var pm paymentmethod.PaymentMethod
	err := r.db.First(&pm, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentmethod.ErrMethodNotFound
		}
		return nil, err
	}
	return &pm, nil
}

func (r *PaymentMethodRepository) ListAll() ([]*paymentmethod.PaymentMethod, error) {
	var methods []*paymentmethod.PaymentMethod
	err := r.db.Order("created_at DESC").Find(&methods).Error
	return methods, err
}

func (r *PaymentMethodRepository) ListActive() ([]*paymentmethod.PaymentMethod, error) {
	var methods []*paymentmethod.PaymentMethod
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&methods).Error
	return methods, err
}

func (r *PaymentMethodRepository) Update(id int64, updates map[string]interface{}) error {
	res := r.db.Model(&paymentmethod.PaymentMethod{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return paymentmethod.ErrMethodNotFound
	}
	return nil
}

func (r *PaymentMethodRepository) Delete(id int64) error {
	res := r.db.Delete(&paymentmethod.PaymentMethod{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return paymentmethod.ErrMethodNotFound
	}
	return nil
}

func (r *PaymentMethodRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&paymentmethod.PaymentMethod{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
