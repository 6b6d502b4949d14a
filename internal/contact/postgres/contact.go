package postgres

import (
	"github.com/sanjaygurung/wildfolio/internal/contact"
	"gorm.io/gorm"
)

// ContactRepository implements the contact.Repository interface using GORM
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) contact.Repository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(msg *contact.Message) error {
	return r.db.Create(msg).Error
}

func (r *ContactRepository) List() ([]*contact.Message, error) {
	var messages []*contact.Message
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *ContactRepository) MarkRead(id int64) error {
	res := r.db.Model(&contact.Message{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contact.ErrMessageNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(id int64) error {
	res := r.db.Delete(&contact.Message{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contact.ErrMessageNotFound
	}
	return nil
}
