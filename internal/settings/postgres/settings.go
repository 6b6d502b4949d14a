package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sanjaygurung/wildfolio/internal/settings"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the first (and only) settings row.
func (r *SettingsRepository) Get() (*settings.SiteSettings, error) {
	var s settings.SiteSettings
	if err := r.db.Order("id ASC").First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, settings.ErrSettingsNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Update(fields map[string]interface{}) (*settings.SiteSettings, error) {
	current, err := r.Get()
	if err != nil {
		return nil, err
	}

	res := r.db.Model(&settings.SiteSettings{}).
		Where("id = ?", current.ID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}

	return r.Get()
}
