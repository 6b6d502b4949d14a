package settings

import (
	"encoding/json"
	"errors"
	"time"
)

// SiteSettings is the single-row site configuration edited from the admin
// panel: titles, about text and social links rendered by the front end.
type SiteSettings struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	SiteTitle    string          `json:"site_title" gorm:"column:site_title;not null"`
	Tagline      string          `json:"tagline"`
	AboutText    string          `json:"about_text" gorm:"column:about_text"`
	SocialLinks  json.RawMessage `json:"social_links" gorm:"column:social_links;type:jsonb"`
	HeroImageURL *string         `json:"hero_image_url,omitempty" gorm:"column:hero_image_url"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

// UpdateSettingsDTO carries partial replacements for the settings row.
type UpdateSettingsDTO struct {
	SiteTitle    *string         `json:"site_title,omitempty"`
	Tagline      *string         `json:"tagline,omitempty"`
	AboutText    *string         `json:"about_text,omitempty"`
	SocialLinks  json.RawMessage `json:"social_links,omitempty"`
	HeroImageURL *string         `json:"hero_image_url,omitempty"`
}

func (dto UpdateSettingsDTO) Validate() error {
	if dto.SiteTitle != nil && *dto.SiteTitle == "" {
		return errors.New("site_title cannot be empty")
	}
	if dto.SocialLinks != nil {
		var blob map[string]interface{}
		if err := json.Unmarshal(dto.SocialLinks, &blob); err != nil {
			return errors.New("social_links must be a JSON object")
		}
	}
	return nil
}

// Domain errors
var (
	ErrSettingsNotFound = errors.New("site settings not found")
)
