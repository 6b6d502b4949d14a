package settings

import (
	"log/slog"
	"time"
)

type Repository interface {
	Get() (*SiteSettings, error)
	Update(fields map[string]interface{}) (*SiteSettings, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetSettings() (*SiteSettings, error) {
	return s.repo.Get()
}

// UpdateSettings applies only the fields present in the DTO. The settings
// row is seeded at install time, so a missing row is surfaced as not found
// rather than created here.
func (s *Service) UpdateSettings(dto UpdateSettingsDTO) (*SiteSettings, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("settings validation failed", "error", err)
		return nil, err
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if dto.SiteTitle != nil {
		fields["site_title"] = *dto.SiteTitle
	}
	if dto.Tagline != nil {
		fields["tagline"] = *dto.Tagline
	}
	if dto.AboutText != nil {
		fields["about_text"] = *dto.AboutText
	}
	if dto.SocialLinks != nil {
		fields["social_links"] = dto.SocialLinks
	}
	if dto.HeroImageURL != nil {
		fields["hero_image_url"] = *dto.HeroImageURL
	}

	updated, err := s.repo.Update(fields)
	if err != nil {
		s.logger.Error("failed to update settings", "error", err)
		return nil, err
	}
	s.logger.Info("site settings updated")
	return updated, nil
}
