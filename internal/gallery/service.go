package gallery

import (
	"log/slog"
	"time"
)

// Repository defines the data access methods for gallery images.
type Repository interface {
	Create(img *Image) error
	GetByID(id int64) (*Image, error)
	List(species string) ([]*Image, error)
	Update(id int64, updates map[string]interface{}) error
	Delete(id int64) error
}

// Service handles gallery business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new gallery service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) AddImage(dto CreateImageDTO) (*Image, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("image validation failed", "error", err)
		return nil, err
	}

	now := time.Now()
	img := &Image{
		Title:     dto.Title,
		Caption:   dto.Caption,
		ImageURL:  dto.ImageURL,
		ThumbURL:  dto.ThumbURL,
		Species:   dto.Species,
		Location:  dto.Location,
		Featured:  dto.Featured,
		SortOrder: dto.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(img); err != nil {
		s.logger.Error("failed to create image", "error", err, "title", dto.Title)
		return nil, err
	}

	s.logger.Info("gallery image added", "image_id", img.ID, "title", img.Title)
	return img, nil
}

// ListImages returns images ordered for display, optionally filtered by
// species label.
func (s *Service) ListImages(species string) ([]*Image, error) {
	images, err := s.repo.List(species)
	if err != nil {
		s.logger.Error("failed to list images", "error", err)
		return nil, err
	}
	return images, nil
}

func (s *Service) UpdateImage(id int64, dto UpdateImageDTO) (*Image, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("image update validation failed", "error", err, "image_id", id)
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Caption != nil {
		updates["caption"] = *dto.Caption
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if dto.ThumbURL != nil {
		updates["thumb_url"] = *dto.ThumbURL
	}
	if dto.Species != nil {
		updates["species"] = *dto.Species
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}
	if dto.Featured != nil {
		updates["featured"] = *dto.Featured
	}
	if dto.SortOrder != nil {
		updates["sort_order"] = *dto.SortOrder
	}

	if err := s.repo.Update(id, updates); err != nil {
		s.logger.Error("failed to update image", "error", err, "image_id", id)
		return nil, err
	}

	s.logger.Info("gallery image updated", "image_id", id)
	return s.repo.GetByID(id)
}

func (s *Service) DeleteImage(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete image", "error", err, "image_id", id)
		return err
	}
	s.logger.Info("gallery image deleted", "image_id", id)
	return nil
}
