package gallery

import (
	"errors"
	"time"
)

// Image is a gallery entry. Thumbnails are produced by the upload pipeline
// outside this service; only the URLs are stored here.
type Image struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image_url" gorm:"column:image_url;not null"`
	ThumbURL  *string   `json:"thumb_url,omitempty" gorm:"column:thumb_url"`
	Species   string    `json:"species"`
	Location  string    `json:"location"`
	Featured  bool      `json:"featured" gorm:"default:false"`
	SortOrder int       `json:"sort_order" gorm:"column:sort_order;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Image) TableName() string {
	return "gallery_images"
}

// CreateImageDTO is the admin request for adding a gallery image.
type CreateImageDTO struct {
	Title     string  `json:"title"`
	Caption   string  `json:"caption,omitempty"`
	ImageURL  string  `json:"image_url"`
	ThumbURL  *string `json:"thumb_url,omitempty"`
	Species   string  `json:"species,omitempty"`
	Location  string  `json:"location,omitempty"`
	Featured  bool    `json:"featured,omitempty"`
	SortOrder int     `json:"sort_order,omitempty"`
}

func (dto CreateImageDTO) Validate() error {
	if dto.Title == "" {
		return errors.New("title is required")
	}
	if dto.ImageURL == "" {
		return errors.New("image_url is required")
	}
	return nil
}

// UpdateImageDTO carries partial replacements for an existing image.
type UpdateImageDTO struct {
	Title     *string `json:"title,omitempty"`
	Caption   *string `json:"caption,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
	ThumbURL  *string `json:"thumb_url,omitempty"`
	Species   *string `json:"species,omitempty"`
	Location  *string `json:"location,omitempty"`
	Featured  *bool   `json:"featured,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

func (dto UpdateImageDTO) Validate() error {
	if dto.Title != nil && *dto.Title == "" {
		return errors.New("title cannot be empty")
	}
	if dto.ImageURL != nil && *dto.ImageURL == "" {
		return errors.New("image_url cannot be empty")
	}
	return nil
}

// Domain errors
var (
	ErrImageNotFound = errors.New("image not found")
)
