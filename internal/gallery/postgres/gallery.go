package postgres

import (
	"errors"

	"github.com/sanjaygurung/wildfolio/internal/gallery"
	"gorm.io/gorm"
)

// GalleryRepository implements the gallery.Repository interface using GORM
type GalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *gorm.DB) gallery.Repository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Create(img *gallery.Image) error {
	return r.db.Create(img).Error
}

func (r *GalleryRepository) GetByID(id int64) (*gallery.Image, error) {
	var img gallery.Image
	err := r.db.First(&img, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gallery.ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *GalleryRepository) List(species string) ([]*gallery.Image, error) {
	var images []*gallery.Image
	q := r.db.Order("sort_order ASC, created_at DESC")
	if species != "" {
		q = q.Where("species = ?", species)
	}
	err := q.Find(&images).Error
	return images, err
}

func (r *GalleryRepository) Update(id int64, updates map[string]interface{}) error {
	res := r.db.Model(&gallery.Image{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gallery.ErrImageNotFound
	}
	return nil
}

func (r *GalleryRepository) Delete(id int64) error {
	res := r.db.Delete(&gallery.Image{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gallery.ErrImageNotFound
	}
	return nil
}
