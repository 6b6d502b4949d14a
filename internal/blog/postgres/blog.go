package postgres

import (
	"errors"

	"github.com/sanjaygurung/wildfolio/internal/blog"
	"gorm.io/gorm"
)

// BlogRepository implements the blog.Repository interface using GORM
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) blog.Repository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(post *blog.Post) error {
	return r.db.Create(post).Error
}

func (r *BlogRepository) GetByID(id int64) (*blog.Post, error) {
	var post blog.Post
	err := r.db.First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, blog.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) GetBySlug(slug string) (*blog.Post, error) {
	var post blog.Post
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, blog.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&blog.Post{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *BlogRepository) ListPublished(tag string, limit, offset int) ([]*blog.Post, error) {
	var posts []*blog.Post
	q := r.db.Where("is_published = ?", true)
	if tag != "" {
		// tags are a comma list; match the tag surrounded by separators
		q = q.Where("(',' || tags || ',') LIKE ?", "%,"+tag+",%")
	}
	err := q.Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) ListAll(limit, offset int) ([]*blog.Post, error) {
	var posts []*blog.Post
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) Update(id int64, updates map[string]interface{}) error {
	res := r.db.Model(&blog.Post{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(id int64) error {
	res := r.db.Delete(&blog.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

func (r *BlogRepository) IncrementViews(id int64) error {
	return r.db.Model(&blog.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
