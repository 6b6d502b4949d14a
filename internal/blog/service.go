package blog

import (
	"fmt"
	"log/slog"
	"time"
)

// Repository defines the data access methods for blog posts.
type Repository interface {
	Create(post *Post) error
	GetByID(id int64) (*Post, error)
	GetBySlug(slug string) (*Post, error)
	SlugExists(slug string) (bool, error)
	ListPublished(tag string, limit, offset int) ([]*Post, error)
	ListAll(limit, offset int) ([]*Post, error)
	Update(id int64, updates map[string]interface{}) error
	Delete(id int64) error
	IncrementViews(id int64) error
}

// Service handles blog business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new blog service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreatePost derives slug and read time, then stores the post.
func (s *Service) CreatePost(dto CreatePostDTO) (*Post, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("post validation failed", "error", err)
		return nil, err
	}

	slug, err := s.uniqueSlug(Slugify(dto.Title))
	if err != nil {
		s.logger.Error("failed to derive slug", "error", err, "title", dto.Title)
		return nil, err
	}

	now := time.Now()
	post := &Post{
		Title:         dto.Title,
		Slug:          slug,
		Excerpt:       dto.Excerpt,
		Content:       dto.Content,
		CoverImageURL: dto.CoverImageURL,
		Tags:          dto.Tags,
		IsPublished:   dto.IsPublished,
		ReadMinutes:   EstimateReadMinutes(dto.Content),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if dto.IsPublished {
		post.PublishedAt = &now
	}

	if err := s.repo.Create(post); err != nil {
		s.logger.Error("failed to create post", "error", err, "slug", slug)
		return nil, err
	}

	s.logger.Info("post created", "post_id", post.ID, "slug", slug, "published", post.IsPublished)
	return post, nil
}

// uniqueSlug appends -2, -3, ... until the slug is free.
func (s *Service) uniqueSlug(base string) (string, error) {
	if base == "" {
		base = "post"
	}
	slug := base
	for i := 2; ; i++ {
		exists, err := s.repo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// GetPublishedBySlug returns a published post and counts the view.
func (s *Service) GetPublishedBySlug(slug string) (*Post, error) {
	post, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, ErrPostNotFound
	}

	if err := s.repo.IncrementViews(post.ID); err != nil {
		// a lost view count is not worth failing the read
		s.logger.Warn("failed to increment view count", "error", err, "post_id", post.ID)
	} else {
		post.ViewCount++
	}

	return post, nil
}

// ListPublished returns published posts, optionally filtered by tag.
func (s *Service) ListPublished(q ListQuery) ([]*Post, error) {
	limit, offset := q.Normalize()
	posts, err := s.repo.ListPublished(q.Tag, limit, offset)
	if err != nil {
		s.logger.Error("failed to list published posts", "error", err)
		return nil, err
	}
	return posts, nil
}

// ListAll returns every post for the admin panel, drafts included.
func (s *Service) ListAll(q ListQuery) ([]*Post, error) {
	limit, offset := q.Normalize()
	posts, err := s.repo.ListAll(limit, offset)
	if err != nil {
		s.logger.Error("failed to list posts", "error", err)
		return nil, err
	}
	return posts, nil
}

// UpdatePost applies a partial update. Content changes recompute read time;
// publishing for the first time stamps published_at.
func (s *Service) UpdatePost(id int64, dto UpdatePostDTO) (*Post, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("post update validation failed", "error", err, "post_id", id)
		return nil, err
	}

	current, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
		updates["read_minutes"] = EstimateReadMinutes(*dto.Content)
	}
	if dto.CoverImageURL != nil {
		updates["cover_image_url"] = *dto.CoverImageURL
	}
	if dto.Tags != nil {
		updates["tags"] = *dto.Tags
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
		if *dto.IsPublished && current.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	if err := s.repo.Update(id, updates); err != nil {
		s.logger.Error("failed to update post", "error", err, "post_id", id)
		return nil, err
	}

	s.logger.Info("post updated", "post_id", id)
	return s.repo.GetByID(id)
}

// DeletePost hard-deletes a post.
func (s *Service) DeletePost(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete post", "error", err, "post_id", id)
		return err
	}
	s.logger.Info("post deleted", "post_id", id)
	return nil
}
