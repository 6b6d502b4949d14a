package blog

import "errors"

// CreatePostDTO is the admin request for creating a blog post.
type CreatePostDTO struct {
	Title         string  `json:"title"`
	Excerpt       string  `json:"excerpt,omitempty"`
	Content       string  `json:"content"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	Tags          string  `json:"tags,omitempty"`
	IsPublished   bool    `json:"is_published,omitempty"`
}

func (dto CreatePostDTO) Validate() error {
	if dto.Title == "" {
		return errors.New("title is required")
	}
	if dto.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

// UpdatePostDTO carries partial replacements for an existing post. The slug
// never changes after creation so published URLs stay stable.
type UpdatePostDTO struct {
	Title         *string `json:"title,omitempty"`
	Excerpt       *string `json:"excerpt,omitempty"`
	Content       *string `json:"content,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	Tags          *string `json:"tags,omitempty"`
	IsPublished   *bool   `json:"is_published,omitempty"`
}

func (dto UpdatePostDTO) Validate() error {
	if dto.Title != nil && *dto.Title == "" {
		return errors.New("title cannot be empty")
	}
	if dto.Content != nil && *dto.Content == "" {
		return errors.New("content cannot be empty")
	}
	return nil
}

// ListQuery carries the public list filters.
type ListQuery struct {
	Tag    string
	Limit  int
	Offset int
}

const defaultListLimit = 20

func (q ListQuery) Normalize() (limit, offset int) {
	limit = q.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	offset = q.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
