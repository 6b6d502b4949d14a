package blog

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Post is a blog entry. Slug and read time are derived at creation: the slug
// from the title (uniquified with a numeric suffix on collision), the read
// time from a 200 words-per-minute estimate.
type Post struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content" gorm:"not null"`
	CoverImageURL *string   `json:"cover_image_url,omitempty" gorm:"column:cover_image_url"`
	Tags          string    `json:"tags"`
	IsPublished   bool      `json:"is_published" gorm:"column:is_published;default:false"`
	ReadMinutes   int       `json:"read_minutes" gorm:"column:read_minutes;default:1"`
	ViewCount     int64     `json:"view_count" gorm:"column:view_count;default:0"`
	PublishedAt   *time.Time `json:"published_at,omitempty" gorm:"column:published_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "blog_posts"
}

// TagList splits the stored comma list into trimmed tags.
func (p *Post) TagList() []string {
	if p.Tags == "" {
		return nil
	}
	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, t := range parts {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title and collapses everything that is not a
// letter or digit into single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EstimateReadMinutes assumes 200 words per minute, one minute minimum.
func EstimateReadMinutes(content string) int {
	words := len(strings.Fields(content))
	minutes := words / 200
	if words%200 != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Domain errors
var (
	ErrPostNotFound = errors.New("post not found")
)
