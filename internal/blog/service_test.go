package blog_test

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sanjaygurung/wildfolio/internal/blog"
)

func TestBlog(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Blog Suite")
}

type mockBlogRepository struct {
	posts     map[int64]*blog.Post
	order     []int64
	nextID    int64
	viewsErr  error
	viewBumps int
}

func newMockBlogRepository() *mockBlogRepository {
	return &mockBlogRepository{
		posts:  make(map[int64]*blog.Post),
		nextID: 1,
	}
}

func (m *mockBlogRepository) Create(post *blog.Post) error {
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	m.order = append(m.order, post.ID)
	return nil
}

func (m *mockBlogRepository) GetByID(id int64) (*blog.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, blog.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockBlogRepository) GetBySlug(slug string) (*blog.Post, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			// copies, like a real row scan; later writes do not
			// retroactively change an already fetched post
			cp := *p
			return &cp, nil
		}
	}
	return nil, blog.ErrPostNotFound
}

func (m *mockBlogRepository) SlugExists(slug string) (bool, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockBlogRepository) ListPublished(tag string, limit, offset int) ([]*blog.Post, error) {
	var out []*blog.Post
	for _, id := range m.order {
		p := m.posts[id]
		if !p.IsPublished {
			continue
		}
		if tag != "" && !containsTag(p, tag) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func containsTag(p *blog.Post, tag string) bool {
	for _, t := range p.TagList() {
		if t == tag {
			return true
		}
	}
	return false
}

func (m *mockBlogRepository) ListAll(limit, offset int) ([]*blog.Post, error) {
	var out []*blog.Post
	for _, id := range m.order {
		out = append(out, m.posts[id])
	}
	return out, nil
}

func (m *mockBlogRepository) Update(id int64, updates map[string]interface{}) error {
	p, ok := m.posts[id]
	if !ok {
		return blog.ErrPostNotFound
	}
	if v, ok := updates["title"]; ok {
		p.Title = v.(string)
	}
	if v, ok := updates["content"]; ok {
		p.Content = v.(string)
	}
	if v, ok := updates["read_minutes"]; ok {
		p.ReadMinutes = v.(int)
	}
	if v, ok := updates["is_published"]; ok {
		p.IsPublished = v.(bool)
	}
	if v, ok := updates["published_at"]; ok {
		t := v.(time.Time)
		p.PublishedAt = &t
	}
	if v, ok := updates["tags"]; ok {
		p.Tags = v.(string)
	}
	return nil
}

func (m *mockBlogRepository) Delete(id int64) error {
	if _, ok := m.posts[id]; !ok {
		return blog.ErrPostNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockBlogRepository) IncrementViews(id int64) error {
	if m.viewsErr != nil {
		return m.viewsErr
	}
	if p, ok := m.posts[id]; ok {
		p.ViewCount++
		m.viewBumps++
	}
	return nil
}

var _ = Describe("Slugify", func() {
	It("lowercases and hyphenates", func() {
		Expect(blog.Slugify("Tracking Snow Leopards in Dolpo")).
			To(Equal("tracking-snow-leopards-in-dolpo"))
	})

	It("collapses punctuation runs into single hyphens", func() {
		Expect(blog.Slugify("Monsoon, Mud & Macro!")).To(Equal("monsoon-mud-macro"))
	})

	It("trims leading and trailing hyphens", func() {
		Expect(blog.Slugify("...Herons...")).To(Equal("herons"))
	})
})

var _ = Describe("EstimateReadMinutes", func() {
	It("gives one minute minimum", func() {
		Expect(blog.EstimateReadMinutes("short")).To(Equal(1))
	})

	It("rounds up at 200 words per minute", func() {
		content := strings.Repeat("word ", 201)
		Expect(blog.EstimateReadMinutes(content)).To(Equal(2))
	})

	It("gives exactly one minute for 200 words", func() {
		content := strings.Repeat("word ", 200)
		Expect(blog.EstimateReadMinutes(content)).To(Equal(1))
	})
})

var _ = Describe("BlogService", func() {
	var (
		service  *blog.Service
		mockRepo *mockBlogRepository
	)

	BeforeEach(func() {
		mockRepo = newMockBlogRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = blog.NewService(mockRepo, logger)
	})

	Describe("CreatePost", func() {
		It("derives slug and read time", func() {
			post, err := service.CreatePost(blog.CreatePostDTO{
				Title:   "Tracking Snow Leopards",
				Content: strings.Repeat("word ", 450),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(post.Slug).To(Equal("tracking-snow-leopards"))
			Expect(post.ReadMinutes).To(Equal(3))
			Expect(post.IsPublished).To(BeFalse())
			Expect(post.PublishedAt).To(BeNil())
		})

		It("uniquifies colliding slugs with numeric suffixes", func() {
			for i := 0; i < 3; i++ {
				_, err := service.CreatePost(blog.CreatePostDTO{
					Title:   "Field Notes",
					Content: "note",
				})
				Expect(err).NotTo(HaveOccurred())
			}

			slugs := make([]string, 0, 3)
			for _, p := range mockRepo.posts {
				slugs = append(slugs, p.Slug)
			}
			Expect(slugs).To(ConsistOf("field-notes", "field-notes-2", "field-notes-3"))
		})

		It("stamps published_at when created already published", func() {
			post, err := service.CreatePost(blog.CreatePostDTO{
				Title:       "Launch Day",
				Content:     "we are live",
				IsPublished: true,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(post.PublishedAt).NotTo(BeNil())
		})

		It("rejects a post without content", func() {
			_, err := service.CreatePost(blog.CreatePostDTO{Title: "Empty"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetPublishedBySlug", func() {
		It("returns the post and counts the view", func() {
			created, err := service.CreatePost(blog.CreatePostDTO{
				Title:       "Herons at Dawn",
				Content:     "mist",
				IsPublished: true,
			})
			Expect(err).NotTo(HaveOccurred())

			post, err := service.GetPublishedBySlug(created.Slug)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.ViewCount).To(Equal(int64(1)))
			Expect(mockRepo.viewBumps).To(Equal(1))
		})

		It("accumulates views across reads", func() {
			created, err := service.CreatePost(blog.CreatePostDTO{
				Title:       "Repeat Visitors",
				Content:     "ridge",
				IsPublished: true,
			})
			Expect(err).NotTo(HaveOccurred())

			first, err := service.GetPublishedBySlug(created.Slug)
			Expect(err).NotTo(HaveOccurred())
			second, err := service.GetPublishedBySlug(created.Slug)
			Expect(err).NotTo(HaveOccurred())

			Expect(first.ViewCount).To(Equal(int64(1)))
			Expect(second.ViewCount).To(Equal(int64(2)))
			Expect(mockRepo.viewBumps).To(Equal(2))
		})

		It("hides drafts", func() {
			created, err := service.CreatePost(blog.CreatePostDTO{
				Title:   "Draft Post",
				Content: "wip",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.GetPublishedBySlug(created.Slug)
			Expect(err).To(Equal(blog.ErrPostNotFound))
		})

		It("still returns the post when the view bump fails", func() {
			created, err := service.CreatePost(blog.CreatePostDTO{
				Title:       "Resilient Read",
				Content:     "content",
				IsPublished: true,
			})
			Expect(err).NotTo(HaveOccurred())

			mockRepo.viewsErr = blog.ErrPostNotFound
			post, err := service.GetPublishedBySlug(created.Slug)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.ViewCount).To(BeZero())
		})
	})

	Describe("ListPublished", func() {
		BeforeEach(func() {
			_, err := service.CreatePost(blog.CreatePostDTO{
				Title: "Birds", Content: "x", Tags: "birds, himalaya", IsPublished: true,
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.CreatePost(blog.CreatePostDTO{
				Title: "Leopards", Content: "x", Tags: "cats", IsPublished: true,
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.CreatePost(blog.CreatePostDTO{
				Title: "Draft", Content: "x", Tags: "birds",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns published posts only", func() {
			posts, err := service.ListPublished(blog.ListQuery{})
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(2))
		})

		It("filters by tag", func() {
			posts, err := service.ListPublished(blog.ListQuery{Tag: "birds"})
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(1))
			Expect(posts[0].Title).To(Equal("Birds"))
		})
	})

	Describe("UpdatePost", func() {
		It("keeps the slug stable and recomputes read time on content change", func() {
			created, err := service.CreatePost(blog.CreatePostDTO{
				Title:   "Original Title",
				Content: "short",
			})
			Expect(err).NotTo(HaveOccurred())

			newTitle := "Completely Different Title"
			newContent := strings.Repeat("word ", 401)
			post, err := service.UpdatePost(created.ID, blog.UpdatePostDTO{
				Title:   &newTitle,
				Content: &newContent,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(post.Title).To(Equal(newTitle))
			Expect(post.Slug).To(Equal("original-title"))
			Expect(post.ReadMinutes).To(Equal(3))
		})

		It("stamps published_at on first publish only", func() {
			created, err := service.CreatePost(blog.CreatePostDTO{
				Title:   "Later Publish",
				Content: "x",
			})
			Expect(err).NotTo(HaveOccurred())

			published := true
			post, err := service.UpdatePost(created.ID, blog.UpdatePostDTO{IsPublished: &published})
			Expect(err).NotTo(HaveOccurred())
			Expect(post.PublishedAt).NotTo(BeNil())

			firstStamp := *post.PublishedAt

			unpublished := false
			_, err = service.UpdatePost(created.ID, blog.UpdatePostDTO{IsPublished: &unpublished})
			Expect(err).NotTo(HaveOccurred())

			post, err = service.UpdatePost(created.ID, blog.UpdatePostDTO{IsPublished: &published})
			Expect(err).NotTo(HaveOccurred())
			Expect(post.PublishedAt.Equal(firstStamp)).To(BeTrue())
		})

		It("returns not found for an unknown post", func() {
			title := "x"
			_, err := service.UpdatePost(404, blog.UpdatePostDTO{Title: &title})
			Expect(err).To(Equal(blog.ErrPostNotFound))
		})
	})
})
