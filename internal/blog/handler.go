package blog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sanjaygurung/wildfolio/internal/transport"
	"github.com/sanjaygurung/wildfolio/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreatePost(dto CreatePostDTO) (*Post, error)
	GetPublishedBySlug(slug string) (*Post, error)
	ListPublished(q ListQuery) ([]*Post, error)
	ListAll(q ListQuery) ([]*Post, error)
	UpdatePost(id int64, dto UpdatePostDTO) (*Post, error)
	DeletePost(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) ListPublished(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r)
	q.Tag = r.URL.Query().Get("tag")

	posts, err := h.Service.ListPublished(q)
	if err != nil {
		h.Logger.Error("ListPublished: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    posts,
	})
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.Service.GetPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			h.WriteError(w, http.StatusNotFound, "post not found")
			return
		}
		h.Logger.Error("GetBySlug: service error", "error", err, "slug", slug)
		h.WriteError(w, http.StatusInternalServerError, "failed to get post")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    post,
	})
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.ListAll(parseListQuery(r))
	if err != nil {
		h.Logger.Error("ListAll: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    posts,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreatePostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.Service.CreatePost(dto)
	if err != nil {
		h.Logger.Error("Create: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    post,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid post ID")
		return
	}

	var dto UpdatePostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Update: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.Service.UpdatePost(id, dto)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			h.WriteError(w, http.StatusNotFound, "post not found")
			return
		}
		h.Logger.Error("Update: service error", "error", err, "post_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to update post")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    post,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid post ID")
		return
	}

	if err := h.Service.DeletePost(id); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			h.WriteError(w, http.StatusNotFound, "post not found")
			return
		}
		h.Logger.Error("Delete: service error", "error", err, "post_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func postID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func parseListQuery(r *http.Request) ListQuery {
	var q ListQuery
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			q.Limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			q.Offset = o
		}
	}
	return q
}
