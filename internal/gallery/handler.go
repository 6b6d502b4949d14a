package gallery

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
	AddImage(dto CreateImageDTO) (*Image, error)
	ListImages(species string) ([]*Image, error)
	UpdateImage(id int64, dto UpdateImageDTO) (*Image, error)
	DeleteImage(id int64) error
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.Service.ListImages(r.URL.Query().Get("species"))
	if err != nil {
		h.Logger.Error("List: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list images")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    images,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateImageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, err := h.Service.AddImage(dto)
	if err != nil {
		h.Logger.Error("Create: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to create image")
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    img,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := imageID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid image ID")
		return
	}

	var dto UpdateImageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Update: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, err := h.Service.UpdateImage(id, dto)
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			h.WriteError(w, http.StatusNotFound, "image not found")
			return
		}
		h.Logger.Error("Update: service error", "error", err, "image_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to update image")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    img,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := imageID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid image ID")
		return
	}

	if err := h.Service.DeleteImage(id); err != nil {
		if errors.Is(err, ErrImageNotFound) {
			h.WriteError(w, http.StatusNotFound, "image not found")
			return
		}
		h.Logger.Error("Delete: service error", "error", err, "image_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete image")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func imageID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
