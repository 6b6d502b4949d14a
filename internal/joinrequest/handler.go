package joinrequest

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
	Submit(dto SubmitDTO) (*JoinRequest, error)
	List() ([]*JoinRequest, error)
	UpdateStatus(id int64, dto UpdateStatusDTO) (*JoinRequest, error)
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

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Submit: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := h.Service.Submit(dto)
	if err != nil {
		h.Logger.Error("Submit: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to submit join request")
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    req,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.List()
	if err != nil {
		h.Logger.Error("List: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list join requests")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    requests,
	})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request ID")
		return
	}

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := h.Service.UpdateStatus(id, dto)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			h.WriteError(w, http.StatusNotFound, "join request not found")
			return
		}
		h.Logger.Error("UpdateStatus: service error", "error", err, "request_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to update join request")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    req,
	})
}
