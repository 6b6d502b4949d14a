package contact

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
	Submit(dto SubmitMessageDTO) (*Message, error)
	List() ([]*Message, error)
	MarkRead(id int64) error
	Delete(id int64) error
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
	var dto SubmitMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Submit: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.Service.Submit(dto)
	if err != nil {
		h.Logger.Error("Submit: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to submit message")
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    msg,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.List()
	if err != nil {
		h.Logger.Error("List: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list messages")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    messages,
	})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid message ID")
		return
	}

	if err := h.Service.MarkRead(id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			h.WriteError(w, http.StatusNotFound, "message not found")
			return
		}
		h.Logger.Error("MarkRead: service error", "error", err, "message_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to mark message read")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := messageID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid message ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			h.WriteError(w, http.StatusNotFound, "message not found")
			return
		}
		h.Logger.Error("Delete: service error", "error", err, "message_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete message")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func messageID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
