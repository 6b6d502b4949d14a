package paymentmethod

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
	Create(dto CreatePaymentMethodDTO) (*PaymentMethod, error)
	ListPublic() ([]*PaymentMethod, error)
	ListAdmin() ([]*PaymentMethod, error)
	Update(id int64, dto UpdatePaymentMethodDTO) (*PaymentMethod, error)
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

func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	methods, err := h.Service.ListPublic()
	if err != nil {
		h.Logger.Error("ListPublic: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list payment methods")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    methods,
	})
}

func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	methods, err := h.Service.ListAdmin()
	if err != nil {
		h.Logger.Error("ListAdmin: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list payment methods")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    methods,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreatePaymentMethodDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("Create: validation error", "error", err)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	pm, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("Create: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to create payment method")
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    pm,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := methodID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payment method ID")
		return
	}

	var dto UpdatePaymentMethodDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Update: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pm, err := h.Service.Update(id, dto)
	if err != nil {
		h.Logger.Error("Update: service error", "error", err, "id", id)

		if errors.Is(err, ErrMethodNotFound) {
			h.WriteError(w, http.StatusNotFound, "payment method not found")
			return
		}
		// validation errors surface with their own message
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    pm,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := methodID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payment method ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("Delete: service error", "error", err, "id", id)

		if errors.Is(err, ErrMethodNotFound) {
			h.WriteError(w, http.StatusNotFound, "payment method not found")
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "failed to delete payment method")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func methodID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
