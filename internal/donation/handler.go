package donation

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sanjaygurung/wildfolio/internal/transport"
	"github.com/sanjaygurung/wildfolio/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	SubmitDonation(dto SubmitDonationDTO) (*Donation, error)
	UpdateDonationStatus(id int64, dto UpdateDonationStatusDTO) (*Donation, error)
	ListDonors(q ListQuery) ([]*Donor, error)
	GetDonorDetail(id int64) (*DonorDetail, error)
	ListDonations(q ListQuery) ([]*DonationWithDonor, error)
	GetStats() (*Stats, error)
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

func (h *Handler) SubmitDonation(w http.ResponseWriter, r *http.Request) {
	var dto SubmitDonationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitDonation: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("SubmitDonation: validation error", "error", err)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	don, err := h.Service.SubmitDonation(dto)
	if err != nil {
		h.Logger.Error("SubmitDonation: service error", "error", err)

		switch err {
		case ErrDonorNotFound:
			h.WriteError(w, http.StatusNotFound, "donor not found")
		default:
			h.WriteError(w, http.StatusInternalServerError, "failed to create donation")
		}
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    don,
	})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("UpdateStatus: invalid donation ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid donation ID")
		return
	}

	var dto UpdateDonationStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Error("UpdateStatus: validation error", "error", err)
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	don, err := h.Service.UpdateDonationStatus(id, dto)
	if err != nil {
		h.Logger.Error("UpdateStatus: service error", "error", err, "donation_id", id)

		switch err {
		case ErrDonationNotFound:
			h.WriteError(w, http.StatusNotFound, "donation not found")
		default:
			h.WriteError(w, http.StatusInternalServerError, "failed to update donation status")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    don,
	})
}

func (h *Handler) ListDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := h.Service.ListDonors(parseListQuery(r))
	if err != nil {
		h.Logger.Error("ListDonors: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list donors")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    donors,
	})
}

func (h *Handler) GetDonor(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("GetDonor: invalid donor ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid donor ID")
		return
	}

	detail, err := h.Service.GetDonorDetail(id)
	if err != nil {
		h.Logger.Error("GetDonor: service error", "error", err, "donor_id", id)

		switch err {
		case ErrDonorNotFound:
			h.WriteError(w, http.StatusNotFound, "donor not found")
		default:
			h.WriteError(w, http.StatusInternalServerError, "failed to get donor")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    detail,
	})
}

func (h *Handler) ListDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.Service.ListDonations(parseListQuery(r))
	if err != nil {
		h.Logger.Error("ListDonations: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list donations")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    donations,
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats()
	if err != nil {
		h.Logger.Error("GetStats: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    stats,
	})
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
