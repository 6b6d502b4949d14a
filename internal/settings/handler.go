package settings

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sanjaygurung/wildfolio/internal/transport"
	"github.com/sanjaygurung/wildfolio/pkg/logger"
)

type ServiceAPI interface {
	GetSettings() (*SiteSettings, error)
	UpdateSettings(dto UpdateSettingsDTO) (*SiteSettings, error)
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

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Service.GetSettings()
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			h.WriteError(w, http.StatusNotFound, "site settings not configured")
			return
		}
		h.Logger.Error("Get: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    s,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Update: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateSettings(dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrSettingsNotFound):
			h.WriteError(w, http.StatusNotFound, "site settings not configured")
		default:
			h.Logger.Error("Update: service error", "error", err)
			h.WriteError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    updated,
	})
}
