package locations

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vapemart/vapemart/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
	admin   func(http.Handler) http.Handler
}

func NewHandler(logger *slog.Logger, service *Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{logger: logger, service: service, admin: admin}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.With(h.admin).Post("/", h.create)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list locations", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if result == nil {
		result = []Location{}
	}
	httpx.JSON(w, http.StatusOK, result)
}

type locationForm struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	WorkingHours string `json:"workingHours"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var form locationForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	created, err := h.service.Create(r.Context(), Location{
		Name:         form.Name,
		Address:      form.Address,
		Phone:        form.Phone,
		WorkingHours: form.WorkingHours,
	})
	if err != nil {
		h.logger.Warn("create location", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}
