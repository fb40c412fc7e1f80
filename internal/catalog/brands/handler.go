package brands

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
		h.logger.Error("list brands", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if result == nil {
		result = []Brand{}
	}
	httpx.JSON(w, http.StatusOK, result)
}

type brandForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var form brandForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	created, err := h.service.Create(r.Context(), Brand{
		Name:        form.Name,
		Description: form.Description,
		Logo:        form.Logo,
	})
	if err != nil {
		h.logger.Warn("create brand", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}
