package categories

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
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
	r.Get("/{slug}", h.get)
	r.With(h.admin).Post("/", h.create)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list categories", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if cats == nil {
		cats = []Category{}
	}
	httpx.JSON(w, http.StatusOK, cats)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("get category", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, category)
}

type categoryForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var form categoryForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	created, err := h.service.Create(r.Context(), Category{
		Name:        form.Name,
		Description: form.Description,
		Slug:        form.Slug,
		Image:       form.Image,
	})
	if err != nil {
		h.logger.Warn("create category", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}
