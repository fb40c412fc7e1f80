package tags

import (
	"log/slog"
	"net/http"
	"strconv"

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
	r.With(h.admin).Put("/{id}/products/{productID}", h.attach)
	r.With(h.admin).Delete("/{id}/products/{productID}", h.detach)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list tags", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if result == nil {
		result = []Tag{}
	}
	httpx.JSON(w, http.StatusOK, result)
}

type tagForm struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var form tagForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	created, err := h.service.Create(r.Context(), Tag{
		Name:        form.Name,
		Color:       form.Color,
		Description: form.Description,
	})
	if err != nil {
		h.logger.Warn("create tag", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// attach is idempotent; assigning an already-assigned tag succeeds.
func (h *Handler) attach(w http.ResponseWriter, r *http.Request) {
	tagID, productID, err := pairParams(r)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.service.Attach(r.Context(), productID, tagID); err != nil {
		h.logger.Warn("attach tag", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) detach(w http.ResponseWriter, r *http.Request) {
	tagID, productID, err := pairParams(r)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.service.Detach(r.Context(), productID, tagID); err != nil {
		h.logger.Warn("detach tag", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pairParams(r *http.Request) (tagID, productID int64, err error) {
	tagID, err = strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	productID, err = strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	return tagID, productID, err
}
