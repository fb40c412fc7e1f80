package availability

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

// ProductResolver resolves a public product slug to its id.
type ProductResolver interface {
	ResolveSlug(ctx context.Context, slug string) (int64, error)
}

type Handler struct {
	logger   *slog.Logger
	service  *Service
	products ProductResolver
	admin    func(http.Handler) http.Handler
}

func NewHandler(logger *slog.Logger, service *Service, products ProductResolver, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{logger: logger, service: service, products: products, admin: admin}
}

// MountRoutes attaches the admin stock-row endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.With(h.admin).Post("/", h.create)
	r.With(h.admin).Patch("/{id}", h.update)
}

// ListForProductSlug serves GET /api/products/{slug}/availability.
func (h *Handler) ListForProductSlug(w http.ResponseWriter, r *http.Request) {
	productID, err := h.products.ResolveSlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("resolve product slug", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	rows, err := h.service.ListForProduct(r.Context(), productID)
	if err != nil {
		h.logger.Error("list availability", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if rows == nil {
		rows = []Availability{}
	}
	httpx.JSON(w, http.StatusOK, rows)
}

type availabilityForm struct {
	ProductID  int64 `json:"productId"`
	LocationID int64 `json:"locationId"`
	Quantity   int   `json:"quantity"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var form availabilityForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	created, err := h.service.Create(r.Context(), form.ProductID, form.LocationID, form.Quantity)
	if err != nil {
		h.logger.Warn("create availability", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

type quantityForm struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	var form quantityForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	updated, err := h.service.SetQuantity(r.Context(), id, form.Quantity)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Warn("update availability", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}
