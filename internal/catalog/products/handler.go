package products

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	catshared "github.com/vapemart/vapemart/internal/catalog/shared"
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
	r.With(h.admin).Get("/admin", h.adminList)
	r.Get("/{slug}", h.get)
	r.With(h.admin).Post("/", h.create)
	r.With(h.admin).Patch("/{id}", h.update)
	r.With(h.admin).Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := catshared.ProductFilters{
		CategorySlug: query.Get("category"),
		Search:       query.Get("search"),
		BrandIDs:     parseIDList(query.Get("brands")),
		LocationIDs:  parseIDList(query.Get("locations")),
	}
	if query.Get("featured") != "" {
		featured := query.Get("featured") == "true"
		filters.Featured = &featured
	}
	filters.Page, _ = strconv.Atoi(query.Get("page"))
	filters.PageSize, _ = strconv.Atoi(query.Get("pageSize"))

	result, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) adminList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := catshared.ListFilters{Search: query.Get("search")}
	if query.Get("isActive") != "" {
		active := query.Get("isActive") == "true"
		filters.IsActive = &active
	}
	filters.Page, _ = strconv.Atoi(query.Get("page"))
	filters.PageSize, _ = strconv.Atoi(query.Get("pageSize"))

	result, err := h.service.AdminList(r.Context(), filters)
	if err != nil {
		h.logger.Error("admin list products", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("get product", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	var createdBy *int64
	if sess := shared.SessionFromContext(r.Context()); sess != nil && sess.User() != "" {
		if id, err := strconv.ParseInt(sess.User(), 10, 64); err == nil {
			createdBy = &id
		}
	}

	created, err := h.service.Create(r.Context(), form, createdBy)
	if err != nil {
		h.logger.Warn("create product", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	var patch ProductPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Warn("update product", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil && !errors.Is(err, shared.ErrNotFound) {
		h.logger.Error("delete product", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseIDList(raw string) []int64 {
	if raw == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
