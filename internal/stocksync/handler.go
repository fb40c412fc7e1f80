package stocksync

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

// maxWorkbookSize caps uploaded spreadsheets at 8 MiB.
const maxWorkbookSize = 8 << 20

type Handler struct {
	logger  *slog.Logger
	service *Service
	admin   func(http.Handler) http.Handler
}

func NewHandler(logger *slog.Logger, service *Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{logger: logger, service: service, admin: admin}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.admin)
	r.Post("/", h.start)
	r.Get("/status", h.latestStatus)
	r.Get("/status/{id}", h.status)
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	workbook, err := h.readWorkbook(r)
	if err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	job, err := h.service.Start(r.Context(), workbook)
	if err != nil {
		h.logger.Error("start stock sync", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusAccepted, job)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.Status(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("sync status", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, job)
}

func (h *Handler) latestStatus(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.LatestStatus(r.Context())
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, httpx.ErrNotFound)
			return
		}
		h.logger.Error("latest sync status", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, job)
}

// readWorkbook extracts the optional multipart "file" field. A request
// without a file body starts a sync from the configured workbook path.
func (h *Handler) readWorkbook(r *http.Request) ([]byte, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" || !hasMultipartPrefix(contentType) {
		return nil, nil
	}
	if err := r.ParseMultipartForm(maxWorkbookSize); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, maxWorkbookSize))
}

func hasMultipartPrefix(contentType string) bool {
	const prefix = "multipart/form-data"
	return len(contentType) >= len(prefix) && contentType[:len(prefix)] == prefix
}
