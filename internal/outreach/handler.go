package outreach

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vapemart/vapemart/internal/platform/httpx"
)

type Handler struct {
	logger    *slog.Logger
	repo      Repository
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, repo Repository) *Handler {
	return &Handler{
		logger:    logger,
		repo:      repo,
		validator: validator.New(),
	}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/contact", h.contact)
	r.Post("/subscribe", h.subscribe)
}

type contactForm struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=4000"`
}

type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	var form contactForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	_, err := h.repo.CreateMessage(r.Context(), ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	})
	if err != nil {
		h.logger.Error("store contact message", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ackResponse{Success: true, Message: "Message received successfully"})
}

type subscribeForm struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var form subscribeForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.repo.Subscribe(r.Context(), form.Email); err != nil {
		h.logger.Error("store subscription", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ackResponse{Success: true, Message: "Subscribed successfully"})
}
