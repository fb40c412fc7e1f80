package auth

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger         *slog.Logger
	service        *Service
	sessionManager *shared.SessionManager
	validator      *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, sessions *shared.SessionManager) *Handler {
	return &Handler{
		logger:         logger,
		service:        service,
		sessionManager: sessions,
		validator:      validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
	r.Get("/user", h.handleCurrentUser)
}

type credentialsForm struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var form credentialsForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	user, err := h.service.Register(r.Context(), form.Username, form.Password)
	if err != nil {
		h.logger.Warn("register failed", slog.String("username", form.Username), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	h.establishSession(w, r, user)
	httpx.JSON(w, http.StatusCreated, user)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var form credentialsForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if form.Username == "" || form.Password == "" {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	user, err := h.service.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	h.establishSession(w, r, user)
	httpx.JSON(w, http.StatusOK, user)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess != nil {
		if err := h.service.RemoveSession(r.Context(), sess.ID); err != nil {
			h.logger.Warn("remove session", slog.Any("error", err))
		}
		h.sessionManager.Destroy(sess)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessionUser(r)
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, user *User) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		h.logger.Error("session missing during login")
		return
	}
	sess.SetUser(strconv.FormatInt(user.ID, 10))
	expiresAt := time.Now().Add(h.sessionManager.TTL())
	if err := h.service.RegisterSession(r.Context(), sess.ID, user.ID, expiresAt, r.RemoteAddr, r.UserAgent()); err != nil {
		h.logger.Warn("register session", slog.Any("error", err))
	}
}

func (h *Handler) sessionUser(r *http.Request) (*User, error) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil || sess.User() == "" {
		return nil, httpx.ErrUnauthorized
	}
	id, err := strconv.ParseInt(sess.User(), 10, 64)
	if err != nil {
		return nil, httpx.ErrUnauthorized
	}
	return h.service.GetUser(r.Context(), id)
}
