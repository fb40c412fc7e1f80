package auth

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vapemart/vapemart/internal/platform/httpx"
	"github.com/vapemart/vapemart/internal/shared"
)

// Middleware gates admin-only routes on the session user's is_admin flag.
type Middleware struct {
	Service *Service
	Logger  *slog.Logger
}

// RequireAdmin rejects requests without an admin session: 401 when there is
// no authenticated user, 403 when the user exists but is not an admin.
func (m Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess == nil || sess.User() == "" {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		id, err := strconv.ParseInt(sess.User(), 10, 64)
		if err != nil {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		user, err := m.Service.GetUser(r.Context(), id)
		if err != nil {
			httpx.RespondError(w, httpx.ErrUnauthorized)
			return
		}
		if !user.IsAdmin {
			if m.Logger != nil {
				m.Logger.Warn("admin gate rejected", slog.String("username", user.Username), slog.String("path", r.URL.Path))
			}
			httpx.RespondError(w, httpx.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
