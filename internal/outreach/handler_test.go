package outreach

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type memoryOutreachRepo struct {
	messages    []ContactMessage
	subscribers map[string]bool
}

func (r *memoryOutreachRepo) CreateMessage(ctx context.Context, msg ContactMessage) (int64, error) {
	r.messages = append(r.messages, msg)
	return int64(len(r.messages)), nil
}

func (r *memoryOutreachRepo) Subscribe(ctx context.Context, email string) error {
	if r.subscribers == nil {
		r.subscribers = map[string]bool{}
	}
	r.subscribers[email] = true
	return nil
}

func newOutreachRouter(repo Repository) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := chi.NewRouter()
	NewHandler(logger, repo).MountRoutes(router)
	return router
}

func post(t *testing.T, router chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestContactStoresMessage(t *testing.T) {
	repo := &memoryOutreachRepo{}
	router := newOutreachRouter(repo)

	rec := post(t, router, "/contact", map[string]string{
		"name":    "Nina",
		"email":   "nina@example.com",
		"subject": "Order question",
		"message": "Where is my package?",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Message received")
	require.Len(t, repo.messages, 1)
	require.Equal(t, "nina@example.com", repo.messages[0].Email)
}

func TestContactRequiresAllFields(t *testing.T) {
	repo := &memoryOutreachRepo{}
	router := newOutreachRouter(repo)

	rec := post(t, router, "/contact", map[string]string{
		"name":  "Nina",
		"email": "nina@example.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, repo.messages)
}

func TestSubscribeValidatesEmail(t *testing.T) {
	repo := &memoryOutreachRepo{}
	router := newOutreachRouter(repo)

	bad := post(t, router, "/subscribe", map[string]string{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, bad.Code)

	good := post(t, router, "/subscribe", map[string]string{"email": "nina@example.com"})
	require.Equal(t, http.StatusOK, good.Code)
	require.True(t, repo.subscribers["nina@example.com"])
}
