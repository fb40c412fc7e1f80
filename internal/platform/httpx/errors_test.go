package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestTranslatePGErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "products_slug_key"}
	require.ErrorIs(t, TranslatePGError(fmt.Errorf("insert: %w", pgErr)), ErrDuplicate)
}

func TestTranslatePGErrorPassesThrough(t *testing.T) {
	cause := errors.New("connection reset")
	require.Equal(t, cause, TranslatePGError(cause))
	require.NoError(t, TranslatePGError(nil))
}

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrDuplicate, http.StatusConflict},
		{fmt.Errorf("%w: price must not be negative", ErrValidation), http.StatusBadRequest},
		{ErrForbidden, http.StatusForbidden},
		{ErrUnauthorized, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		RespondError(rec, tc.err)
		require.Equal(t, tc.code, rec.Code)
		require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	}
}
