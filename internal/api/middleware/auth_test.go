package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
)

func TestAuth_ValidHeaders(t *testing.T) {
	var got Identity
	var found bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservas", nil)
	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-User-Role", "2")
	rec := httptest.NewRecorder()

	Auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, domain.RoleStaff, got.Role)
}

func TestAuth_RejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		role   string
	}{
		{"missing user id", "", "1"},
		{"non-numeric user id", "abc", "1"},
		{"non-positive user id", "0", "1"},
		{"missing role", "7", ""},
		{"non-numeric role", "7", "admin"},
		{"unknown role", "7", "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservas", nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			if tt.role != "" {
				req.Header.Set("X-User-Role", tt.role)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestIdentityFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := IdentityFromContext(req.Context())
	assert.False(t, ok)
}
