// Package middleware HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationsService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationsService/internal/domain"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Identity разрешенная личность вызывающего, которую кладет в заголовки
// внешний слой аутентификации
type Identity struct {
	UserID int64
	Role   domain.Role
}

type identityKey struct{}

// Auth проверяет наличие и корректность заголовков X-User-ID / X-User-Role
// и кладет Identity в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "No autenticado.")
			return
		}

		roleValue, err := strconv.Atoi(r.Header.Get(headerUserRole))
		if err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, "No autenticado.")
			return
		}

		role := domain.Role(roleValue)
		if !role.IsValid() {
			handlers.RespondError(w, http.StatusUnauthorized, "No autenticado.")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, Identity{
			UserID: userID,
			Role:   role,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext достает Identity из контекста запроса
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
