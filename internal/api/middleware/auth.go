package middleware

import (
	"context"
	"net/http"

	"github.com/agendaplus/booking-service/internal/api/handlers"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	tenantIDKey
	staffKey
)

const (
	headerUserID   = "X-User-ID"
	headerTenantID = "X-Tenant-ID"
	headerUserRole = "X-User-Role"

	roleStaff = "staff"
)

// Auth проверяет заголовки аутентификации и кладет их в контекст
// Аутентификацией занимается шлюз, сервис доверяет заголовкам
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		tenantID := r.Header.Get(headerTenantID)
		if tenantID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-Tenant-ID")
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, userIDKey, userID)
		ctx = context.WithValue(ctx, tenantIDKey, tenantID)
		ctx = context.WithValue(ctx, staffKey, r.Header.Get(headerUserRole) == roleStaff)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает ID пользователя из контекста
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// TenantID возвращает ID арендатора из контекста
func TenantID(ctx context.Context) string {
	if v, ok := ctx.Value(tenantIDKey).(string); ok {
		return v
	}
	return ""
}

// IsStaff возвращает true, если запрос пришел от сотрудника арендатора
func IsStaff(ctx context.Context) bool {
	if v, ok := ctx.Value(staffKey).(bool); ok {
		return v
	}
	return false
}
