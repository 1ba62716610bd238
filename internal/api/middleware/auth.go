package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/AutoSchool-BookingService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Заголовки проставляет API-шлюз после проверки сессии
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// RoleAdmin роль администратора автошколы
const RoleAdmin = "admin"

// Auth прокидывает идентификатор пользователя из заголовка в контекст
// запроса. Запросы без заголовка отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "требуется аутентификация")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, r.Header.Get(HeaderUserRole))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает идентификатор пользователя из контекста запроса
func UserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}

// IsAdmin возвращает true, если запрос пришел от администратора
func IsAdmin(r *http.Request) bool {
	role, _ := r.Context().Value(userRoleKey).(string)
	return role == RoleAdmin
}
