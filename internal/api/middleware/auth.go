package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ConsultService/internal/api/handlers"
)

type ctxKey int

const adminIDKey ctxKey = iota

// AdminAuth требует заголовок X-Admin-ID на админских маршрутах
// Аутентификация и сессии живут во внешнем сервисе; этот слой доверяет
// проксируемому заголовку и только прокидывает ID в контекст
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := r.Header.Get("X-Admin-ID")
		if adminID == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-Admin-ID")
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminID возвращает ID администратора из контекста запроса
func AdminID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey).(string)
	return id, ok
}
