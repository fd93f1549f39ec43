package middleware

import (
	"context"
	"net/http"
)

// UserIDHeader заголовок с идентификатором пользователя, проставляется шлюзом
const UserIDHeader = "X-User-ID"

type ctxKey int

const userIDKey ctxKey = iota

// Auth извлекает идентификатор пользователя из заголовка и кладет его
// в контекст запроса. Заголовок опционален: запросы без него проходят
// дальше анонимно, решение об отказе принимает обработчик
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get(UserIDHeader); userID != "" {
			r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
