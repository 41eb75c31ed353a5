package auth

import (
	"context"
	"net/http"
	"strconv"
)

type ctxKey struct{}

// SystemUserID — сид-пользователь "system" из миграций.
// Используется, когда запрос не назвал действующего пользователя.
const SystemUserID = 1

// VerifyFunc проверяет, существует ли пользователь с таким id
type VerifyFunc func(ctx context.Context, id int) bool

// Middleware кладёт id действующего пользователя в контекст запроса.
// Идентичность берётся из заголовка X-User-ID и сверяется с хранилищем;
// неизвестный или некорректный id откатывается на системного пользователя,
// чтобы журнал активности всегда ссылался на существующего автора.
func Middleware(verify VerifyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := SystemUserID
			if v := r.Header.Get("X-User-ID"); v != "" {
				if id, err := strconv.Atoi(v); err == nil && id > 0 && verify(r.Context(), id) {
					userID = id
				}
			}
			ctx := context.WithValue(r.Context(), ctxKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID возвращает id действующего пользователя из контекста
func UserID(ctx context.Context) int {
	if id, ok := ctx.Value(ctxKey{}).(int); ok {
		return id
	}
	return SystemUserID
}
