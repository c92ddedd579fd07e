// Package middlewarectx содержит HTTP middleware для сессий и ролей.
//
// Session читает токен из cookie "session" или заголовка Authorization и кладёт
// проверенную сессию в контекст. Проверки ролей выполняют RequireRolesAPI для
// JSON‑маршрутов и RequireRolesPage для страниц.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// CookieName: имя cookie с токеном сессии.
const CookieName = "session"

// Key тип для ключей контекста HTTP-запроса.
type Key string

// SessionKey: ключ сессии в контексте.
const SessionKey Key = "session"

// Authenticator проверяет токен сессии.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

// TokenFromRequest возвращает токен из заголовка Authorization или cookie.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

// Session добавляет сессию в контекст, если токен действителен.
// Запрос без сессии проходит дальше: решение принимают проверки ролей.
func Session(log *slog.Logger, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Session"

			token := TokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			s, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				log.Info("session rejected",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err),
				)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// WithSession кладёт сессию в контекст.
func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

// SessionFrom достаёт сессию из контекста.
func SessionFrom(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(SessionKey).(*models.Session)
	return s, ok && s != nil
}
