package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/page"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/response"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// Адреса перенаправлений для страниц.
const (
	SignInPath            = "/signin"
	DashboardRedirectPath = "/dashboard-redirect"
	IndexPath             = "/"
)

// MsgUnauthorizedAccess: flash при попытке открыть чужой дашборд администратора.
const MsgUnauthorizedAccess = "Unauthorized access"

func allowed(r *http.Request, roles []models.Role) (*models.Session, bool) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		return nil, false
	}
	return s, s.Role.In(roles...)
}

// RequireRolesAPI пропускает запрос, только если роль сессии входит в roles.
// Иначе 403 {"success": false, "message": "Unauthorized"} независимо от наличия сессии.
func RequireRolesAPI(log *slog.Logger, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRolesAPI"

			if _, ok := allowed(r, roles); !ok {
				log.Warn("access denied",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(response.MsgUnauthorized))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSessionPage перенаправляет на страницу входа запросы без сессии.
func RequireSessionPage() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionFrom(r.Context()); !ok {
				http.Redirect(w, r, SignInPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRolesPage защищает страницу: без сессии: на вход, с чужой ролью -
// на /dashboard-redirect.
func RequireRolesPage(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := allowed(r, roles)
			switch {
			case s == nil:
				http.Redirect(w, r, SignInPath, http.StatusFound)
			case !ok:
				http.Redirect(w, r, DashboardRedirectPath, http.StatusFound)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// RequireAdminPage защищает дашборд администратора: чужая роль получает
// flash "Unauthorized access" и уходит на главную.
func RequireAdminPage() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := allowed(r, []models.Role{models.RoleAdmin})
			switch {
			case s == nil:
				http.Redirect(w, r, SignInPath, http.StatusFound)
			case !ok:
				page.Redirect(w, r, IndexPath, page.FlashError, MsgUnauthorizedAccess)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
