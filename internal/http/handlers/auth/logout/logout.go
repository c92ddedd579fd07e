// Package logout завершает сессию пользователя.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/page"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

const msgLoggedOut = "You have been logged out successfully"

// Service отзывает сессию.
type Service interface {
	SignOut(ctx context.Context, session *models.Session) error
}

// Handler обрабатывает GET /logout.
type Handler struct {
	log          *slog.Logger
	service      Service
	cookieSecure bool
}

// New создаёт Handler.
func New(log *slog.Logger, service Service, cookieSecure bool) *Handler {
	return &Handler{
		log:          log,
		service:      service,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session, ok := middlewarectx.SessionFrom(r.Context())
	if ok {
		// Cookie удаляется в любом случае, даже если отзыв не записан.
		if err := h.service.SignOut(r.Context(), session); err != nil {
			log.Error("failed to revoke session", slog.Int64("user_id", session.UserID), sl.Err(err))
		} else {
			log.Info("user signed out", slog.Int64("user_id", session.UserID))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewarectx.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	page.Redirect(w, r, middlewarectx.IndexPath, page.FlashSuccess, msgLoggedOut)
}
