// Package signin реализует вход пользователя: форму входа и проверку учётных данных.
//
// Успешный вход выставляет cookie сессии и перенаправляет на /dashboard-redirect.
// Клиенты с Accept: application/json получают токен в теле ответа.
package signin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/page"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/request"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/response"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

const msgInvalidCredentials = "Invalid email or password"

// Request: учётные данные из формы или JSON.
type Request struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Service описывает вход пользователя.
type Service interface {
	SignIn(ctx context.Context, email, password string) (string, *models.Session, error)
}

// Renderer отрисовывает страницы.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, data page.Data) error
}

// Metrics учитывает попытки входа.
type Metrics interface {
	SignIn(ok bool)
}

// Handler обрабатывает GET и POST /signin.
type Handler struct {
	log          *slog.Logger
	service      Service
	renderer     Renderer
	metrics      Metrics
	validate     *validator.Validate
	cookieSecure bool
}

// New создаёт Handler. cookieSecure выставляет флаг Secure у cookie сессии.
func New(log *slog.Logger, service Service, renderer Renderer, metrics Metrics, cookieSecure bool) *Handler {
	return &Handler{
		log:          log,
		service:      service,
		renderer:     renderer,
		metrics:      metrics,
		validate:     validator.New(),
		cookieSecure: cookieSecure,
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Tags Auth
// @Accept  x-www-form-urlencoded,json
// @Produce  html,json
// @Param request body Request true "Учетные данные пользователя"
// @Success 302 "Переход на /dashboard-redirect"
// @Success 200 {object} response.Response "Токен сессии"
// @Failure 401 {object} response.Response "Неверный email или пароль"
// @Failure 429 {object} response.Response "Слишком много попыток"
// @Router /signin [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signin"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if _, ok := middlewarectx.SessionFrom(r.Context()); ok && !page.WantsJSON(r) {
		http.Redirect(w, r, middlewarectx.DashboardRedirectPath, http.StatusFound)
		return
	}
	if r.Method == http.MethodGet {
		h.show(w, r, log, http.StatusOK, "", page.PopFlash(w, r))
		return
	}

	var req Request
	if err := request.Decode(r, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		h.fail(w, r, log, http.StatusBadRequest, "", "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		var verrs validator.ValidationErrors
		if page.WantsJSON(r) && errors.As(err, &verrs) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		h.metrics.SignIn(false)
		h.fail(w, r, log, http.StatusUnauthorized, req.Email, msgInvalidCredentials)
		return
	}

	token, session, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		log.Info("invalid credentials", slog.String("email", req.Email))
		h.metrics.SignIn(false)
		h.fail(w, r, log, http.StatusUnauthorized, req.Email, msgInvalidCredentials)
		return
	}
	if err != nil {
		log.Error("sign in failed", sl.Err(err))
		h.fail(w, r, log, http.StatusInternalServerError, req.Email, "internal error")
		return
	}
	h.metrics.SignIn(true)

	http.SetCookie(w, &http.Cookie{
		Name:     middlewarectx.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	log.Info("user signed in", slog.Int64("user_id", session.UserID), slog.String("role", string(session.Role)))

	if page.WantsJSON(r) {
		render.JSON(w, r, response.Response{
			Success: true,
			Message: "Signed in",
			Data: map[string]any{
				"token":      token,
				"role":       session.Role,
				"expires_at": session.ExpiresAt,
			},
		})
		return
	}
	http.Redirect(w, r, middlewarectx.DashboardRedirectPath, http.StatusFound)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, email string, flashes []page.Flash) {
	err := h.renderer.Render(w, r, status, "signin.html", page.Data{
		Title:   "Sign in",
		Flashes: flashes,
		View:    email,
	})
	if err != nil {
		log.Error("failed to render page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, email, msg string) {
	if page.WantsJSON(r) {
		render.Status(r, status)
		render.JSON(w, r, response.Error(msg))
		return
	}
	h.show(w, r, log, status, email, []page.Flash{{Category: page.FlashError, Message: msg}})
}
