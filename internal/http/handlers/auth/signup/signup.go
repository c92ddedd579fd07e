// Package signup реализует самостоятельную регистрацию донора или получателя.
package signup

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

const (
	path       = "/signup"
	msgSuccess = "Registration successful! Please sign in."
)

// Service описывает регистрацию пользователя.
type Service interface {
	Register(ctx context.Context, form models.RegisterForm) (int64, error)
}

// Renderer отрисовывает страницы.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, data page.Data) error
}

// Handler обрабатывает GET и POST /signup.
type Handler struct {
	log      *slog.Logger
	service  Service
	renderer Renderer
	validate *validator.Validate
}

// New создаёт Handler.
func New(log *slog.Logger, service Service, renderer Renderer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		renderer: renderer,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя с ролью donor, senior или special.
// @Tags Auth
// @Accept  x-www-form-urlencoded,json
// @Produce  html,json
// @Param request body models.RegisterForm true "Данные регистрации"
// @Success 302 "Переход на /signin"
// @Success 201 {object} response.Response "Пользователь создан"
// @Failure 409 {object} response.Response "Email уже зарегистрирован"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if _, ok := middlewarectx.SessionFrom(r.Context()); ok && !page.WantsJSON(r) {
		http.Redirect(w, r, middlewarectx.DashboardRedirectPath, http.StatusFound)
		return
	}
	if r.Method == http.MethodGet {
		err := h.renderer.Render(w, r, http.StatusOK, "signup.html", page.Data{
			Title:   "Sign up",
			Flashes: page.PopFlash(w, r),
		})
		if err != nil {
			log.Error("failed to render page", sl.Err(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	var form models.RegisterForm
	if err := request.Decode(r, &form); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		h.fail(w, r, http.StatusBadRequest, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(form); err != nil {
		log.Info("validation failed", sl.Err(err))
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.fail(w, r, http.StatusUnprocessableEntity, response.ValidationError(verrs))
			return
		}
		h.fail(w, r, http.StatusUnprocessableEntity, response.Error("invalid registration data"))
		return
	}

	id, err := h.service.Register(r.Context(), form)
	if err != nil {
		status, resp := response.FromError(err, "registration failed")
		if status == http.StatusInternalServerError {
			log.Error("failed to register user", sl.Err(err))
		} else {
			log.Info("registration rejected", sl.Err(err))
		}
		h.fail(w, r, status, resp)
		return
	}

	log.Info("user registered", slog.Int64("user_id", id), slog.String("category", form.Category))
	if page.WantsJSON(r) {
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Response{
			Success: true,
			Message: msgSuccess,
			Data:    map[string]any{"id": id},
		})
		return
	}
	page.Redirect(w, r, middlewarectx.SignInPath, page.FlashSuccess, msgSuccess)
}

// fail отвечает JSON‑ошибкой или возвращает на форму с flash‑сообщением.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, resp response.Response) {
	if page.WantsJSON(r) {
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}
	page.Redirect(w, r, path, page.FlashError, resp.Message)
}
