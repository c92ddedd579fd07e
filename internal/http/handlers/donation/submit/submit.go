// Package submit принимает пожертвование от донора.
package submit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/request"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/response"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// Service сохраняет пожертвование.
type Service interface {
	Submit(ctx context.Context, session *models.Session, form models.DonationForm) (*models.Donation, error)
}

// Handler обрабатывает POST /submit-donation.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Пожертвование донора
// @Tags Donations
// @Accept  x-www-form-urlencoded,json
// @Produce  json
// @Param request body models.DonationForm true "Данные пожертвования"
// @Success 200 {object} response.Response "Пожертвование сохранено"
// @Failure 400 {object} response.Response "Некорректное тело запроса"
// @Failure 403 {object} response.Response "Нет роли donor"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /submit-donation [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.donation.submit"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var form models.DonationForm
	if err := request.Decode(r, &form); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(form); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		render.JSON(w, r, response.Error("invalid donation"))
		return
	}

	session, _ := middlewarectx.SessionFrom(r.Context())
	d, err := h.service.Submit(r.Context(), session, form)
	if err != nil {
		status, resp := response.FromError(err, "failed to submit donation")
		log.Error("failed to submit donation", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("donation submitted", slog.Int64("id", d.ID), slog.String("amount", d.Amount.String()))
	render.JSON(w, r, response.Response{
		Success: true,
		Message: "Donation submitted successfully",
		Data:    map[string]any{"id": d.ID},
	})
}
