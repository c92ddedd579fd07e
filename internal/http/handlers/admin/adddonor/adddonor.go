// Package adddonor добавляет донора от имени администратора.
package adddonor

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/request"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/response"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

type Service interface {
	AddDonor(ctx context.Context, form models.DonorForm) (int64, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить донора
// @Tags Admin
// @Accept  x-www-form-urlencoded,json
// @Produce  json
// @Param request body models.DonorForm true "Данные донора"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response "Нет роли admin"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /admin/add-donor [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.adddonor"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var form models.DonorForm
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
		render.JSON(w, r, response.Error("invalid donor"))
		return
	}

	id, err := h.service.AddDonor(r.Context(), form)
	if err != nil {
		status, resp := response.FromError(err, "failed to add donor")
		log.Error("failed to add donor", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("donor added", slog.Int64("id", id))
	render.JSON(w, r, response.Response{
		Success: true,
		Message: "Donor added successfully",
		Data:    map[string]any{"id": id},
	})
}
