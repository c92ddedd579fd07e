// Package give выплачивает пожертвование подопечному из общего баланса.
package give

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

// Service проводит выплату.
type Service interface {
	GiveDonation(ctx context.Context, session *models.Session, form models.DisbursementForm) (*models.Disbursement, error)
}

// Handler обрабатывает POST /admin/give-donation.
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
// @Summary Выплата подопечному
// @Description Сумма не может превышать остаток общего баланса.
// @Tags Admin
// @Accept  x-www-form-urlencoded,json
// @Produce  json
// @Param request body models.DisbursementForm true "Данные выплаты"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response "Нет роли admin"
// @Failure 404 {object} response.Response "Получатель не найден"
// @Failure 422 {object} response.Response "Ошибка валидации или недостаточно средств"
// @Router /admin/give-donation [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.give"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var form models.DisbursementForm
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
		render.JSON(w, r, response.Error("invalid disbursement"))
		return
	}

	session, _ := middlewarectx.SessionFrom(r.Context())
	d, err := h.service.GiveDonation(r.Context(), session, form)
	if err != nil {
		status, resp := response.FromError(err, "failed to give donation")
		log.Error("failed to give donation", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("donation given",
		slog.Int64("id", d.ID),
		slog.String("recipient", d.Recipient.String()),
		slog.String("amount", d.Amount.String()),
	)
	render.JSON(w, r, response.Response{
		Success: true,
		Message: "Donation given successfully",
		Data:    map[string]any{"id": d.ID},
	})
}
