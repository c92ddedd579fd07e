// Package addbeneficiary добавляет подопечного от имени администратора.
package addbeneficiary

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

var successMessages = map[models.BeneficiaryKind]string{
	models.KindSenior:  "Senior citizen added successfully",
	models.KindSpecial: "Special person added successfully",
}

// Service добавляет подопечного.
type Service interface {
	AddBeneficiary(ctx context.Context, kind models.BeneficiaryKind, form models.BeneficiaryForm) (int64, error)
}

// Handler обрабатывает POST /admin/add-senior и /admin/add-special.
type Handler struct {
	log      *slog.Logger
	service  Service
	kind     models.BeneficiaryKind
	validate *validator.Validate
}

// New создаёт Handler для подопечных вида kind.
func New(log *slog.Logger, service Service, kind models.BeneficiaryKind) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		kind:     kind,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить подопечного
// @Tags Admin
// @Accept  x-www-form-urlencoded,json
// @Produce  json
// @Param request body models.BeneficiaryForm true "Данные подопечного"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response "Нет роли admin"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /admin/add-senior [post]
// @Router /admin/add-special [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.addbeneficiary"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", string(h.kind)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var form models.BeneficiaryForm
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
		render.JSON(w, r, response.Error("invalid beneficiary"))
		return
	}

	id, err := h.service.AddBeneficiary(r.Context(), h.kind, form)
	if err != nil {
		status, resp := response.FromError(err, "failed to add beneficiary")
		log.Error("failed to add beneficiary", sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("beneficiary added", slog.Int64("id", id))
	render.JSON(w, r, response.Response{
		Success: true,
		Message: successMessages[h.kind],
		Data:    map[string]any{"id": id},
	})
}
