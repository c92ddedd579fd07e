// Package removebeneficiary удаляет подопечного, добавленного администратором.
package removebeneficiary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/response"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
	services "github.com/cyb3erasad/Donor-Management-System/internal/services/admin"
)

var successMessages = map[models.BeneficiaryKind]string{
	models.KindSenior:  "Senior citizen deleted",
	models.KindSpecial: "Special person deleted",
}

// Service удаляет подопечного.
type Service interface {
	DeleteBeneficiary(ctx context.Context, kind models.BeneficiaryKind, id int64) error
}

// Handler обрабатывает DELETE /admin/delete-senior/{id} и /admin/delete-special/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
	kind    models.BeneficiaryKind
}

// New создаёт Handler для подопечных вида kind.
func New(log *slog.Logger, service Service, kind models.BeneficiaryKind) *Handler {
	return &Handler{
		log:     log,
		service: service,
		kind:    kind,
	}
}

// ServeHTTP godoc
// @Summary Удалить подопечного
// @Tags Admin
// @Produce  json
// @Param id path int true "ID подопечного"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response "Нет роли admin"
// @Failure 404 {object} response.Response "Запись не найдена"
// @Router /admin/delete-senior/{id} [delete]
// @Router /admin/delete-special/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.removebeneficiary"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", string(h.kind)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := services.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		log.Info("invalid id format", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	if err := h.service.DeleteBeneficiary(r.Context(), h.kind, id); err != nil {
		status, resp := response.FromError(err, "failed to delete beneficiary")
		log.Error("failed to delete beneficiary", slog.Int64("id", id), sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("beneficiary deleted", slog.Int64("id", id))
	render.JSON(w, r, response.OK(successMessages[h.kind]))
}
