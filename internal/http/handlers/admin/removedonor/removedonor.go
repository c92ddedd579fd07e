// Package removedonor удаляет донора, добавленного администратором.
package removedonor

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/response"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	services "github.com/cyb3erasad/Donor-Management-System/internal/services/admin"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	DeleteDonor(ctx context.Context, id int64) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить донора
// @Tags Admin
// @Produce  json
// @Param id path int true "ID донора"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response "Нет роли admin"
// @Failure 404 {object} response.Response "Запись не найдена"
// @Router /admin/delete-donor/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.removedonor"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := services.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		log.Info("invalid id format", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	if err := h.service.DeleteDonor(r.Context(), id); err != nil {
		status, resp := response.FromError(err, "failed to delete donor")
		log.Error("failed to delete donor", slog.Int64("id", id), sl.Err(err))
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("donor deleted", slog.Int64("id", id))
	render.JSON(w, r, response.OK("Donor deleted"))
}
