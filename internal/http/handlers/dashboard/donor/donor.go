// Package donor отдаёт дашборд донора: его пожертвования и их сумму.
package donor

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/page"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/response"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// Service строит данные дашборда.
type Service interface {
	DonorDashboard(ctx context.Context, session *models.Session) (*models.DonorDashboard, error)
}

// Renderer отрисовывает страницы.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, data page.Data) error
}

// Handler отдаёт дашборд страницей или JSON при Accept: application/json.
type Handler struct {
	log      *slog.Logger
	service  Service
	renderer Renderer
}

// New создаёт Handler.
func New(log *slog.Logger, service Service, renderer Renderer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		renderer: renderer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.donor"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session, _ := middlewarectx.SessionFrom(r.Context())
	view, err := h.service.DonorDashboard(r.Context(), session)
	if err != nil {
		status, resp := response.FromError(err, "failed to load dashboard")
		log.Error("failed to load dashboard", sl.Err(err))
		if page.WantsJSON(r) {
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}
		http.Error(w, resp.Message, status)
		return
	}

	if page.WantsJSON(r) {
		render.JSON(w, r, response.OKWithData(view))
		return
	}
	err = h.renderer.Render(w, r, http.StatusOK, "donor_dashboard.html", page.Data{
		Title:   "Donor dashboard",
		Session: session,
		Flashes: page.PopFlash(w, r),
		View:    view,
	})
	if err != nil {
		log.Error("failed to render page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
