// Package home отдаёт главную страницу.
package home

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/page"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
)

// Renderer отрисовывает страницы.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, data page.Data) error
}

// Handler отдаёт главную страницу.
type Handler struct {
	log      *slog.Logger
	renderer Renderer
}

// New создаёт Handler.
func New(log *slog.Logger, renderer Renderer) *Handler {
	return &Handler{
		log:      log,
		renderer: renderer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.home"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session, _ := middlewarectx.SessionFrom(r.Context())
	err := h.renderer.Render(w, r, http.StatusOK, "index.html", page.Data{
		Title:   "Home",
		Session: session,
		Flashes: page.PopFlash(w, r),
	})
	if err != nil {
		log.Error("failed to render page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
