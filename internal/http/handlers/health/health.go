// Package health реализует проверку живости сервиса и его зависимостей.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/response"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
)

const checkTimeout = 2 * time.Second

// Pinger проверяет доступность зависимости.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler отвечает 200, если все зависимости доступны, иначе 503.
type Handler struct {
	log    *slog.Logger
	checks map[string]Pinger
}

// New создаёт Handler с именованными проверками.
func New(log *slog.Logger, checks map[string]Pinger) *Handler {
	return &Handler{
		log:    log,
		checks: checks,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status := "ok"
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			log.Error("dependency check failed", slog.String("dependency", name), sl.Err(err))
			results[name] = "unavailable"
			status = "degraded"
			continue
		}
		results[name] = "ok"
	}

	if status != "ok" {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, response.Response{
			Success: false,
			Message: status,
			Data:    map[string]any{"status": status, "checks": results},
		})
		return
	}
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": status,
		"checks": results,
	}))
}
