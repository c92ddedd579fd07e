package home

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/page"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
	"github.com/cyb3erasad/Donor-Management-System/internal/web"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHomeHandler(t *testing.T) {
	rd, err := page.NewRenderer(web.TemplatesFS)
	require.NoError(t, err)
	h := New(newNoopLogger(), rd)

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `href="/signup"`)
	})

	t.Run("signed in with flash", func(t *testing.T) {
		rec := httptest.NewRecorder()
		page.SetFlash(rec, page.FlashError, "Unauthorized access")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}
		req = req.WithContext(middlewarectx.WithSession(req.Context(), &models.Session{FullName: "Ali", Role: models.RoleDonor}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Unauthorized access")
		assert.Contains(t, w.Body.String(), "Go to your dashboard")
	})
}
