package redirect

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

func TestRedirectHandler(t *testing.T) {
	tests := []struct {
		name         string
		role         models.Role
		anonymous    bool
		wantLocation string
	}{
		{name: "donor", role: models.RoleDonor, wantLocation: "/donor-dashboard"},
		{name: "senior", role: models.RoleSenior, wantLocation: "/senior-dashboard"},
		{name: "special", role: models.RoleSpecial, wantLocation: "/senior-dashboard"},
		{name: "admin", role: models.RoleAdmin, wantLocation: "/admin-dashboard"},
		{name: "unknown role", role: models.Role("ghost"), wantLocation: "/"},
		{name: "anonymous", anonymous: true, wantLocation: "/signin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/dashboard-redirect", nil)
			if !tt.anonymous {
				req = req.WithContext(middlewarectx.WithSession(req.Context(), &models.Session{UserID: 1, Role: tt.role}))
			}
			w := httptest.NewRecorder()
			New().ServeHTTP(w, req)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}
