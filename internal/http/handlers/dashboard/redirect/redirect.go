// Package redirect направляет пользователя на дашборд его роли.
package redirect

import (
	"net/http"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// Адреса дашбордов.
const (
	DonorDashboardPath       = "/donor-dashboard"
	BeneficiaryDashboardPath = "/senior-dashboard"
	AdminDashboardPath       = "/admin-dashboard"
)

// PathFor возвращает адрес дашборда для роли.
func PathFor(role models.Role) string {
	switch role {
	case models.RoleDonor:
		return DonorDashboardPath
	case models.RoleSenior, models.RoleSpecial:
		return BeneficiaryDashboardPath
	case models.RoleAdmin:
		return AdminDashboardPath
	}
	return middlewarectx.IndexPath
}

// Handler обрабатывает GET /dashboard-redirect.
type Handler struct{}

// New создаёт Handler.
func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewarectx.SessionFrom(r.Context())
	if !ok {
		http.Redirect(w, r, middlewarectx.SignInPath, http.StatusFound)
		return
	}
	http.Redirect(w, r, PathFor(session.Role), http.StatusFound)
}
