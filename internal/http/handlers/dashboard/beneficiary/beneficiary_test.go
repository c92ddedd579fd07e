package beneficiary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/page"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
	"github.com/cyb3erasad/Donor-Management-System/internal/web"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) BeneficiaryDashboard(ctx context.Context, session *models.Session) (*models.BeneficiaryDashboard, error) {
	args := m.Called(ctx, session)
	if res := args.Get(0); res != nil {
		return res.(*models.BeneficiaryDashboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestBeneficiaryDashboardHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	rd, err := page.NewRenderer(web.TemplatesFS)
	require.NoError(t, err)

	dash := &models.BeneficiaryDashboard{
		Disbursements: []models.Disbursement{{ID: 1, Amount: money.FromUnits(700), Purpose: "Wheelchair", GivenBy: "Admin - Admin"}},
		TotalReceived: money.FromUnits(700),
	}

	for _, role := range []models.Role{models.RoleSenior, models.RoleSpecial} {
		t.Run(string(role), func(t *testing.T) {
			session := &models.Session{UserID: 9, FullName: "Rehana", Role: role}
			svc := new(MockService)
			svc.On("BeneficiaryDashboard", mock.Anything, session).Return(dash, nil).Once()

			req := httptest.NewRequest(http.MethodGet, "/senior-dashboard", nil)
			req = req.WithContext(middlewarectx.WithSession(req.Context(), session))
			w := httptest.NewRecorder()
			New(logger, svc, rd).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Wheelchair")
			assert.Contains(t, w.Body.String(), "700.00")
			kind, _ := role.BeneficiaryKind()
			assert.Contains(t, w.Body.String(), kind.Label()+" dashboard")
		})
	}
}

func TestBeneficiaryDashboardHandler_Forbidden(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	session := &models.Session{UserID: 5, Role: models.RoleDonor}

	svc := new(MockService)
	svc.On("BeneficiaryDashboard", mock.Anything, session).Return(nil, fmt.Errorf("op: %w", models.ErrForbidden)).Once()

	req := httptest.NewRequest(http.MethodGet, "/senior-dashboard", nil)
	req.Header.Set("Accept", "application/json")
	req = req.WithContext(middlewarectx.WithSession(req.Context(), session))
	w := httptest.NewRecorder()
	New(logger, svc, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unauthorized"}`, w.Body.String())
}
