package admin

import (
	"context"
	"encoding/json"
	"errors"
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

func (m *MockService) AdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*models.AdminDashboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func adminRequest(accept string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return req.WithContext(middlewarectx.WithSession(req.Context(), &models.Session{UserID: 1, FullName: "Admin", Role: models.RoleAdmin}))
}

func dashboard() *models.AdminDashboard {
	return &models.AdminDashboard{
		TotalUsers:             4,
		TotalDonationsReceived: money.FromUnits(1000),
		TotalDonationsGiven:    money.FromUnits(300),
		RemainingBalance:       money.FromUnits(700),
		TotalSeniors:           1,
		SeniorCitizens:         []models.BeneficiaryView{{ID: 4, Name: "Bashir", Age: "72", Source: models.SourceAdmin, Kind: models.KindSenior}},
		SpecialPeople:          []models.BeneficiaryView{},
		Donors:                 []models.DonorView{},
		Donations:              []models.Donation{},
		Disbursements:          []models.Disbursement{},
	}
}

func TestAdminDashboardHandler_Page(t *testing.T) {
	rd, err := page.NewRenderer(web.TemplatesFS)
	require.NoError(t, err)

	svc := new(MockService)
	svc.On("AdminDashboard", mock.Anything).Return(dashboard(), nil).Once()

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc, rd).ServeHTTP(w, adminRequest(""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bashir")
	assert.Contains(t, w.Body.String(), "700.00")
}

func TestAdminDashboardHandler_JSON(t *testing.T) {
	svc := new(MockService)
	svc.On("AdminDashboard", mock.Anything).Return(dashboard(), nil).Once()

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc, nil).ServeHTTP(w, adminRequest("application/json"))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			TotalUsers       int          `json:"total_users"`
			RemainingBalance money.Amount `json:"remaining_balance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 4, body.Data.TotalUsers)
	assert.Equal(t, money.FromUnits(700), body.Data.RemainingBalance)
}

func TestAdminDashboardHandler_Error(t *testing.T) {
	svc := new(MockService)
	svc.On("AdminDashboard", mock.Anything).Return(nil, errors.New("snapshot failed")).Once()

	w := httptest.NewRecorder()
	New(newNoopLogger(), svc, nil).ServeHTTP(w, adminRequest(""))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to load dashboard")
}
