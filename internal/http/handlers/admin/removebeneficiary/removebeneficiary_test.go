package removebeneficiary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) DeleteBeneficiary(ctx context.Context, kind models.BeneficiaryKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRemoveBeneficiaryHandler(t *testing.T) {
	tests := []struct {
		name           string
		kind           models.BeneficiaryKind
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "пожилой удалён",
			kind: models.KindSenior,
			id:   "4",
			setupMock: func(m *MockService) {
				m.On("DeleteBeneficiary", mock.Anything, models.KindSenior, int64(4)).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Senior citizen deleted"}`,
		},
		{
			name: "особый человек удалён",
			kind: models.KindSpecial,
			id:   "9",
			setupMock: func(m *MockService) {
				m.On("DeleteBeneficiary", mock.Anything, models.KindSpecial, int64(9)).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Special person deleted"}`,
		},
		{
			name:           "нечисловой id",
			kind:           models.KindSenior,
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"invalid id"}`,
		},
		{
			name: "запись не найдена",
			kind: models.KindSenior,
			id:   "77",
			setupMock: func(m *MockService) {
				m.On("DeleteBeneficiary", mock.Anything, models.KindSenior, int64(77)).
					Return(fmt.Errorf("op: %w", models.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"message":"not found"}`,
		},
		{
			name: "ошибка хранилища",
			kind: models.KindSpecial,
			id:   "3",
			setupMock: func(m *MockService) {
				m.On("DeleteBeneficiary", mock.Anything, models.KindSpecial, int64(3)).Return(errors.New("db down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"failed to delete beneficiary"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodDelete, "/admin/delete-"+string(tt.kind)+"/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			New(newNoopLogger(), svc, tt.kind).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
