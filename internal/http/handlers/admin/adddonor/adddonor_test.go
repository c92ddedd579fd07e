package adddonor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) AddDonor(ctx context.Context, form models.DonorForm) (int64, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(int64), args.Error(1)
}

func donorValues() url.Values {
	return url.Values{
		"name":           {"Hamza"},
		"age":            {"40"},
		"gender":         {"Male"},
		"contact":        {"0300"},
		"address":        {"Lahore"},
		"donation_type":  {"Monthly"},
		"amount":         {"2500"},
		"preferred_time": {"Morning"},
	}
}

func TestAddDonorHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		values         url.Values
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "донор добавлен",
			values: donorValues(),
			setupMock: func(m *MockService) {
				m.On("AddDonor", mock.Anything, mock.MatchedBy(func(f models.DonorForm) bool {
					return f.Name == "Hamza" && f.DonationType == models.DonationTypeMonthly && f.Amount.String() == "2500"
				})).Return(int64(2), nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Donor added successfully","data":{"id":2}}`,
		},
		{
			name: "не указан адрес",
			values: func() url.Values {
				v := donorValues()
				v.Del("address")
				return v
			}(),
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"success":false,"message":"field Address is a required field"}`,
		},
		{
			name: "неизвестный тип пожертвования",
			values: func() url.Values {
				v := donorValues()
				v.Set("donation_type", "Weekly")
				return v
			}(),
			setupMock: func(m *MockService) {
				m.On("AddDonor", mock.Anything, mock.Anything).
					Return(int64(0), fmt.Errorf("op: %w: donation type must be \"Monthly\" or \"One Time\"", models.ErrValidation)).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"success":false,"message":"donation type must be \"Monthly\" or \"One Time\""}`,
		},
		{
			name:   "ошибка хранилища",
			values: donorValues(),
			setupMock: func(m *MockService) {
				m.On("AddDonor", mock.Anything, mock.Anything).Return(int64(0), errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"failed to add donor"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/admin/add-donor", strings.NewReader(tt.values.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			w := httptest.NewRecorder()
			New(logger, mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
