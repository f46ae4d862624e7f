package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/bigshare/bigpoints/docs"
	"github.com/bigshare/bigpoints/internal/handlers/admin"
	"github.com/bigshare/bigpoints/internal/handlers/auth"
	"github.com/bigshare/bigpoints/internal/handlers/earnings"
	"github.com/bigshare/bigpoints/internal/handlers/profile"
	"github.com/bigshare/bigpoints/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		EarningService: earnings.NewMockService(ctrl),
		ProfileService: profile.NewMockService(ctrl),
		StatService:    admin.NewMockService(ctrl),
	}

	h := New(services, "admin@example.com")
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockEarningsHandler := NewMockEarningsHandler(ctrl)
	mockProfileHandler := NewMockProfileHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockEarningsHandler.EXPECT().GetEarnings(gomock.Any(), gomock.Any()).AnyTimes()
	mockEarningsHandler.EXPECT().GetMonthlyEarnings(gomock.Any(), gomock.Any()).AnyTimes()
	mockEarningsHandler.EXPECT().ReportUsage(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().SaveWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().GetReferrals(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetMonthlyReport(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetDailyTotals(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		EarningsHandler: mockEarningsHandler,
		ProfileHandler:  mockProfileHandler,
		AdminHandler:    mockAdminHandler,
		adminEmail:      "admin@example.com",
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/usage", http.StatusOK},
		{"GET", "/api/user/earnings", http.StatusUnauthorized},
		{"GET", "/api/user/earnings/monthly", http.StatusUnauthorized},
		{"POST", "/api/user/wallet", http.StatusUnauthorized},
		{"GET", "/api/user/referrals", http.StatusUnauthorized},
		{"GET", "/api/admin/summary", http.StatusUnauthorized},
		{"GET", "/api/admin/monthly", http.StatusUnauthorized},
		{"GET", "/api/admin/daily", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
