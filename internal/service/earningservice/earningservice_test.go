package earningservice

import (
	"context"
	"errors"
	"testing"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	earningRepo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(earningRepo, userRepo)
	defer ctrl.Finish()
	return service, earningRepo, userRepo
}

func TestGetUsage(t *testing.T) {
	service, earningRepo, _ := NewMock(t)

	earningRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return([]domain.DailyEarning{
		{UserID: 1, Date: "2025-09-01", Points: 10},
		{UserID: 1, Date: "2025-09-01", Points: 2},
		{UserID: 1, Date: "2025-09-02", Points: 0},
		{UserID: 1, Date: "2025-08-20", Points: 5},
	}, nil)

	usage, err := service.GetUsage(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 17.0, usage.Total)
	assert.Equal(t, 2, usage.ActiveDays)
	assert.Equal(t, map[string]float64{
		"2025-09-01": 12,
		"2025-09-02": 0,
		"2025-08-20": 5,
	}, usage.Daily)
}

func TestGetMonthlyUsage(t *testing.T) {
	tests := []struct {
		name     string
		monthKey string
		expected *domain.MonthlyUsage
	}{
		{
			name:     "Explicit month",
			monthKey: "2025-09",
			expected: &domain.MonthlyUsage{
				Total:      15,
				ActiveDays: 2,
				AvgDaily:   7.5,
				Daily: map[string]float64{
					"2025-09-01": 10,
					"2025-09-02": 0,
					"2025-09-15": 5,
				},
			},
		},
		{
			name:     "Month without records",
			monthKey: "2025-10",
			expected: &domain.MonthlyUsage{
				Daily: map[string]float64{},
			},
		},
		{
			name:     "Malformed month falls back to default",
			monthKey: "202509",
			expected: &domain.MonthlyUsage{
				Total:      15,
				ActiveDays: 2,
				AvgDaily:   7.5,
				Daily: map[string]float64{
					"2025-09-01": 10,
					"2025-09-02": 0,
					"2025-09-15": 5,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, earningRepo, _ := NewMock(t)
			earningRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return([]domain.DailyEarning{
				{UserID: 1, Date: "2025-09-01", Points: 10},
				{UserID: 1, Date: "2025-09-02", Points: 0},
				{UserID: 1, Date: "2025-09-15", Points: 5},
				{UserID: 1, Date: "2025-08-20", Points: 99},
			}, nil)

			usage, err := service.GetMonthlyUsage(context.Background(), 1, tt.monthKey)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, usage)
		})
	}
}

func TestGetRecentUsage(t *testing.T) {
	service, earningRepo, _ := NewMock(t)

	earningRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return([]domain.DailyEarning{
		{UserID: 1, Date: "2025-09-01", Points: 1},
		{UserID: 1, Date: "2025-09-02", Points: 2},
		{UserID: 1, Date: "2025-09-03", Points: 3},
	}, nil)

	recent, err := service.GetRecentUsage(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"2025-09-03": 3,
		"2025-09-02": 2,
	}, recent)
}

func TestRecordUsage(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		date        string
		amount      float64
		prepareMock func(earningRepo *MockRepo, userRepo *MockUserRepo)
		expectedErr error
	}{
		{
			name:   "Valid report",
			email:  "miner@example.com",
			date:   "2025-09-15",
			amount: 10,
			prepareMock: func(earningRepo *MockRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "miner@example.com").
					Return(&domain.User{ID: 1, Email: "miner@example.com"}, nil)
				earningRepo.EXPECT().Save(gomock.Any(), &domain.DailyEarning{
					UserID: 1,
					Date:   "2025-09-15",
					Points: 10,
				}).Return(nil)
			},
		},
		{
			name:   "Referred user credits referrer",
			email:  "miner@example.com",
			date:   "2025-09-15",
			amount: 10,
			prepareMock: func(earningRepo *MockRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "miner@example.com").
					Return(&domain.User{ID: 1, Email: "miner@example.com", ReferredBy: "friend@example.com"}, nil)
				earningRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				userRepo.EXPECT().AddReferralEarnings(gomock.Any(), "friend@example.com", 1.0).Return(nil)
			},
		},
		{
			name:   "Referral credit failure does not reject the report",
			email:  "miner@example.com",
			date:   "2025-09-15",
			amount: 10,
			prepareMock: func(earningRepo *MockRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "miner@example.com").
					Return(&domain.User{ID: 1, Email: "miner@example.com", ReferredBy: "friend@example.com"}, nil)
				earningRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				userRepo.EXPECT().AddReferralEarnings(gomock.Any(), "friend@example.com", 1.0).
					Return(errors.New("db error"))
			},
		},
		{
			name:        "Invalid date",
			email:       "miner@example.com",
			date:        "15/09/2025",
			amount:      10,
			expectedErr: ErrInvalidDate,
		},
		{
			name:        "Negative amount",
			email:       "miner@example.com",
			date:        "2025-09-15",
			amount:      -1,
			expectedErr: ErrInvalidAmount,
		},
		{
			name:   "Unknown user",
			email:  "ghost@example.com",
			date:   "2025-09-15",
			amount: 10,
			prepareMock: func(earningRepo *MockRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, earningRepo, userRepo := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(earningRepo, userRepo)
			}

			err := service.RecordUsage(context.Background(), tt.email, tt.date, tt.amount)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
