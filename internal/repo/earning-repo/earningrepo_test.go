package earningrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/bigshare/bigpoints/internal/pg"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB, mockTxManager
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := "SELECT id, user_id, to_char(earn_date, 'YYYY-MM-DD'), points, created_at FROM daily_earnings WHERE user_id = $1 ORDER BY earn_date DESC"
	columns := []string{"id", "user_id", "to_char", "points", "created_at"}
	createdAt := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    []domain.DailyEarning
	}{
		{
			name:   "Earnings found",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(2, 1, "2025-09-16", 5.5, createdAt).
					AddRow(1, 1, "2025-09-15", 10.0, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: []domain.DailyEarning{
				{ID: 2, UserID: 1, Date: "2025-09-16", Points: 5.5, CreatedAt: createdAt},
				{ID: 1, UserID: 1, Date: "2025-09-15", Points: 10.0, CreatedAt: createdAt},
			},
		},
		{
			name:   "No earnings",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(2).
					WillReturnRows(pgxmock.NewRows(columns))
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByUserID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	query := "INSERT INTO daily_earnings (user_id, earn_date, points) VALUES ($1, $2, $3)"
	earning := &domain.DailyEarning{UserID: 1, Date: "2025-09-15", Points: 10.5}

	t.Run("Successful save", func(t *testing.T) {
		txManager.EXPECT().
			Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, "2025-09-15", 10.5).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Save(context.Background(), earning)
		assert.NoError(t, err)
	})

	t.Run("Insert fails", func(t *testing.T) {
		txManager.EXPECT().
			Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, "2025-09-15", 10.5).
			WillReturnError(errors.New("database error"))

		err := repo.Save(context.Background(), earning)
		assert.Error(t, err)
	})

	t.Run("Begin fails", func(t *testing.T) {
		txManager.EXPECT().
			Begin(gomock.Any(), gomock.Any()).
			Return(errors.New("can't begin transaction"))

		err := repo.Save(context.Background(), earning)
		assert.Error(t, err)
	})
}
