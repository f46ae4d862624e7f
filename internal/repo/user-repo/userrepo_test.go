package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userColumns = []string{"id", "email", "password_hash", "wallet_address", "referred_by", "referral_earnings", "created_at"}

const selectUserByEmail = "SELECT id, email, password_hash, wallet_address, referred_by, referral_earnings, created_at FROM users WHERE email = $1"

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "miner@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "miner@example.com", "hashed_password", "", "", 0.0, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
					WithArgs("miner@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Email:        "miner@example.com",
				PasswordHash: "hashed_password",
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "User not found",
			email: "ghost@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
					WithArgs("ghost@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "miner@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
					WithArgs("miner@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := "SELECT id, email, password_hash, wallet_address, referred_by, referral_earnings, created_at FROM users WHERE id = $1"
	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:   "User found",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "miner@example.com", "hashed_password", "wallet-a", "friend@example.com", 1.5, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:               1,
				Email:            "miner@example.com",
				PasswordHash:     "hashed_password",
				WalletAddress:    "wallet-a",
				ReferredBy:       "friend@example.com",
				ReferralEarnings: 1.5,
				CreatedAt:        createdAt,
			},
		},
		{
			name:   "User not found",
			userID: 42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(42).
					WillReturnError(pgx.ErrNoRows)
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
			result, err := repo.FindByID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := "INSERT INTO users (email, password_hash, wallet_address, referred_by, referral_earnings) VALUES ($1, $2, $3, $4, $5) RETURNING id"

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful insert",
			user: &domain.User{Email: "miner@example.com", PasswordHash: "hashed_password"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(7)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("miner@example.com", "hashed_password", "", "", 0.0).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			user: &domain.User{Email: "miner@example.com", PasswordHash: "hashed_password"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("miner@example.com", "hashed_password", "", "", 0.0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, result.ID)
			}
		})
	}
}

func TestRepository_ListUsers(t *testing.T) {
	repo, mock := NewMock(t)

	query := "SELECT id, email, password_hash, wallet_address, referred_by, referral_earnings, created_at FROM users ORDER BY id"
	createdAt := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Two users", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(1, "alice@example.com", "hash-a", "wallet-a", "", 0.0, createdAt).
			AddRow(2, "bob@example.com", "hash-b", "", "alice@example.com", 0.5, createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

		users, err := repo.ListUsers(context.Background())
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "alice@example.com", users[0].Email)
		assert.Equal(t, "bob@example.com", users[1].Email)
	})

	t.Run("No users", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(pgxmock.NewRows(userColumns))

		users, err := repo.ListUsers(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnError(errors.New("database error"))

		users, err := repo.ListUsers(context.Background())
		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

func TestRepository_UpdateWalletAddress(t *testing.T) {
	repo, mock := NewMock(t)

	query := "UPDATE users SET wallet_address = $2 WHERE id = $1"

	t.Run("Successful update", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, "wallet-a").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateWalletAddress(context.Background(), 1, "wallet-a")
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, "wallet-a").
			WillReturnError(errors.New("database error"))

		err := repo.UpdateWalletAddress(context.Background(), 1, "wallet-a")
		assert.Error(t, err)
	})
}

func TestRepository_AddReferralEarnings(t *testing.T) {
	repo, mock := NewMock(t)

	query := "UPDATE users SET referral_earnings = referral_earnings + $2 WHERE email = $1"

	t.Run("Successful update", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs("friend@example.com", 1.05).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.AddReferralEarnings(context.Background(), "friend@example.com", 1.05)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs("friend@example.com", 1.05).
			WillReturnError(errors.New("database error"))

		err := repo.AddReferralEarnings(context.Background(), "friend@example.com", 1.05)
		assert.Error(t, err)
	})
}

func TestRepository_CountReferrals(t *testing.T) {
	repo, mock := NewMock(t)

	query := "SELECT COUNT(*) FROM users WHERE referred_by = $1"

	t.Run("Three referrals", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"count"}).AddRow(3)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		count, err := repo.CountReferrals(context.Background(), "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("alice@example.com").
			WillReturnError(errors.New("database error"))

		count, err := repo.CountReferrals(context.Background(), "alice@example.com")
		assert.Error(t, err)
		assert.Zero(t, count)
	})
}
