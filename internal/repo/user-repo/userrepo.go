package userrepo

import (
	"context"
	"errors"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/bigshare/bigpoints/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `
        SELECT id, email, password_hash, wallet_address, referred_by, referral_earnings, created_at
        FROM users
        WHERE email = $1
    `
	err := repo.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.WalletAddress,
		&user.ReferredBy, &user.ReferralEarnings, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	var user domain.User
	query := `
        SELECT id, email, password_hash, wallet_address, referred_by, referral_earnings, created_at
        FROM users
        WHERE id = $1
    `
	err := repo.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.WalletAddress,
		&user.ReferredBy, &user.ReferralEarnings, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, wallet_address, referred_by, referral_earnings)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.WalletAddress, user.ReferredBy, user.ReferralEarnings,
	).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, email, password_hash, wallet_address, referred_by, referral_earnings, created_at
        FROM users
        ORDER BY id
    `
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.Email, &user.PasswordHash, &user.WalletAddress,
			&user.ReferredBy, &user.ReferralEarnings, &user.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (repo *Repository) UpdateWalletAddress(ctx context.Context, userID int, walletAddress string) error {
	query := `
        UPDATE users
        SET wallet_address = $2
        WHERE id = $1
    `
	_, err := repo.db.Exec(ctx, query, userID, walletAddress)
	if err != nil {
		zap.L().Error("can't update wallet address", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) AddReferralEarnings(ctx context.Context, email string, amount float64) error {
	query := `
        UPDATE users
        SET referral_earnings = referral_earnings + $2
        WHERE email = $1
    `
	_, err := repo.db.Exec(ctx, query, email, amount)
	if err != nil {
		zap.L().Error("can't add referral earnings", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) CountReferrals(ctx context.Context, email string) (int, error) {
	var count int
	query := `
        SELECT COUNT(*)
        FROM users
        WHERE referred_by = $1
    `
	err := repo.db.QueryRow(ctx, query, email).Scan(&count)
	if err != nil {
		zap.L().Error("can't count referrals", zap.Error(err))
		return 0, err
	}
	return count, nil
}
