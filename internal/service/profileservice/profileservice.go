package profileservice

import (
	"context"
	"errors"
	"strings"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/bigshare/bigpoints/pkg/validate"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	UpdateWalletAddress(ctx context.Context, userID int, walletAddress string) error
	CountReferrals(ctx context.Context, email string) (int, error)
}

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
)

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// SaveWallet stores the user's payout wallet address after trimming and a
// length/charset check.
func (s *Service) SaveWallet(ctx context.Context, userID int, walletAddress string) error {
	wallet := strings.TrimSpace(walletAddress)
	if !validate.IsWalletAddress(wallet) {
		return ErrInvalidWalletAddress
	}

	if err := s.userRepo.UpdateWalletAddress(ctx, userID, wallet); err != nil {
		zap.L().Error("can't save wallet address", zap.Error(err))
		return err
	}

	zap.L().Info("wallet address saved", zap.Int("userID", userID))
	return nil
}

// GetReferralStats returns how many accounts the user referred and the
// points accumulated from those referrals.
func (s *Service) GetReferralStats(ctx context.Context, userID int) (*domain.ReferralStats, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	count, err := s.userRepo.CountReferrals(ctx, user.Email)
	if err != nil {
		zap.L().Error("can't count referrals", zap.Error(err))
		return nil, err
	}

	return &domain.ReferralStats{
		Count:    count,
		Earnings: user.ReferralEarnings,
	}, nil
}
