package earningservice

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/bigshare/bigpoints/internal/service/statservice"
	"go.uber.org/zap"
)

type Repo interface {
	ListByUserID(ctx context.Context, userID int) ([]domain.DailyEarning, error)
	Save(ctx context.Context, earning *domain.DailyEarning) error
}

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	AddReferralEarnings(ctx context.Context, email string, amount float64) error
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrInvalidAmount = errors.New("amount must not be negative")
)

// referralRate is the share of every reported earning credited to the
// referrer's referral earnings.
const referralRate = 0.1

var dateKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Service struct {
	earningRepo Repo
	userRepo    UserRepo
}

func New(earningRepo Repo, userRepo UserRepo) *Service {
	return &Service{
		earningRepo: earningRepo,
		userRepo:    userRepo,
	}
}

// GetUsage returns a user's complete earning history collapsed to one value
// per date, along with all-time totals.
func (s *Service) GetUsage(ctx context.Context, userID int) (*domain.UsageSummary, error) {
	daily, err := s.dailyUsage(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &domain.UsageSummary{Daily: daily}
	for _, points := range daily {
		summary.Total += points
		if points > 0 {
			summary.ActiveDays++
		}
	}
	return summary, nil
}

// GetMonthlyUsage filters a user's history down to one month. A missing or
// malformed month key falls back to the default month rather than failing.
func (s *Service) GetMonthlyUsage(ctx context.Context, userID int, monthKey string) (*domain.MonthlyUsage, error) {
	monthKey = statservice.ResolveMonthKey(monthKey)

	daily, err := s.dailyUsage(ctx, userID)
	if err != nil {
		return nil, err
	}

	usage := &domain.MonthlyUsage{Daily: make(map[string]float64)}
	for date, points := range daily {
		if !strings.HasPrefix(date, monthKey) {
			continue
		}
		usage.Daily[date] = points
		usage.Total += points
		if points > 0 {
			usage.ActiveDays++
		}
	}
	if usage.ActiveDays > 0 {
		usage.AvgDaily = usage.Total / float64(usage.ActiveDays)
	}
	return usage, nil
}

// GetRecentUsage returns the user's most recent recorded dates, newest
// last, capped at days entries.
func (s *Service) GetRecentUsage(ctx context.Context, userID int, days int) (map[string]float64, error) {
	daily, err := s.dailyUsage(ctx, userID)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > days {
		dates = dates[:days]
	}

	recent := make(map[string]float64, len(dates))
	for _, date := range dates {
		recent[date] = daily[date]
	}
	return recent, nil
}

// RecordUsage stores one reported earning batch for the user identified by
// email. When that user was referred, a share of the amount is credited to
// the referrer; a failed referral credit is logged but does not reject the
// report.
func (s *Service) RecordUsage(ctx context.Context, email, date string, amount float64) error {
	if !dateKeyRe.MatchString(date) {
		return ErrInvalidDate
	}
	if amount < 0 {
		return ErrInvalidAmount
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	earning := &domain.DailyEarning{
		UserID: user.ID,
		Date:   date,
		Points: amount,
	}
	if err := s.earningRepo.Save(ctx, earning); err != nil {
		zap.L().Error("can't save earning", zap.Error(err))
		return err
	}

	if user.ReferredBy != "" && amount > 0 {
		if err := s.userRepo.AddReferralEarnings(ctx, user.ReferredBy, amount*referralRate); err != nil {
			zap.L().Error("can't credit referral earnings",
				zap.String("referrer", user.ReferredBy), zap.Error(err))
		}
	}

	return nil
}

func (s *Service) dailyUsage(ctx context.Context, userID int) (map[string]float64, error) {
	earnings, err := s.earningRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't load earnings", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	daily := make(map[string]float64)
	for _, earning := range earnings {
		daily[earning.Date] += earning.Points
	}
	return daily, nil
}
