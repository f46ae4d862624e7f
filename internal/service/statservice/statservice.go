package statservice

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/bigshare/bigpoints/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const snapshotTTL = 5 * time.Minute

type UserRepo interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type EarningRepo interface {
	ListByUserID(ctx context.Context, userID int) ([]domain.DailyEarning, error)
}

// Service computes cross-user point aggregates for the admin dashboard.
// It holds no state of its own beyond the user snapshot cache; every result
// is recomputed from the repositories on demand.
type Service struct {
	userRepo    UserRepo
	earningRepo EarningRepo
	snapshot    *snapshot

	// workers bounds concurrent per-user earning fetches. With 1 the
	// traversal is strictly sequential, which keeps the per-user failure
	// log ordering of the dashboard it replaced.
	workers int
}

func New(userRepo UserRepo, earningRepo EarningRepo, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		userRepo:    userRepo,
		earningRepo: earningRepo,
		snapshot:    newSnapshot(snapshotTTL),
		workers:     workers,
	}
}

// GetAllUserSummaries returns one row per known user for the given month,
// sorted by total points descending (ties keep encounter order), together
// with the month-wide total. Users without matching records appear with
// zeroed columns. A failed earning fetch for one user contributes zero and
// does not abort the aggregation.
func (s *Service) GetAllUserSummaries(ctx context.Context, monthKey string) ([]domain.UserSummary, float64, error) {
	monthKey = ResolveMonthKey(monthKey)

	users, err := s.cachedUsers(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]domain.UserSummary, len(users))
	s.forEachUser(ctx, users, func(i int, user domain.User) {
		total, activeDays := s.monthTotals(ctx, user, monthKey)

		avgDaily := 0.0
		if activeDays > 0 {
			avgDaily = total / float64(activeDays)
		}

		rows[i] = domain.UserSummary{
			Email:         user.Email,
			WalletAddress: user.WalletAddress,
			Total:         total,
			ActiveDays:    activeDays,
			AvgDaily:      avgDaily,
		}
	})

	var monthTotal float64
	for _, row := range rows {
		monthTotal += row.Total
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	return rows, monthTotal, nil
}

// GetDailyTotals sums every user's points per date for the given month. Dates
// without any recorded earning are absent from the result; callers render
// missing keys as zero.
func (s *Service) GetDailyTotals(ctx context.Context, monthKey string) (map[string]float64, error) {
	monthKey = ResolveMonthKey(monthKey)

	users, err := s.cachedUsers(ctx)
	if err != nil {
		return nil, err
	}

	perUser := make([]map[string]float64, len(users))
	s.forEachUser(ctx, users, func(i int, user domain.User) {
		earnings, err := s.earningRepo.ListByUserID(ctx, user.ID)
		if err != nil {
			zap.L().Error("can't load user earnings", zap.Int("userID", user.ID), zap.Error(err))
			return
		}

		totals := make(map[string]float64)
		for _, earning := range earnings {
			if strings.HasPrefix(earning.Date, monthKey) {
				totals[earning.Date] += earning.Points
			}
		}
		perUser[i] = totals
	})

	dailyTotals := make(map[string]float64)
	for _, totals := range perUser {
		for date, points := range totals {
			dailyTotals[date] += points
		}
	}
	return dailyTotals, nil
}

// GetGrandTotal sums every daily earning ever recorded, across all users.
func (s *Service) GetGrandTotal(ctx context.Context) (*domain.GrandTotal, error) {
	users, err := s.cachedUsers(ctx)
	if err != nil {
		return nil, err
	}

	totals := make([]float64, len(users))
	s.forEachUser(ctx, users, func(i int, user domain.User) {
		earnings, err := s.earningRepo.ListByUserID(ctx, user.ID)
		if err != nil {
			zap.L().Error("can't load user earnings", zap.Int("userID", user.ID), zap.Error(err))
			return
		}
		for _, earning := range earnings {
			totals[i] += earning.Points
		}
	})

	var totalPoints float64
	for _, total := range totals {
		totalPoints += total
	}

	avgPerUser := 0.0
	if len(users) > 0 {
		avgPerUser = math.Round(totalPoints / float64(len(users)))
	}

	return &domain.GrandTotal{
		TotalUsers:     len(users),
		TotalPoints:    totalPoints,
		AveragePerUser: avgPerUser,
	}, nil
}

func (s *Service) cachedUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.snapshot.get(ctx, s.userRepo.ListUsers)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) monthTotals(ctx context.Context, user domain.User, monthKey string) (float64, int) {
	earnings, err := s.earningRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		zap.L().Error("can't load user earnings", zap.Int("userID", user.ID), zap.Error(err))
		return 0, 0
	}

	var total float64
	activeDates := make(map[string]struct{})
	for _, earning := range earnings {
		if !strings.HasPrefix(earning.Date, monthKey) {
			continue
		}
		total += earning.Points
		if earning.Points > 0 {
			activeDates[earning.Date] = struct{}{}
		}
	}
	return total, len(activeDates)
}

// forEachUser visits every user, sequentially when workers is 1 and with a
// bounded fan-out otherwise. Visitors write only their own index, so no
// coordination beyond the group wait is needed.
func (s *Service) forEachUser(ctx context.Context, users []domain.User, visit func(i int, user domain.User)) {
	if s.workers <= 1 {
		for i, user := range users {
			visit(i, user)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, user := range users {
		i, user := i, user
		g.Go(func() error {
			visit(i, user)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("user traversal failed", zap.Error(err))
	}
}
