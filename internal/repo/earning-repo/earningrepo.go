package earningrepo

import (
	"context"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/bigshare/bigpoints/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.DailyEarning, error) {
	query := `
        SELECT id, user_id, to_char(earn_date, 'YYYY-MM-DD'), points, created_at
        FROM daily_earnings
        WHERE user_id = $1
        ORDER BY earn_date DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get daily earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.DailyEarning
	for rows.Next() {
		var earning domain.DailyEarning
		err := rows.Scan(&earning.ID, &earning.UserID, &earning.Date, &earning.Points, &earning.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan daily earning row", zap.Error(err))
			return nil, err
		}
		earnings = append(earnings, earning)
	}
	return earnings, nil
}

func (r *Repository) Save(ctx context.Context, earning *domain.DailyEarning) error {
	query := `
        INSERT INTO daily_earnings (user_id, earn_date, points)
        VALUES ($1, $2, $3)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, earning.UserID, earning.Date, earning.Points)
		if err != nil {
			zap.L().Error("can't save daily earning", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
