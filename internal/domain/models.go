package domain

import "time"

type User struct {
	ID               int       `db:"id"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	WalletAddress    string    `db:"wallet_address"`
	ReferredBy       string    `db:"referred_by"`
	ReferralEarnings float64   `db:"referral_earnings"`
	CreatedAt        time.Time `db:"created_at"`
}

// DailyEarning is one recorded batch of points for a user on a calendar date
// (YYYY-MM-DD). More than one row may exist for the same user and date; all
// readers sum them.
type DailyEarning struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Date      string    `db:"earn_date"`
	Points    float64   `db:"points"`
	CreatedAt time.Time `db:"created_at"`
}

// UserSummary is one row of the admin monthly breakdown.
type UserSummary struct {
	Email         string
	WalletAddress string
	Total         float64
	ActiveDays    int
	AvgDaily      float64
}

type GrandTotal struct {
	TotalUsers     int
	TotalPoints    float64
	AveragePerUser float64
}

// UsageSummary is a single user's all-time earning history.
type UsageSummary struct {
	Total      float64
	ActiveDays int
	Daily      map[string]float64
}

// MonthlyUsage is a single user's view of one month.
type MonthlyUsage struct {
	Total      float64
	ActiveDays int
	AvgDaily   float64
	Daily      map[string]float64
}

type ReferralStats struct {
	Count    int
	Earnings float64
}
