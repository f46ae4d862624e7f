package dto

type UserSummaryDTO struct {
	Email         string  `json:"email" example:"miner@example.com"`
	WalletAddress string  `json:"wallet_address,omitempty"`
	TotalPoints   float64 `json:"total_points" example:"15"`
	ActiveDays    int     `json:"active_days" example:"2"`
	AvgDaily      float64 `json:"avg_daily" example:"7.5"`
}

type MonthlyReportResponseDTO struct {
	Month      string           `json:"month" example:"2025-09"`
	MonthTotal float64          `json:"month_total" example:"18"`
	Rows       []UserSummaryDTO `json:"rows"`
}

type DailyTotalsResponseDTO struct {
	Month  string             `json:"month" example:"2025-09"`
	Totals map[string]float64 `json:"totals"`
}

type SummaryResponseDTO struct {
	TotalUsers     int     `json:"total_users" example:"42"`
	TotalPoints    float64 `json:"total_points" example:"1234.5"`
	AveragePerUser float64 `json:"average_per_user" example:"29"`
	Month          string  `json:"month" example:"2025-09"`
	MonthTotal     float64 `json:"month_total" example:"118.25"`
}
