package dto

type EarningsResponseDTO struct {
	TotalPoints float64            `json:"total_points" example:"152.5"`
	ActiveDays  int                `json:"active_days" example:"12"`
	Daily       map[string]float64 `json:"daily"`
}

type MonthlyEarningsResponseDTO struct {
	Month       string             `json:"month" example:"2025-09"`
	TotalPoints float64            `json:"total_points" example:"42.75"`
	ActiveDays  int                `json:"active_days" example:"5"`
	AvgDaily    float64            `json:"avg_daily" example:"8.55"`
	Daily       map[string]float64 `json:"daily"`
}

type UsageReportRequestDTO struct {
	Email  string  `json:"email" example:"miner@example.com"`
	Date   string  `json:"date" example:"2025-09-15"`
	Amount float64 `json:"amount" example:"10.5"`
}
