package admin

import (
	"context"
	"net/http"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/bigshare/bigpoints/internal/dto"
	"github.com/bigshare/bigpoints/internal/service/statservice"
	"github.com/bigshare/bigpoints/pkg/utils"
)

type Service interface {
	GetAllUserSummaries(ctx context.Context, monthKey string) ([]domain.UserSummary, float64, error)
	GetDailyTotals(ctx context.Context, monthKey string) (map[string]float64, error)
	GetGrandTotal(ctx context.Context) (*domain.GrandTotal, error)
}

type AdminHandler struct {
	statService Service
}

func New(statService Service) *AdminHandler {
	return &AdminHandler{
		statService: statService,
	}
}

// GetMonthlyReport godoc
//
//	@Summary		Get per-user monthly breakdown
//	@Description	Return one row per registered user for the requested month, sorted by total points descending. Users with no points in the month appear with zeroed values.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string	false	"Month key (YYYY-MM)"
//	@Success		200		{object}	dto.MonthlyReportResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/monthly [get]
func (h *AdminHandler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	monthKey := r.URL.Query().Get("month")

	rows, monthTotal, err := h.statService.GetAllUserSummaries(r.Context(), monthKey)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.MonthlyReportResponseDTO{
		Month:      statservice.ResolveMonthKey(monthKey),
		MonthTotal: monthTotal,
		Rows:       make([]dto.UserSummaryDTO, len(rows)),
	}
	for i, row := range rows {
		response.Rows[i] = dto.UserSummaryDTO{
			Email:         row.Email,
			WalletAddress: row.WalletAddress,
			TotalPoints:   row.Total,
			ActiveDays:    row.ActiveDays,
			AvgDaily:      row.AvgDaily,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetDailyTotals godoc
//
//	@Summary		Get platform-wide daily totals
//	@Description	Return points summed over all users for each date of the requested month.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string	false	"Month key (YYYY-MM)"
//	@Success		200		{object}	dto.DailyTotalsResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/daily [get]
func (h *AdminHandler) GetDailyTotals(w http.ResponseWriter, r *http.Request) {
	monthKey := r.URL.Query().Get("month")

	totals, err := h.statService.GetDailyTotals(r.Context(), monthKey)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyTotalsResponseDTO{
		Month:  statservice.ResolveMonthKey(monthKey),
		Totals: totals,
	})
}

// GetSummary godoc
//
//	@Summary		Get platform summary
//	@Description	Return the all-time user count, total points, rounded average per user, and the totals for the requested month.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string	false	"Month key (YYYY-MM)"
//	@Success		200		{object}	dto.SummaryResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/summary [get]
func (h *AdminHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	monthKey := r.URL.Query().Get("month")

	grand, err := h.statService.GetGrandTotal(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	_, monthTotal, err := h.statService.GetAllUserSummaries(r.Context(), monthKey)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SummaryResponseDTO{
		TotalUsers:     grand.TotalUsers,
		TotalPoints:    grand.TotalPoints,
		AveragePerUser: grand.AveragePerUser,
		Month:          statservice.ResolveMonthKey(monthKey),
		MonthTotal:     monthTotal,
	})
}
