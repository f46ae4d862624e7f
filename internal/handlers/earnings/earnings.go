package earnings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/bigshare/bigpoints/internal/dto"
	earningservice "github.com/bigshare/bigpoints/internal/service/earningservice"
	"github.com/bigshare/bigpoints/internal/service/statservice"
	"github.com/bigshare/bigpoints/pkg/auth"
	"github.com/bigshare/bigpoints/pkg/utils"
)

type Service interface {
	GetUsage(ctx context.Context, userID int) (*domain.UsageSummary, error)
	GetMonthlyUsage(ctx context.Context, userID int, monthKey string) (*domain.MonthlyUsage, error)
	GetRecentUsage(ctx context.Context, userID int, days int) (map[string]float64, error)
	RecordUsage(ctx context.Context, email, date string, amount float64) error
}

const recentDays = 7

type EarningsHandler struct {
	earningService Service
}

func New(earningService Service) *EarningsHandler {
	return &EarningsHandler{
		earningService: earningService,
	}
}

// GetEarnings godoc
//
//	@Summary		Get earning history
//	@Description	Retrieve the all-time point totals and per-day history for the authenticated user.
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.EarningsResponseDTO	"All-time totals and per-day history"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/earnings [get]
func (h *EarningsHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	usage, err := h.earningService.GetUsage(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EarningsResponseDTO{
		TotalPoints: usage.Total,
		ActiveDays:  usage.ActiveDays,
		Daily:       usage.Daily,
	})
}

// GetMonthlyEarnings godoc
//
//	@Summary		Get monthly earning breakdown
//	@Description	Retrieve one month of earnings for the authenticated user. The month query parameter takes a YYYY-MM key, "all" for the last seven days, or may be omitted for the default month.
//	@Tags			Earnings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string	false	"Month key (YYYY-MM) or \"all\""
//	@Success		200		{object}	dto.MonthlyEarningsResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/earnings/monthly [get]
func (h *EarningsHandler) GetMonthlyEarnings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	monthKey := r.URL.Query().Get("month")
	if monthKey == "all" {
		daily, err := h.earningService.GetRecentUsage(r.Context(), userID, recentDays)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		var total float64
		activeDays := 0
		for _, points := range daily {
			total += points
			if points > 0 {
				activeDays++
			}
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.MonthlyEarningsResponseDTO{
			Month:       "all",
			TotalPoints: total,
			ActiveDays:  activeDays,
			Daily:       daily,
		})
		return
	}

	usage, err := h.earningService.GetMonthlyUsage(r.Context(), userID, monthKey)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MonthlyEarningsResponseDTO{
		Month:       statservice.ResolveMonthKey(monthKey),
		TotalPoints: usage.Total,
		ActiveDays:  usage.ActiveDays,
		AvgDaily:    usage.AvgDaily,
		Daily:       usage.Daily,
	})
}

// ReportUsage godoc
//
//	@Summary		Report computing usage
//	@Description	Record a batch of earned points for a user on a given date. Called by sharing nodes and the collector.
//	@Tags			Earnings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UsageReportRequestDTO	true	"Usage report payload"
//	@Success		202		{string}	string						"Usage accepted"
//	@Failure		400		{object}	utils.Response				"Invalid report payload"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/usage [post]
func (h *EarningsHandler) ReportUsage(w http.ResponseWriter, r *http.Request) {
	var req dto.UsageReportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.earningService.RecordUsage(r.Context(), req.Email, req.Date, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, earningservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, earningservice.ErrInvalidDate), errors.Is(err, earningservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, "usage accepted")
}
