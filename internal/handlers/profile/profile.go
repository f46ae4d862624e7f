package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/bigshare/bigpoints/internal/dto"
	profileservice "github.com/bigshare/bigpoints/internal/service/profileservice"
	"github.com/bigshare/bigpoints/pkg/auth"
	"github.com/bigshare/bigpoints/pkg/utils"
)

type Service interface {
	SaveWallet(ctx context.Context, userID int, walletAddress string) error
	GetReferralStats(ctx context.Context, userID int) (*domain.ReferralStats, error)
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// SaveWallet godoc
//
//	@Summary		Save payout wallet address
//	@Description	Store the Solana wallet address reward payouts are sent to.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Wallet saved"
//	@Failure		400	{object}	utils.Response	"Invalid wallet address"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet [post]
func (h *ProfileHandler) SaveWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SaveWalletRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.profileService.SaveWallet(r.Context(), userID, req.WalletAddress)
	if err != nil {
		switch {
		case errors.Is(err, profileservice.ErrInvalidWalletAddress):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, profileservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Wallet address saved"})
}

// GetReferrals godoc
//
//	@Summary		Get referral stats
//	@Description	Retrieve the number of users referred by the authenticated user and the points earned from them.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *ProfileHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.profileService.GetReferralStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralStatsResponseDTO{
		Count:    stats.Count,
		Earnings: stats.Earnings,
	})
}
