package dto

type SaveWalletRequestDTO struct {
	WalletAddress string `json:"wallet_address" example:"7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"`
}

type ReferralStatsResponseDTO struct {
	Count    int     `json:"count" example:"3"`
	Earnings float64 `json:"earnings" example:"1.525"`
}
