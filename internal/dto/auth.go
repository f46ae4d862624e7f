package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"miner@example.com"`
	Password string `json:"password" validate:"required,min=6"`
	Ref      string `json:"ref,omitempty" example:"friend@example.com"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"miner@example.com"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
