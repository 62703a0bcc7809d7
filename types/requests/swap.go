package requests

import "github.com/autoswappr/autoswap-go/models"

type ExecuteSwapRequest struct {
	FromToken   string        `json:"fromToken" validate:"required"`
	ToToken     string        `json:"toToken" validate:"required"`
	Amount      string        `json:"amount" validate:"required,decimal"`
	UserAddress string        `json:"userAddress" validate:"omitempty,hexaddr"`
	Slippage    models.Double `json:"slippage" default:"0.5"`
}

type ParseCommandRequest struct {
	Command string `json:"command" validate:"required"`
}
