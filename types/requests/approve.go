package requests

type ApproveRequest struct {
	Token     string `json:"token" validate:"required"`
	Spender   string `json:"spender" validate:"omitempty,hexaddr"`
	AmountWei string `json:"amountWei" validate:"required,uintstr"`
}
