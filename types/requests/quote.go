package requests

type GetQuoteRequest struct {
	FromToken string `query:"fromToken" validate:"required"`
	ToToken   string `query:"toToken" validate:"required"`
	Amount    string `query:"amount" validate:"required,decimal"`
}

type GetPriceRequest struct {
	FromToken string `query:"fromToken" validate:"required"`
	ToToken   string `query:"toToken" validate:"required"`
}

type GetPriceHistoryRequest struct {
	FromToken string `query:"fromToken" validate:"required"`
	ToToken   string `query:"toToken" validate:"required"`
	Hours     int    `query:"hours" default:"24" validate:"min=1,max=168"`
}
