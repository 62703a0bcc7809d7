package responses

import "time"

type QuoteResponseData struct {
	FromToken       string    `json:"fromToken"`
	ToToken         string    `json:"toToken"`
	InputAmount     string    `json:"inputAmount"`
	EstimatedOutput string    `json:"estimatedOutput"`
	PriceImpact     string    `json:"priceImpact"`
	Route           []string  `json:"route"`
	GasEstimate     string    `json:"gasEstimate"`
	Slippage        string    `json:"slippage"`
	ValidUntil      time.Time `json:"validUntil"`
}

type PriceResponseData struct {
	FromToken string  `json:"fromToken"`
	ToToken   string  `json:"toToken"`
	Price     float64 `json:"price"`
}

type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

type PriceHistoryResponseData struct {
	FromToken string       `json:"fromToken"`
	ToToken   string       `json:"toToken"`
	Hours     int          `json:"hours"`
	History   []PricePoint `json:"history"`
}
