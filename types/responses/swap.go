package responses

import "time"

type SwapResponseData struct {
	Status          string    `json:"status"`
	TransactionHash string    `json:"transactionHash,omitempty"`
	FromToken       string    `json:"fromToken"`
	ToToken         string    `json:"toToken"`
	InputAmount     string    `json:"inputAmount"`
	OutputAmount    string    `json:"outputAmount,omitempty"`
	GasUsed         string    `json:"gasUsed,omitempty"`
	Error           string    `json:"error,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// CommandResponseData is the result of parsing a natural language swap
// command, paired with a quote for the parsed pair.
type CommandResponseData struct {
	Command   string             `json:"command"`
	FromToken string             `json:"fromToken"`
	ToToken   string             `json:"toToken"`
	Amount    string             `json:"amount"`
	Quote     *QuoteResponseData `json:"quote"`
}
