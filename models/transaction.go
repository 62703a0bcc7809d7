package models

import "time"

type TransactionStatus string

const (
	TxPending  TransactionStatus = "pending"
	TxSuccess  TransactionStatus = "success"
	TxFailed   TransactionStatus = "failed"
	TxNotFound TransactionStatus = "not_found"
)

// Terminal reports whether the status can no longer change.
func (s TransactionStatus) Terminal() bool {
	return s == TxSuccess || s == TxFailed || s == TxNotFound
}

// TransactionRecord is a tracked mock transaction, keyed by hash in the
// status service. A record transitions pending -> success|failed exactly
// once; confirmations of a successful record keep deepening on every poll.
type TransactionRecord struct {
	TransactionHash   string            `json:"transactionHash"`
	Status            TransactionStatus `json:"status"`
	Confirmations     int               `json:"confirmations,omitempty"`
	BlockNumber       string            `json:"blockNumber,omitempty"`
	GasUsed           string            `json:"gasUsed,omitempty"`
	EffectiveGasPrice string            `json:"effectiveGasPrice,omitempty"`
	Error             string            `json:"error,omitempty"`
	CreatedAt         time.Time         `json:"timestamp"`
	UpdatedAt         time.Time         `json:"-"`
}
