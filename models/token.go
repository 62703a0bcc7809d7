package models

// TokenInfo describes a token from the static known-token table. Entries are
// immutable after process start; symbols are unique and uppercase.
type TokenInfo struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
}
