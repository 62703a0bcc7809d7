// Package parser turns chat-style swap commands into structured requests.
package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Command is a parsed natural language swap instruction.
type Command struct {
	Amount    string
	FromToken string
	ToToken   string
}

// commandPattern matches "<amount> <token> TO <token>" after normalization.
var commandPattern = regexp.MustCompile(`^(\d+\.?\d*)\s+([A-Z0-9]+)\s+(?:TO|FOR)\s+([A-Z0-9]+)$`)

// tokenAliases maps common wrapped or colloquial names onto table symbols.
var tokenAliases = map[string]string{
	"WETH":  "ETH",
	"WSTRK": "STRK",
	"USD":   "USDC",
}

// ParseSwapCommand parses a natural language swap command.
// Examples:
//   - "swap 1 ETH to USDC"
//   - "1.5 STRK for ETH"
//   - "exchange 100 USDC to STRK"
func ParseSwapCommand(command string) (*Command, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(command), " "))
	normalized = strings.TrimPrefix(normalized, "SWAP ")
	normalized = strings.TrimPrefix(normalized, "EXCHANGE ")
	normalized = strings.TrimPrefix(normalized, "CONVERT ")

	matches := commandPattern.FindStringSubmatch(normalized)
	if matches == nil {
		return nil, fmt.Errorf("invalid swap command format. Expected: 'swap <amount> <token> to <token>' (e.g., 'swap 1 ETH to USDC')")
	}

	return &Command{
		Amount:    matches[1],
		FromToken: NormalizeTokenSymbol(matches[2]),
		ToToken:   NormalizeTokenSymbol(matches[3]),
	}, nil
}

// NormalizeTokenSymbol uppercases a symbol and resolves known aliases.
func NormalizeTokenSymbol(symbol string) string {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))
	if normalized, exists := tokenAliases[symbol]; exists {
		return normalized
	}
	return symbol
}
