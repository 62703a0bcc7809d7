package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSwapCommand(t *testing.T) {
	cases := []struct {
		input string
		want  Command
	}{
		{"swap 1 ETH to USDC", Command{Amount: "1", FromToken: "ETH", ToToken: "USDC"}},
		{"1.5 STRK for ETH", Command{Amount: "1.5", FromToken: "STRK", ToToken: "ETH"}},
		{"exchange 100 usdc to strk", Command{Amount: "100", FromToken: "USDC", ToToken: "STRK"}},
		{"convert 0.25 eth for usdt", Command{Amount: "0.25", FromToken: "ETH", ToToken: "USDT"}},
		{"  swap   2   WETH   to   USD  ", Command{Amount: "2", FromToken: "ETH", ToToken: "USDC"}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseSwapCommand(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestParseSwapCommandRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"swap",
		"swap ETH to USDC",
		"swap one ETH to USDC",
		"swap 1 ETH into USDC",
		"swap -1 ETH to USDC",
		"buy the dip",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSwapCommand(input)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeTokenSymbol(t *testing.T) {
	assert.Equal(t, "ETH", NormalizeTokenSymbol("weth"))
	assert.Equal(t, "STRK", NormalizeTokenSymbol("WSTRK"))
	assert.Equal(t, "USDC", NormalizeTokenSymbol("usd"))
	assert.Equal(t, "USDT", NormalizeTokenSymbol(" usdt "))
}
