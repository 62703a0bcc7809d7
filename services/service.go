package services

import (
	"context"
	"time"

	"github.com/autoswappr/autoswap-go/config"
	"github.com/autoswappr/autoswap-go/models"
	"go.uber.org/zap"
)

type service struct {
	cfg    *config.Config
	rand   Rand
	market MarketService
	status StatusService

	log *zap.Logger
}

// sleep waits for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// KnownTokens is the static token table for the target network (sepolia).
var KnownTokens = map[string]*models.TokenInfo{
	"ETH": {
		Symbol:   "ETH",
		Name:     "Ethereum",
		Address:  "0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7",
		Decimals: 18,
	},
	"STRK": {
		Symbol:   "STRK",
		Name:     "StarkNet Token",
		Address:  "0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d",
		Decimals: 18,
	},
	"USDC": {
		Symbol:   "USDC",
		Name:     "USD Coin",
		Address:  "0x053c91253bc9682c04929ca02ed00b3e423f6710d2ee7e0d5ebb06f3ecf368a8",
		Decimals: 6,
	},
	"USDT": {
		Symbol:   "USDT",
		Name:     "Tether USD",
		Address:  "0x068f5c6a61780768455de69077e07e89787839bf8166decfbf92b645209c0fb8",
		Decimals: 6,
	},
}

// Rates is the hand-curated exchange-rate table. Directions missing here are
// resolved through the inverse pair; pairs absent in both directions are not
// supported. The table has no freshness guarantee.
var Rates = map[string]map[string]float64{
	"ETH": {
		"USDC": 2500,
		"USDT": 2498,
		"STRK": 1250,
	},
	"USDC": {
		"ETH":  0.0004,
		"USDT": 0.999,
	},
	"USDT": {
		"ETH":  0.0004,
		"USDC": 1.001,
	},
	"STRK": {
		"ETH": 0.0008,
	},
}

// NativeAsset is the chain's gas token; swaps not touching it cost more.
const NativeAsset = "ETH"

// commonTokens are the candidate intermediate hops for multi-hop routes.
var commonTokens = []string{"ETH", "USDC"}
