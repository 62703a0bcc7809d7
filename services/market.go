package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/models"
	"github.com/autoswappr/autoswap-go/utils"
	"go.uber.org/zap"
)

// MarketService resolves tokens and exchange rates against the static
// tables and fabricates the presentation-only quote trimmings (routes,
// gas estimates, price impact).
type MarketService interface {
	Tokens() []*models.TokenInfo
	TokenBySymbol(symbol string) (*models.TokenInfo, bool)

	// ExchangeRate returns the direct rate when configured, the
	// reciprocal of the inverse direction otherwise, and ok=false when
	// neither direction exists. Same-token pairs are rate 1.
	ExchangeRate(from, to string) (float64, bool)

	// OutputAmount computes amount * rate * (1 - slippagePct/100),
	// surfacing unknown tokens, unsupported pairs and non-positive
	// amounts as domain errors.
	OutputAmount(amount float64, from, to string, slippagePct float64) (float64, error)

	EstimateGas(from, to string) string
	GenerateRoute(from, to string) []string
	PriceImpact(amount float64) float64
}

func NewMarketService(rand Rand, log *zap.Logger) MarketService {
	return &marketService{
		service: service{rand: rand, log: log},
	}
}

type marketService struct {
	service
}

func (m *marketService) Tokens() []*models.TokenInfo {
	tokens := make([]*models.TokenInfo, 0, len(KnownTokens))
	for _, t := range KnownTokens {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Symbol < tokens[j].Symbol })
	return tokens
}

func (m *marketService) TokenBySymbol(symbol string) (*models.TokenInfo, bool) {
	token, ok := KnownTokens[strings.ToUpper(strings.TrimSpace(symbol))]
	return token, ok
}

func (m *marketService) ExchangeRate(from, to string) (float64, bool) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if from == to {
		return 1, true
	}
	if rate, ok := Rates[from][to]; ok {
		return rate, true
	}
	if inverse, ok := Rates[to][from]; ok && inverse != 0 {
		return 1 / inverse, true
	}
	return 0, false
}

func (m *marketService) OutputAmount(amount float64, from, to string, slippagePct float64) (float64, error) {
	fromToken, ok := m.TokenBySymbol(from)
	if !ok {
		return 0, errors.NewTokenNotFoundError(from)
	}
	toToken, ok := m.TokenBySymbol(to)
	if !ok {
		return 0, errors.NewTokenNotFoundError(to)
	}
	if fromToken.Symbol == toToken.Symbol {
		return 0, errors.NewInvalidTokenPairError()
	}
	if amount <= 0 {
		return 0, errors.NewInvalidAmountError("Amount must be a positive number")
	}

	rate, ok := m.ExchangeRate(fromToken.Symbol, toToken.Symbol)
	if !ok {
		return 0, errors.NewPairNotSupportedError(fromToken.Symbol, toToken.Symbol)
	}

	out := amount * rate * (1 - slippagePct/100)
	return utils.TruncateAmount(out, toToken.Decimals), nil
}

func (m *marketService) EstimateGas(from, to string) string {
	const baseGas = 0.001
	complexity := 1.2
	if strings.EqualFold(from, NativeAsset) || strings.EqualFold(to, NativeAsset) {
		complexity = 1.0
	}
	return fmt.Sprintf("%.6f %s", baseGas*complexity, NativeAsset)
}

// GenerateRoute picks the direct two-hop route 70% of the time; the rest
// goes through the first common token distinct from both endpoints.
func (m *marketService) GenerateRoute(from, to string) []string {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if from == to {
		return []string{from}
	}
	if m.rand.Float64() < 0.7 {
		return []string{from, to}
	}

	intermediate := NativeAsset
	for _, candidate := range commonTokens {
		if candidate != from && candidate != to {
			intermediate = candidate
			break
		}
	}
	return []string{from, intermediate, to}
}

// PriceImpact buckets the notional size and jitters within the bucket:
// <1000 -> 0-0.1%, <10000 -> 0.1-0.5%, else 0.5-2%.
func (m *marketService) PriceImpact(amount float64) float64 {
	switch {
	case amount < 1000:
		return m.rand.Float64() * 0.1
	case amount < 10000:
		return 0.1 + m.rand.Float64()*0.4
	default:
		return 0.5 + m.rand.Float64()*1.5
	}
}
