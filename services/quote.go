package services

import (
	"context"
	"strings"
	"time"

	"github.com/autoswappr/autoswap-go/config"
	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/autoswappr/autoswap-go/types/responses"
	"github.com/autoswappr/autoswap-go/utils"
	"go.uber.org/zap"
)

const quoteValidity = 5 * time.Minute

type QuoteService interface {
	GetQuote(ctx context.Context, req *requests.GetQuoteRequest) (*responses.Response[*responses.QuoteResponseData], error)
	CurrentPrice(ctx context.Context, req *requests.GetPriceRequest) (*responses.Response[*responses.PriceResponseData], error)
	PriceHistory(ctx context.Context, req *requests.GetPriceHistoryRequest) (*responses.Response[*responses.PriceHistoryResponseData], error)
}

func NewQuoteService(cfg *config.Config, market MarketService, rand Rand, log *zap.Logger) QuoteService {
	return &quoteService{
		service: service{cfg: cfg, market: market, rand: rand, log: log},
	}
}

type quoteService struct {
	service
}

func (q *quoteService) GetQuote(ctx context.Context, req *requests.GetQuoteRequest) (*responses.Response[*responses.QuoteResponseData], error) {
	// simulated price-feed latency
	if err := sleep(ctx, q.rand.Jitter(150*time.Millisecond, 400*time.Millisecond)); err != nil {
		return nil, err
	}

	fromToken, ok := q.market.TokenBySymbol(req.FromToken)
	if !ok {
		return nil, errors.NewTokenNotFoundError(req.FromToken)
	}
	toToken, ok := q.market.TokenBySymbol(req.ToToken)
	if !ok {
		return nil, errors.NewTokenNotFoundError(req.ToToken)
	}
	if fromToken.Symbol == toToken.Symbol {
		return nil, errors.NewInvalidTokenPairError()
	}

	amount, ok := utils.ParsePositiveAmount(req.Amount)
	if !ok {
		return nil, errors.NewInvalidAmountError("Amount must be a positive number")
	}

	slippage := q.cfg.DefaultSlippagePct()
	output, err := q.market.OutputAmount(amount, fromToken.Symbol, toToken.Symbol, slippage)
	if err != nil {
		return nil, err
	}

	route := q.market.GenerateRoute(fromToken.Symbol, toToken.Symbol)
	impact := q.market.PriceImpact(amount)

	data := &responses.QuoteResponseData{
		FromToken:       fromToken.Symbol,
		ToToken:         toToken.Symbol,
		InputAmount:     utils.FormatAmount(amount, fromToken.Decimals),
		EstimatedOutput: utils.FormatAmount(output, toToken.Decimals),
		PriceImpact:     utils.FormatPercent(impact),
		Route:           route,
		GasEstimate:     q.market.EstimateGas(fromToken.Symbol, toToken.Symbol),
		Slippage:        utils.FormatPercent(slippage),
		ValidUntil:      time.Now().UTC().Add(quoteValidity),
	}

	q.log.Info("quote generated",
		zap.String("pair", fromToken.Symbol+"/"+toToken.Symbol),
		zap.String("amount", data.InputAmount),
		zap.Int("hops", len(route)),
	)

	return responses.OkMsg(data, "Quote retrieved successfully"), nil
}

func (q *quoteService) CurrentPrice(ctx context.Context, req *requests.GetPriceRequest) (*responses.Response[*responses.PriceResponseData], error) {
	if err := sleep(ctx, q.rand.Jitter(50*time.Millisecond, 150*time.Millisecond)); err != nil {
		return nil, err
	}

	from := strings.ToUpper(strings.TrimSpace(req.FromToken))
	to := strings.ToUpper(strings.TrimSpace(req.ToToken))
	if _, ok := q.market.TokenBySymbol(from); !ok {
		return nil, errors.NewTokenNotFoundError(from)
	}
	if _, ok := q.market.TokenBySymbol(to); !ok {
		return nil, errors.NewTokenNotFoundError(to)
	}

	rate, ok := q.market.ExchangeRate(from, to)
	if !ok {
		return nil, errors.NewPairNotSupportedError(from, to)
	}

	return responses.Ok(&responses.PriceResponseData{
		FromToken: from,
		ToToken:   to,
		Price:     rate,
	}), nil
}

// PriceHistory fabricates an hourly series around the table rate with a
// small, bounded variation.
func (q *quoteService) PriceHistory(ctx context.Context, req *requests.GetPriceHistoryRequest) (*responses.Response[*responses.PriceHistoryResponseData], error) {
	if err := sleep(ctx, q.rand.Jitter(200*time.Millisecond, 500*time.Millisecond)); err != nil {
		return nil, err
	}

	from := strings.ToUpper(strings.TrimSpace(req.FromToken))
	to := strings.ToUpper(strings.TrimSpace(req.ToToken))
	base, ok := q.market.ExchangeRate(from, to)
	if !ok {
		return nil, errors.NewPairNotSupportedError(from, to)
	}

	now := time.Now().UTC()
	history := make([]responses.PricePoint, req.Hours)
	for i := 0; i < req.Hours; i++ {
		variation := (q.rand.Float64() - 0.5) * 0.04
		history[req.Hours-1-i] = responses.PricePoint{
			Timestamp: now.Add(-time.Duration(i) * time.Hour),
			Price:     base * (1 + variation),
		}
	}

	return responses.Ok(&responses.PriceHistoryResponseData{
		FromToken: from,
		ToToken:   to,
		Hours:     req.Hours,
		History:   history,
	}), nil
}
