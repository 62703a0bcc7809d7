package services

import (
	"context"
	"time"

	"github.com/autoswappr/autoswap-go/config"
	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/models"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/autoswappr/autoswap-go/types/responses"
	"github.com/autoswappr/autoswap-go/utils"
	"go.uber.org/zap"
)

const (
	minSlippagePct = 0.1
	maxSlippagePct = 50.0

	// simulated probability of a swap reverting on-chain
	swapFailureRate = 0.05
)

type SwapService interface {
	ExecuteSwap(ctx context.Context, req *requests.ExecuteSwapRequest) (*responses.Response[*responses.SwapResponseData], error)
}

func NewSwapService(cfg *config.Config, market MarketService, status StatusService, rand Rand, log *zap.Logger) SwapService {
	return &swapService{
		service: service{cfg: cfg, market: market, status: status, rand: rand, log: log},
	}
}

type swapService struct {
	service
}

func (s *swapService) ExecuteSwap(ctx context.Context, req *requests.ExecuteSwapRequest) (*responses.Response[*responses.SwapResponseData], error) {
	// simulated transaction submission latency
	if err := sleep(ctx, s.rand.Jitter(300*time.Millisecond, 800*time.Millisecond)); err != nil {
		return nil, err
	}

	fromToken, ok := s.market.TokenBySymbol(req.FromToken)
	if !ok {
		return nil, errors.NewTokenNotFoundError(req.FromToken)
	}
	toToken, ok := s.market.TokenBySymbol(req.ToToken)
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

	slippage := clampSlippage(float64(req.Slippage), s.cfg.DefaultSlippagePct())
	output, err := s.market.OutputAmount(amount, fromToken.Symbol, toToken.Symbol, slippage)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if s.rand.Float64() < swapFailureRate {
		s.log.Warn("mock swap reverted",
			zap.String("pair", fromToken.Symbol+"/"+toToken.Symbol),
			zap.String("amount", req.Amount),
		)
		return responses.Ok(&responses.SwapResponseData{
			Status:      "failed",
			FromToken:   fromToken.Symbol,
			ToToken:     toToken.Symbol,
			InputAmount: utils.FormatAmount(amount, fromToken.Decimals),
			Error:       "Transaction failed: Insufficient liquidity",
			Timestamp:   now,
		}), nil
	}

	hash := MockTransactionHash(s.rand)

	// seed the tracker so the hash is immediately pollable
	s.status.Track(&models.TransactionRecord{
		TransactionHash: hash,
		Status:          models.TxPending,
		Confirmations:   0,
		CreatedAt:       now,
		UpdatedAt:       now,
	})

	data := &responses.SwapResponseData{
		Status:          "success",
		TransactionHash: hash,
		FromToken:       fromToken.Symbol,
		ToToken:         toToken.Symbol,
		InputAmount:     utils.FormatAmount(amount, fromToken.Decimals),
		OutputAmount:    utils.FormatAmount(output, toToken.Decimals),
		GasUsed:         s.market.EstimateGas(fromToken.Symbol, toToken.Symbol),
		Timestamp:       now,
	}

	s.log.Info("mock swap submitted",
		zap.String("pair", fromToken.Symbol+"/"+toToken.Symbol),
		zap.String("tx", hash),
	)

	return responses.Ok(data), nil
}

// clampSlippage bounds the requested tolerance to [0.1, 50] percent,
// falling back to the configured default when unset.
func clampSlippage(requested, fallback float64) float64 {
	v := requested
	if v == 0 {
		v = fallback
	}
	if v < minSlippagePct {
		return minSlippagePct
	}
	if v > maxSlippagePct {
		return maxSlippagePct
	}
	return v
}
