package services

import (
	"context"
	"fmt"
	"time"

	"github.com/autoswappr/autoswap-go/config"
	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/autoswappr/autoswap-go/types/responses"
	"github.com/lucsky/cuid"
	"go.uber.org/zap"
)

// ApproveService mocks the ERC20 approve flow. No transaction is ever
// submitted; the response only pretends one was.
type ApproveService interface {
	ApproveSpender(ctx context.Context, req *requests.ApproveRequest) (*responses.Response[*responses.ApproveResponseData], error)
}

func NewApproveService(cfg *config.Config, market MarketService, rand Rand, log *zap.Logger) ApproveService {
	return &approveService{
		service: service{cfg: cfg, market: market, rand: rand, log: log},
	}
}

type approveService struct {
	service
}

func (a *approveService) ApproveSpender(ctx context.Context, req *requests.ApproveRequest) (*responses.Response[*responses.ApproveResponseData], error) {
	if err := sleep(ctx, a.rand.Jitter(100*time.Millisecond, 300*time.Millisecond)); err != nil {
		return nil, err
	}

	token, ok := a.market.TokenBySymbol(req.Token)
	if !ok {
		return nil, errors.NewTokenNotFoundError(req.Token)
	}

	spender := req.Spender
	if spender == "" {
		spender = a.cfg.AutoswapprAddress
	}

	a.log.Info("mock approval",
		zap.String("token", token.Symbol),
		zap.String("spender", spender),
		zap.String("amountWei", req.AmountWei),
	)

	data := &responses.ApproveResponseData{
		TransactionHash: MockTransactionHash(a.rand),
		Status:          "PENDING",
		Reference:       cuid.New(),
		Message:         fmt.Sprintf("Approval for %s submitted successfully.", token.Symbol),
	}

	return responses.Ok(data), nil
}
