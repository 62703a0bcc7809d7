package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/models"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/autoswappr/autoswap-go/types/responses"
	"go.uber.org/zap"
)

const (
	// a pending transaction only rolls for a terminal state once it is
	// older than this; state advances on polls, never in the background
	pendingAgeThreshold = 2 * time.Minute

	// confirmation depth cap for repeatedly polled successful records
	maxConfirmations = 64

	statusPollInterval = 5 * time.Second
)

// failureReasons is the fixed message set for fabricated revert errors.
var failureReasons = []string{
	"Insufficient balance for swap",
	"Trading pair not supported",
	"Price changed too much, increase slippage tolerance",
	"Network error occurred",
	"Invalid amount specified",
	"Token not found or not supported",
}

// StatusService tracks mock transactions in a process-wide map. Records
// are created on first query of an unseen hash and mutated in place on
// subsequent polls; terminal states never revert.
type StatusService interface {
	GetTransactionStatus(ctx context.Context, req *requests.GetStatusRequest) (*responses.Response[*models.TransactionRecord], error)
	WaitForTransaction(ctx context.Context, req *requests.WaitStatusRequest) (*responses.Response[*models.TransactionRecord], error)
	ListTransactions(ctx context.Context) (*responses.Response[*responses.TransactionListData], error)

	// Track inserts or replaces a record, keyed by its hash.
	Track(rec *models.TransactionRecord)

	// Cleanup evicts terminal records whose last update is older than
	// maxAge and reports how many were removed.
	Cleanup(maxAge time.Duration) int
}

func NewStatusService(rand Rand, log *zap.Logger) StatusService {
	s := &statusService{
		service:      service{rand: rand, log: log},
		transactions: make(map[string]*models.TransactionRecord),
		pollInterval: statusPollInterval,
	}
	s.seedFixtures()
	return s
}

type statusService struct {
	service

	mu           sync.Mutex
	transactions map[string]*models.TransactionRecord
	pollInterval time.Duration
}

// seedFixtures preloads the demo transactions the frontend links to.
func (s *statusService) seedFixtures() {
	now := time.Now().UTC()
	s.Track(&models.TransactionRecord{
		TransactionHash: "0xabc123def4567890123456789012345678901234567890123456789012345678",
		Status:          models.TxSuccess,
		Confirmations:   12,
		BlockNumber:     "0x123456",
		GasUsed:         "0.001200 ETH",
		CreatedAt:       now.Add(-5 * time.Minute),
		UpdatedAt:       now.Add(-5 * time.Minute),
	})
	s.Track(&models.TransactionRecord{
		TransactionHash: "0xdef456abc7890123456789012345678901234567890123456789012345678901",
		Status:          models.TxPending,
		Confirmations:   2,
		CreatedAt:       now.Add(-time.Minute),
		UpdatedAt:       now.Add(-time.Minute),
	})
}

func (s *statusService) Track(rec *models.TransactionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[rec.TransactionHash] = rec
}

func (s *statusService) GetTransactionStatus(ctx context.Context, req *requests.GetStatusRequest) (*responses.Response[*models.TransactionRecord], error) {
	// simulated chain query latency
	if err := sleep(ctx, s.rand.Jitter(100*time.Millisecond, 300*time.Millisecond)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.transactions[req.TransactionHash]
	if !ok {
		rec = s.firstSight(req.TransactionHash)
		s.transactions[req.TransactionHash] = rec
	} else {
		s.advance(rec)
	}

	snapshot := *rec
	return responses.Ok(&snapshot), nil
}

// firstSight fabricates the record for a never-seen hash: 20% of hashes
// are treated as unknown to the chain, the rest enter the pending state.
func (s *statusService) firstSight(hash string) *models.TransactionRecord {
	now := time.Now().UTC()
	rec := &models.TransactionRecord{
		TransactionHash: hash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if s.rand.Float64() < 0.2 {
		rec.Status = models.TxNotFound
		return rec
	}
	rec.Status = models.TxPending
	rec.Confirmations = s.rand.Intn(5)
	return rec
}

// advance applies the poll-driven state machine. Callers hold the lock.
func (s *statusService) advance(rec *models.TransactionRecord) {
	now := time.Now().UTC()
	switch rec.Status {
	case models.TxPending:
		if now.Sub(rec.CreatedAt) > pendingAgeThreshold {
			roll := s.rand.Float64()
			switch {
			case roll < 0.7:
				s.complete(rec)
			case roll < 0.8:
				s.fail(rec)
			}
			// remaining 20%: stays pending
		}
	case models.TxSuccess:
		if rec.Confirmations < maxConfirmations {
			rec.Confirmations++
		}
	}
	rec.UpdatedAt = now
}

func (s *statusService) complete(rec *models.TransactionRecord) {
	rec.Status = models.TxSuccess
	rec.Confirmations = 1
	rec.BlockNumber = fmt.Sprintf("0x%x", 500000+s.rand.Intn(1000000))
	rec.GasUsed = fmt.Sprintf("%.6f ETH", 0.001+s.rand.Float64()*0.01)
	rec.EffectiveGasPrice = fmt.Sprintf("%d", 10000000000+s.rand.Intn(50000000000))
	s.log.Info("mock transaction confirmed", zap.String("tx", rec.TransactionHash))
}

// fail fabricates a revert: mined, gas spent, then errored.
func (s *statusService) fail(rec *models.TransactionRecord) {
	rec.Status = models.TxFailed
	rec.Error = failureReasons[s.rand.Intn(len(failureReasons))]
	rec.BlockNumber = fmt.Sprintf("0x%x", 500000+s.rand.Intn(1000000))
	rec.GasUsed = fmt.Sprintf("%.6f ETH", 0.001+s.rand.Float64()*0.01)
	s.log.Info("mock transaction failed",
		zap.String("tx", rec.TransactionHash),
		zap.String("reason", rec.Error),
	)
}

// WaitForTransaction polls until the record reaches a terminal state or
// the caller-supplied timeout (seconds) elapses.
func (s *statusService) WaitForTransaction(ctx context.Context, req *requests.WaitStatusRequest) (*responses.Response[*models.TransactionRecord], error) {
	deadline := time.Now().Add(time.Duration(req.Timeout) * time.Second)
	statusReq := &requests.GetStatusRequest{TransactionHash: req.TransactionHash}

	for {
		res, err := s.GetTransactionStatus(ctx, statusReq)
		if err != nil {
			return nil, err
		}
		if res.Data.Status.Terminal() {
			return res, nil
		}
		if time.Now().After(deadline) {
			return nil, errors.NewTimeoutError("Transaction confirmation timeout")
		}
		if err := sleep(ctx, s.pollInterval); err != nil {
			return nil, errors.NewTimeoutError("Transaction confirmation timeout")
		}
	}
}

func (s *statusService) ListTransactions(ctx context.Context) (*responses.Response[*responses.TransactionListData], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*models.TransactionRecord, 0, len(s.transactions))
	for _, rec := range s.transactions {
		snapshot := *rec
		list = append(list, &snapshot)
	}

	return responses.OkMsg(&responses.TransactionListData{
		Transactions: list,
		Count:        len(list),
	}, "All transactions retrieved successfully"), nil
}

func (s *statusService) Cleanup(maxAge time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for hash, rec := range s.transactions {
		if rec.Status.Terminal() && rec.UpdatedAt.Before(cutoff) {
			delete(s.transactions, hash)
			evicted++
		}
	}
	if evicted > 0 {
		s.log.Info("evicted old transactions", zap.Int("count", evicted))
	}
	return evicted
}
