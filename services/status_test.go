package services

import (
	"context"
	"testing"
	"time"

	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/models"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testHash = "0x1111111111111111111111111111111111111111111111111111111111111111"

func newStatus(r Rand) *statusService {
	return NewStatusService(r, zap.NewNop()).(*statusService)
}

func poll(t *testing.T, svc StatusService, hash string) *models.TransactionRecord {
	t.Helper()
	res, err := svc.GetTransactionStatus(context.Background(), &requests.GetStatusRequest{TransactionHash: hash})
	require.NoError(t, err)
	return res.Data
}

func trackPending(svc StatusService, hash string, age time.Duration) {
	at := time.Now().UTC().Add(-age)
	svc.Track(&models.TransactionRecord{
		TransactionHash: hash,
		Status:          models.TxPending,
		Confirmations:   1,
		CreatedAt:       at,
		UpdatedAt:       at,
	})
}

func TestFirstSightNotFound(t *testing.T) {
	svc := newStatus(&FixedRand{Floats: []float64{0.1}})

	rec := poll(t, svc, testHash)
	assert.Equal(t, models.TxNotFound, rec.Status)

	// the verdict sticks
	rec = poll(t, svc, testHash)
	assert.Equal(t, models.TxNotFound, rec.Status)
}

func TestFirstSightPending(t *testing.T) {
	svc := newStatus(&FixedRand{Floats: []float64{0.5}, Ints: []int{3}})

	rec := poll(t, svc, testHash)
	assert.Equal(t, models.TxPending, rec.Status)
	assert.Equal(t, 3, rec.Confirmations)
	assert.Empty(t, rec.BlockNumber)
}

func TestYoungPendingDoesNotRoll(t *testing.T) {
	// a 0.0 roll would complete the record if it were old enough
	svc := newStatus(&FixedRand{Floats: []float64{0.0}})
	trackPending(svc, testHash, 30*time.Second)

	rec := poll(t, svc, testHash)
	assert.Equal(t, models.TxPending, rec.Status)
	assert.Equal(t, 1, rec.Confirmations)
}

func TestAgedPendingCompletes(t *testing.T) {
	svc := newStatus(&FixedRand{Floats: []float64{0.69, 0.5}})
	trackPending(svc, testHash, 3*time.Minute)

	rec := poll(t, svc, testHash)
	assert.Equal(t, models.TxSuccess, rec.Status)
	assert.Equal(t, 1, rec.Confirmations)
	assert.NotEmpty(t, rec.BlockNumber)
	assert.NotEmpty(t, rec.GasUsed)
	assert.NotEmpty(t, rec.EffectiveGasPrice)
	assert.Empty(t, rec.Error)
}

func TestAgedPendingFails(t *testing.T) {
	svc := newStatus(&FixedRand{Floats: []float64{0.75, 0.5}, Ints: []int{2, 0}})
	trackPending(svc, testHash, 3*time.Minute)

	rec := poll(t, svc, testHash)
	assert.Equal(t, models.TxFailed, rec.Status)
	assert.Equal(t, failureReasons[2], rec.Error)
	assert.NotEmpty(t, rec.BlockNumber)
	assert.NotEmpty(t, rec.GasUsed)
}

func TestAgedPendingMayStayPending(t *testing.T) {
	svc := newStatus(&FixedRand{Floats: []float64{0.9}})
	trackPending(svc, testHash, 3*time.Minute)

	rec := poll(t, svc, testHash)
	assert.Equal(t, models.TxPending, rec.Status)
}

func TestSuccessDeepensUntilCap(t *testing.T) {
	svc := newStatus(&FixedRand{})
	now := time.Now().UTC()
	svc.Track(&models.TransactionRecord{
		TransactionHash: testHash,
		Status:          models.TxSuccess,
		Confirmations:   maxConfirmations - 1,
		CreatedAt:       now,
		UpdatedAt:       now,
	})

	rec := poll(t, svc, testHash)
	assert.Equal(t, maxConfirmations, rec.Confirmations)

	rec = poll(t, svc, testHash)
	assert.Equal(t, maxConfirmations, rec.Confirmations)
	assert.Equal(t, models.TxSuccess, rec.Status)
}

func TestFailedNeverReverts(t *testing.T) {
	// a 0.0 roll would otherwise complete a pending record
	svc := newStatus(&FixedRand{Floats: []float64{0.0}})
	at := time.Now().UTC().Add(-10 * time.Minute)
	svc.Track(&models.TransactionRecord{
		TransactionHash: testHash,
		Status:          models.TxFailed,
		Error:           failureReasons[0],
		CreatedAt:       at,
		UpdatedAt:       at,
	})

	rec := poll(t, svc, testHash)
	assert.Equal(t, models.TxFailed, rec.Status)
	assert.Equal(t, failureReasons[0], rec.Error)
}

func TestGetStatusReturnsSnapshot(t *testing.T) {
	svc := newStatus(&FixedRand{})
	trackPending(svc, testHash, 0)

	rec := poll(t, svc, testHash)
	rec.Status = models.TxFailed

	assert.Equal(t, models.TxPending, poll(t, svc, testHash).Status)
}

func TestListTransactionsIncludesFixtures(t *testing.T) {
	svc := newStatus(&FixedRand{})

	res, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Data.Count)
	assert.Len(t, res.Data.Transactions, 2)
}

func TestCleanupEvictsOnlyOldTerminal(t *testing.T) {
	svc := newStatus(&FixedRand{})
	old := time.Now().UTC().Add(-2 * time.Hour)

	svc.Track(&models.TransactionRecord{
		TransactionHash: testHash,
		Status:          models.TxSuccess,
		CreatedAt:       old,
		UpdatedAt:       old,
	})
	svc.Track(&models.TransactionRecord{
		TransactionHash: "0x2222222222222222222222222222222222222222222222222222222222222222",
		Status:          models.TxPending,
		CreatedAt:       old,
		UpdatedAt:       old,
	})

	// fixtures are terminal-or-pending but only minutes old
	assert.Equal(t, 1, svc.Cleanup(time.Hour))

	res, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Data.Count)
}

func TestWaitReturnsImmediatelyOnTerminal(t *testing.T) {
	svc := newStatus(&FixedRand{})
	now := time.Now().UTC()
	svc.Track(&models.TransactionRecord{
		TransactionHash: testHash,
		Status:          models.TxSuccess,
		Confirmations:   5,
		CreatedAt:       now,
		UpdatedAt:       now,
	})

	res, err := svc.WaitForTransaction(context.Background(), &requests.WaitStatusRequest{
		TransactionHash: testHash,
		Timeout:         300,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TxSuccess, res.Data.Status)
}

func TestWaitTimesOut(t *testing.T) {
	svc := newStatus(&FixedRand{Floats: []float64{0.9}})
	svc.pollInterval = time.Millisecond
	trackPending(svc, testHash, 0)

	_, err := svc.WaitForTransaction(context.Background(), &requests.WaitStatusRequest{
		TransactionHash: testHash,
		Timeout:         0,
	})
	require.Error(t, err)
	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.ErrTimeout, appErr.Code)
	assert.Equal(t, 408, appErr.HTTPCode)
}

func TestWaitResolvesOncePendingCompletes(t *testing.T) {
	svc := newStatus(&FixedRand{Floats: []float64{0.5, 0.5}})
	svc.pollInterval = time.Millisecond
	trackPending(svc, testHash, 3*time.Minute)

	res, err := svc.WaitForTransaction(context.Background(), &requests.WaitStatusRequest{
		TransactionHash: testHash,
		Timeout:         10,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TxSuccess, res.Data.Status)
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	svc := newStatus(&FixedRand{})
	trackPending(svc, testHash, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.WaitForTransaction(ctx, &requests.WaitStatusRequest{
		TransactionHash: testHash,
		Timeout:         300,
	})
	require.Error(t, err)
}
