package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/models"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureBindError(t *testing.T, f func()) apperrors.AppError {
	t.Helper()
	var appErr apperrors.AppError
	func() {
		defer func() {
			rec := recover()
			require.NotNil(t, rec, "expected Bind to panic")
			var ok bool
			appErr, ok = rec.(apperrors.AppError)
			require.True(t, ok, "panic value is not an AppError: %v", rec)
		}()
		f()
	}()
	return appErr
}

func TestBindQueryParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/quote?fromToken=ETH&toToken=USDC&amount=1.5", nil)

	req := Bind[requests.GetQuoteRequest](r)
	assert.Equal(t, "ETH", req.FromToken)
	assert.Equal(t, "USDC", req.ToToken)
	assert.Equal(t, "1.5", req.Amount)
}

func TestBindMissingParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/quote?fromToken=ETH", nil)

	appErr := captureBindError(t, func() { Bind[requests.GetQuoteRequest](r) })
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, apperrors.ErrMissingParameters, appErr.Code)
	assert.Len(t, appErr.Details, 2)
	assert.Equal(t, "toToken", appErr.Details[0].Field)
}

func TestBindMalformedAmount(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/quote?fromToken=ETH&toToken=USDC&amount=abc", nil)

	appErr := captureBindError(t, func() { Bind[requests.GetQuoteRequest](r) })
	assert.Equal(t, apperrors.ErrInvalidAmount, appErr.Code)
}

func TestBindPathValue(t *testing.T) {
	hash := "0x" + strings.Repeat("ab", 32)
	r := httptest.NewRequest(http.MethodGet, "/api/status/"+hash, nil)
	r.SetPathValue("transaction_hash", hash)

	req := Bind[requests.GetStatusRequest](r)
	assert.Equal(t, hash, req.TransactionHash)
}

func TestBindMalformedTransactionHash(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/status/0xabc", nil)
	r.SetPathValue("transaction_hash", "0xabc")

	appErr := captureBindError(t, func() { Bind[requests.GetStatusRequest](r) })
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, apperrors.ErrInvalidTransactionHash, appErr.Code)
}

func TestBindAppliesDefaults(t *testing.T) {
	hash := "0x" + strings.Repeat("cd", 32)
	r := httptest.NewRequest(http.MethodGet, "/api/status/"+hash+"/wait", nil)
	r.SetPathValue("transaction_hash", hash)

	req := Bind[requests.WaitStatusRequest](r)
	assert.Equal(t, 300, req.Timeout)
}

func TestBindTimeoutOutOfRange(t *testing.T) {
	hash := "0x" + strings.Repeat("cd", 32)
	r := httptest.NewRequest(http.MethodGet, "/api/status/"+hash+"/wait?timeout=9999", nil)
	r.SetPathValue("transaction_hash", hash)

	appErr := captureBindError(t, func() { Bind[requests.WaitStatusRequest](r) })
	assert.Equal(t, apperrors.ErrInvalidTimeout, appErr.Code)
}

func TestBindJSONBody(t *testing.T) {
	body := `{"fromToken":"ETH","toToken":"USDC","amount":"1","slippage":"2"}`
	r := httptest.NewRequest(http.MethodPost, "/api/swap", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	req := Bind[requests.ExecuteSwapRequest](r)
	assert.Equal(t, "ETH", req.FromToken)
	assert.Equal(t, models.Double(2), req.Slippage)
}

func TestBindJSONBodyDefaultSlippage(t *testing.T) {
	body := `{"fromToken":"ETH","toToken":"USDC","amount":"1"}`
	r := httptest.NewRequest(http.MethodPost, "/api/swap", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	req := Bind[requests.ExecuteSwapRequest](r)
	assert.Equal(t, models.Double(0.5), req.Slippage)
}

func TestBindRejectsMalformedBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/swap", strings.NewReader("{nope"))
	r.Header.Set("Content-Type", "application/json")

	appErr := captureBindError(t, func() { Bind[requests.ExecuteSwapRequest](r) })
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
}

func TestBindAmountWeiFormat(t *testing.T) {
	body := `{"token":"USDC","amountWei":"not-a-number"}`
	r := httptest.NewRequest(http.MethodPost, "/api/approve", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	appErr := captureBindError(t, func() { Bind[requests.ApproveRequest](r) })
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "amountWei", appErr.Details[0].Field)
}
