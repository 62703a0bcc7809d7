package handlers

import (
	"net/http"
	"time"

	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/services"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/autoswappr/autoswap-go/types/responses"
	"github.com/autoswappr/autoswap-go/utils"
	"go.uber.org/zap"
)

type StatusHandler interface {
	GetTransactionStatus(w http.ResponseWriter, r *http.Request)
	WaitForTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	CleanupTransactions(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewStatusHandler(statusService services.StatusService, middlewares MiddleWareHandler, log *zap.Logger) StatusHandler {
	return &statusHandler{
		handler: handler{statusService: statusService, middlewares: middlewares, log: log},
	}
}

type statusHandler struct {
	handler
}

func (s *statusHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/status/{transaction_hash}", s.middlewares.Protect(s.GetTransactionStatus))
	mux.HandleFunc("GET /api/status/{transaction_hash}/wait", s.middlewares.Protect(s.WaitForTransaction))
	mux.HandleFunc("GET /api/status/transactions/all", s.middlewares.Protect(s.ListTransactions))
	mux.HandleFunc("POST /api/status/cleanup", s.middlewares.Protect(s.CleanupTransactions))
}

func (s *statusHandler) GetTransactionStatus(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.GetStatusRequest](r)

	res, err := s.statusService.GetTransactionStatus(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

func (s *statusHandler) WaitForTransaction(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.WaitStatusRequest](r)

	res, err := s.statusService.WaitForTransaction(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

func (s *statusHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	res, err := s.statusService.ListTransactions(r.Context())
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

func (s *statusHandler) CleanupTransactions(w http.ResponseWriter, r *http.Request) {
	evicted := s.statusService.Cleanup(time.Hour)

	utils.JSON(w, 200, responses.OkMsg(&responses.CleanupResponseData{Evicted: evicted}, "Old transactions cleaned up successfully"))
}
