package handlers

import (
	"net/http"

	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/parser"
	"github.com/autoswappr/autoswap-go/services"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/autoswappr/autoswap-go/types/responses"
	"github.com/autoswappr/autoswap-go/utils"
	"go.uber.org/zap"
)

type SwapHandler interface {
	ExecuteSwap(w http.ResponseWriter, r *http.Request)
	ParseCommand(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewSwapHandler(swapService services.SwapService, quoteService services.QuoteService, middlewares MiddleWareHandler, log *zap.Logger) SwapHandler {
	return &swapHandler{
		handler: handler{swapService: swapService, quoteService: quoteService, middlewares: middlewares, log: log},
	}
}

type swapHandler struct {
	handler
}

func (s *swapHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/swap", s.middlewares.Protect(s.ExecuteSwap))
	mux.HandleFunc("POST /api/command", s.middlewares.Protect(s.ParseCommand))
}

func (s *swapHandler) ExecuteSwap(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.ExecuteSwapRequest](r)

	res, err := s.swapService.ExecuteSwap(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

// ParseCommand turns a chat instruction into a structured pair and quotes it.
func (s *swapHandler) ParseCommand(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.ParseCommandRequest](r)

	cmd, err := parser.ParseSwapCommand(req.Command)
	if err != nil {
		errors.NewValidationError(err.Error()).Serialize(w)
		return
	}

	quote, err := s.quoteService.GetQuote(r.Context(), &requests.GetQuoteRequest{
		FromToken: cmd.FromToken,
		ToToken:   cmd.ToToken,
		Amount:    cmd.Amount,
	})
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, responses.Ok(&responses.CommandResponseData{
		Command:   req.Command,
		FromToken: cmd.FromToken,
		ToToken:   cmd.ToToken,
		Amount:    cmd.Amount,
		Quote:     quote.Data,
	}))
}
