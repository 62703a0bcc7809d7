package handlers

import (
	"net/http"

	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/services"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/autoswappr/autoswap-go/utils"
	"go.uber.org/zap"
)

type QuoteHandler interface {
	GetQuote(w http.ResponseWriter, r *http.Request)
	GetPrice(w http.ResponseWriter, r *http.Request)
	GetPriceHistory(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewQuoteHandler(quoteService services.QuoteService, middlewares MiddleWareHandler, log *zap.Logger) QuoteHandler {
	return &quoteHandler{
		handler: handler{quoteService: quoteService, middlewares: middlewares, log: log},
	}
}

type quoteHandler struct {
	handler
}

func (q *quoteHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/quote", q.middlewares.Protect(q.GetQuote))
	mux.HandleFunc("GET /api/quote/price", q.middlewares.Protect(q.GetPrice))
	mux.HandleFunc("GET /api/quote/history", q.middlewares.Protect(q.GetPriceHistory))
}

func (q *quoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.GetQuoteRequest](r)

	res, err := q.quoteService.GetQuote(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

func (q *quoteHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.GetPriceRequest](r)

	res, err := q.quoteService.CurrentPrice(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

func (q *quoteHandler) GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.GetPriceHistoryRequest](r)

	res, err := q.quoteService.PriceHistory(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}
