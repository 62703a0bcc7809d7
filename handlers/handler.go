package handlers

import (
	"net/http"

	"github.com/autoswappr/autoswap-go/services"
	"go.uber.org/zap"
)

type handler struct {
	marketService  services.MarketService
	quoteService   services.QuoteService
	swapService    services.SwapService
	statusService  services.StatusService
	approveService services.ApproveService
	middlewares    MiddleWareHandler

	log *zap.Logger
}

type Handler interface {
	ServeHttp(*http.ServeMux)
}
