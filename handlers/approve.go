package handlers

import (
	"net/http"

	"github.com/autoswappr/autoswap-go/errors"
	"github.com/autoswappr/autoswap-go/services"
	"github.com/autoswappr/autoswap-go/types/requests"
	"github.com/autoswappr/autoswap-go/utils"
	"go.uber.org/zap"
)

type ApproveHandler interface {
	ApproveSpender(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewApproveHandler(approveService services.ApproveService, middlewares MiddleWareHandler, log *zap.Logger) ApproveHandler {
	return &approveHandler{
		handler: handler{approveService: approveService, middlewares: middlewares, log: log},
	}
}

type approveHandler struct {
	handler
}

func (a *approveHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/approve", a.middlewares.Protect(a.ApproveSpender))
}

func (a *approveHandler) ApproveSpender(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.ApproveRequest](r)

	res, err := a.approveService.ApproveSpender(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}
