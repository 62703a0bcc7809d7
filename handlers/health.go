package handlers

import (
	"net/http"
	"time"

	"github.com/autoswappr/autoswap-go/config"
	"github.com/autoswappr/autoswap-go/services"
	"github.com/autoswappr/autoswap-go/types/responses"
	"github.com/autoswappr/autoswap-go/utils"
	"go.uber.org/zap"
)

const version = "1.0.0"

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
	HealthDetailed(w http.ResponseWriter, r *http.Request)
	Ready(w http.ResponseWriter, r *http.Request)
	Live(w http.ResponseWriter, r *http.Request)
	Tokens(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewHealthHandler(cfg *config.Config, marketService services.MarketService, middlewares MiddleWareHandler, log *zap.Logger) HealthHandler {
	return &healthHandler{
		handler:   handler{marketService: marketService, middlewares: middlewares, log: log},
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

type healthHandler struct {
	handler
	cfg       *config.Config
	startedAt time.Time
}

func (h *healthHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.middlewares.Public(h.Health))
	mux.HandleFunc("GET /health/detailed", h.middlewares.Public(h.HealthDetailed))
	mux.HandleFunc("GET /ready", h.middlewares.Public(h.Ready))
	mux.HandleFunc("GET /live", h.middlewares.Public(h.Live))
	mux.HandleFunc("GET /tokens", h.middlewares.Public(h.Tokens))
}

func (h *healthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, 200, &responses.HealthResponseData{
		Status:      "ok",
		Timestamp:   time.Now().UTC(),
		Environment: h.cfg.Environment,
	})
}

func (h *healthHandler) HealthDetailed(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, 200, &responses.HealthResponseData{
		Status:      "ok",
		Timestamp:   time.Now().UTC(),
		Environment: h.cfg.Environment,
		Version:     version,
		UptimeSecs:  time.Since(h.startedAt).Seconds(),
		Network:     h.cfg.Network,
		Services: map[string]string{
			"database":   "mock",
			"blockchain": "mock",
			"autoswap":   "mock",
		},
	})
}

func (h *healthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, 200, map[string]string{"status": "ready"})
}

func (h *healthHandler) Live(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, 200, map[string]string{"status": "alive"})
}

func (h *healthHandler) Tokens(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, 200, responses.Ok(h.marketService.Tokens()))
}
