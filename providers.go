package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MadAppGang/httplog"
	lzap "github.com/MadAppGang/httplog/zap"
	"github.com/autoswappr/autoswap-go/config"
	"github.com/autoswappr/autoswap-go/handlers"
	gh "github.com/gorilla/handlers"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewHttpServer(lc fx.Lifecycle, cfg *config.Config, mux *http.ServeMux, log *zap.Logger) *http.Server {
	root := gh.CORS(
		gh.AllowedOrigins([]string{"*"}),
		gh.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gh.AllowedHeaders([]string{"Content-Type", "x-api-key"}),
	)(httplog.LoggerWithFormatterAndName(
		"autoswap",
		lzap.ZapLogger(log, zap.InfoLevel, "request"),
	)(mux))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: root,
		// the status wait endpoint may hold a response open for up to
		// ten minutes, so writes are not bounded here
		WriteTimeout: 0,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			fmt.Println("Starting HTTP server at", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

func NewServeMux(routers []handlers.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	for _, router := range routers {
		router.ServeHttp(mux)
	}
	return mux
}
