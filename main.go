package main

import (
	"net/http"

	"github.com/autoswappr/autoswap-go/config"
	"github.com/autoswappr/autoswap-go/handlers"
	"github.com/autoswappr/autoswap-go/services"
	"github.com/madflojo/tasks"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			NewHttpServer,
			fx.Annotate(
				NewServeMux,
				fx.ParamTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewHealthHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewQuoteHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewSwapHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewStatusHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewApproveHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			handlers.NewMiddlewareHandler,
			services.NewMarketService,
			services.NewQuoteService,
			services.NewSwapService,
			services.NewStatusService,
			services.NewApproveService,
			services.NewSchedulerService,
			services.NewRand,
			config.Load,
			tasks.New,
			zap.NewProduction,
		),
		fx.Invoke(func(*http.Server) {}),
		fx.Invoke(func(services.SchedulerService) {}),
	).Run()
}
