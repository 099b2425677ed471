package components

import (
	"hotel-front-desk/internal/handler"
	"hotel-front-desk/internal/handler/api"
	"hotel-front-desk/internal/handler/middleware"
	"hotel-front-desk/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewReservationHandler,
		api.NewFrontDeskHandler,
		api.NewCheckoutHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
