package bootstrap

import (
	"hotel-front-desk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	CatalogModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
