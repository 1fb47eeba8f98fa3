package preregistration

import (
	"go.uber.org/fx"
)

var Module = fx.Module("preregistration",
	fx.Provide(
		NewSubmitter,
		NewService,
		NewHandler,
		NewRateLimiter,
	),
	fx.Invoke(RegisterRoutes),
)
