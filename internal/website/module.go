package website

import (
	"go.uber.org/fx"

	"github.com/comdbstn/fashionking/domain/preregistration"
)

var Module = fx.Module("website",
	fx.Provide(
		fx.Annotate(
			func(s *preregistration.Service) *preregistration.Service { return s },
			fx.As(new(Registrar)),
		),
		NewHandler,
		NewAssets,
	),
	fx.Invoke(RegisterRoutes),
)
