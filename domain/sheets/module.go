package sheets

import (
	"go.uber.org/fx"
)

// Module provides the sheets configuration. The Appender itself is built by
// the preregistration module only when the submission mode needs it.
var Module = fx.Module("sheets",
	fx.Provide(NewConfig),
)
