package email

import (
	"go.uber.org/fx"
)

// Module provides the email notification collaborator.
// Uses Mailgun when configured, otherwise a no-op sender.
var Module = fx.Module("email",
	fx.Provide(
		NewConfig,
		NewTemplateService,
		NewSender,
		NewNotifier,
	),
)
