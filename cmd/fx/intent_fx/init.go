package intent_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
)

var Module = fx.Provide(provideIntentService)

func provideIntentService() services.IntentServiceInterface {
	return services.NewIntentService()
}
