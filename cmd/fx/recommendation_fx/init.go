package recommendation_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/services"
)

var Module = fx.Provide(
	ProvideRecommendationService,
	ProvideRecommendationController)

func ProvideRecommendationService(
	intentService services.IntentServiceInterface,
	catalogService services.CatalogServiceInterface,
	ranker services.RankingStrategy,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(
		intentService,
		catalogService,
		ranker,
	)
}

func ProvideRecommendationController(
	recommendationService services.RecommendationServiceInterface,
) *controllers.RecommendationController {
	return controllers.NewRecommendationController(recommendationService)
}
