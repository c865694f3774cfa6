package ranking_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(ProvideRankingStrategy)

// ProvideRankingStrategy selects the ranking strategy from the
// RANKING_STRATEGY env var. Embedding cosine similarity is the default;
// the others exist for environments without an embedding provider.
func ProvideRankingStrategy(
	embeddingClient utils.EmbeddingClientInterface,
	keywordExtractor utils.KeywordExtractorInterface,
) services.RankingStrategy {
	strategy := os.Getenv("RANKING_STRATEGY")

	switch strings.ToLower(strategy) {
	case "keyword":
		log.Println("Using keyword containment ranking strategy")
		return services.NewKeywordRanker()
	case "llm":
		log.Println("Using LLM-guided keyword ranking strategy")
		return services.NewLLMKeywordRanker(keywordExtractor)
	default:
		log.Println("Using embedding similarity ranking strategy")
		return services.NewEmbeddingRanker(embeddingClient)
	}
}
