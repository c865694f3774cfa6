package embedding_fx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvideEmbeddingClients,
)

// EmbeddingConfig holds configuration for embedding clients
type EmbeddingConfig struct {
	Provider string
	APIKey   string
	Model    string
}

const embeddingCacheTTL = 12 * time.Hour

// ProvideEmbeddingClients creates the provider-selected client and
// exposes its two capabilities: embedding (behind an in-process cache)
// and generative keyword extraction.
func ProvideEmbeddingClients() (utils.EmbeddingClientInterface, utils.KeywordExtractorInterface, error) {
	config := getEmbeddingConfig()

	log.Printf("Initializing %s embedding client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		client := utils.NewOpenAIEmbeddingClient(config.APIKey, config.Model)
		return mem.NewCachedEmbeddingClient(client, embeddingCacheTTL), client, nil
	case "gemini":
		client, err := utils.NewGeminiEmbeddingClient(config.APIKey, config.Model)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return mem.NewCachedEmbeddingClient(client, embeddingCacheTTL), client, nil
	default:
		return nil, nil, fmt.Errorf("unsupported embedding provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func getEmbeddingConfig() EmbeddingConfig {
	provider := getEnvWithDefault("EMBEDDING_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "text-embedding-3-small")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return EmbeddingConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
