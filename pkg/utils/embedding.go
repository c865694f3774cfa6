package utils

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingClientInterface is the capability the ranking layer depends on.
// GetEmbeddings is batched: the returned slice is index-aligned with the
// input texts regardless of how the provider orders its response.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
}

// KeywordExtractorInterface is the generative capability behind the
// LLM-guided ranking strategy.
type KeywordExtractorInterface interface {
	ExtractPreferenceKeywords(ctx context.Context, message string) ([]string, error)
}
