package services

import (
	"context"
	"log"
	"math"
	"time"

	"voyago/pkg/utils"
)

const defaultEmbeddingTimeout = 10 * time.Second

// EmbeddingRanker is the canonical strategy: embed the query once, embed
// every candidate in one batch, score by cosine similarity. Any provider
// failure degrades the whole pass to neutral scores in retrieval order.
type EmbeddingRanker struct {
	client  utils.EmbeddingClientInterface
	timeout time.Duration
}

func NewEmbeddingRanker(client utils.EmbeddingClientInterface) *EmbeddingRanker {
	return &EmbeddingRanker{
		client:  client,
		timeout: defaultEmbeddingTimeout,
	}
}

func (r *EmbeddingRanker) Rank(ctx context.Context, query string, docs []Document) []ScoredDocument {
	scored := neutralScores(docs)
	if len(docs) == 0 {
		return scored
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	queryVector, err := r.client.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Embedding provider unavailable, falling back to catalog order: %v", err)
		return scored
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}

	candidateVectors, err := r.client.GetEmbeddings(ctx, texts)
	if err != nil || len(candidateVectors) != len(docs) {
		log.Printf("Embedding provider unavailable for candidates, falling back to catalog order: %v", err)
		return scored
	}

	queryValues := queryVector.Slice()
	for i := range docs {
		scored[i].Score = CosineSimilarity(queryValues, candidateVectors[i].Slice())
	}

	sortByScore(scored)
	return scored
}

// CosineSimilarity is the dot product over the product of Euclidean
// norms. A zero-norm side scores 0 rather than dividing by zero.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
