package mem

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/pgvector/pgvector-go"

	"voyago/pkg/utils"
)

type cachedVector struct {
	vector    pgvector.Vector
	expiresAt time.Time
}

// CachedEmbeddingClient memoizes embedding lookups in process. Catalog
// descriptions never change after seeding, so a content-hash key with a
// generous TTL keeps repeat rankings from re-calling the provider.
type CachedEmbeddingClient struct {
	inner utils.EmbeddingClientInterface
	ttl   time.Duration

	mu   sync.RWMutex
	data map[string]cachedVector
}

func NewCachedEmbeddingClient(inner utils.EmbeddingClientInterface, ttl time.Duration) *CachedEmbeddingClient {
	return &CachedEmbeddingClient{
		inner: inner,
		ttl:   ttl,
		data:  make(map[string]cachedVector),
	}
}

func cacheKey(text string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(text)))[:16]
}

func (c *CachedEmbeddingClient) get(key string) (pgvector.Vector, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.data[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return pgvector.Vector{}, false
	}
	return entry.vector, true
}

func (c *CachedEmbeddingClient) set(key string, vector pgvector.Vector) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cachedVector{vector: vector, expiresAt: time.Now().Add(c.ttl)}

	if len(c.data) > 1000 {
		now := time.Now()
		for k, entry := range c.data {
			if now.After(entry.expiresAt) {
				delete(c.data, k)
			}
		}
	}
}

func (c *CachedEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	key := cacheKey(text)
	if vector, ok := c.get(key); ok {
		return vector, nil
	}

	vector, err := c.inner.GetEmbedding(ctx, text)
	if err != nil {
		return pgvector.Vector{}, err
	}
	c.set(key, vector)
	return vector, nil
}

func (c *CachedEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	vectors := make([]pgvector.Vector, len(texts))
	var missing []string
	var missingIdx []int

	for i, text := range texts {
		if vector, ok := c.get(cacheKey(text)); ok {
			vectors[i] = vector
		} else {
			missing = append(missing, text)
			missingIdx = append(missingIdx, i)
		}
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	fetched, err := c.inner.GetEmbeddings(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(fetched) != len(missing) {
		return nil, fmt.Errorf("embedding cache: expected %d vectors, got %d", len(missing), len(fetched))
	}

	for i, vector := range fetched {
		idx := missingIdx[i]
		vectors[idx] = vector
		c.set(cacheKey(texts[idx]), vector)
	}
	return vectors, nil
}
