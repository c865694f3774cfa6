package services

import (
	"context"
	"log"
	"strings"
	"time"

	"voyago/pkg/utils"
)

// LLMKeywordRanker asks a generative model to distill the message into
// preference keywords, then scores candidates by keyword hits. When the
// model is unavailable or returns unparseable output, the pass falls
// back to plain containment ranking over the raw message.
type LLMKeywordRanker struct {
	extractor utils.KeywordExtractorInterface
	fallback  *KeywordRanker
	timeout   time.Duration
}

func NewLLMKeywordRanker(extractor utils.KeywordExtractorInterface) *LLMKeywordRanker {
	return &LLMKeywordRanker{
		extractor: extractor,
		fallback:  NewKeywordRanker(),
		timeout:   defaultEmbeddingTimeout,
	}
}

func (r *LLMKeywordRanker) Rank(ctx context.Context, query string, docs []Document) []ScoredDocument {
	if len(docs) == 0 {
		return neutralScores(docs)
	}

	extractCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	keywords, err := r.extractor.ExtractPreferenceKeywords(extractCtx, query)
	if err != nil || len(keywords) == 0 {
		log.Printf("Keyword extraction failed, falling back to containment ranking: %v", err)
		return r.fallback.Rank(ctx, query, docs)
	}

	scored := neutralScores(docs)
	for i, doc := range docs {
		scored[i].Score = keywordHits(keywords, doc.Text)
	}

	sortByScore(scored)
	return scored
}

func keywordHits(keywords []string, text string) float64 {
	lower := strings.ToLower(text)
	hits := 0
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(lower, keyword) {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}
