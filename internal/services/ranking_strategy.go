package services

import (
	"context"
	"sort"
)

// Document is one candidate in a ranking pass. Index points back at the
// caller's candidate slice; scores are re-associated by it, never by
// arrival order.
type Document struct {
	Index int
	Text  string
}

type ScoredDocument struct {
	Index int
	Score float64
}

// RankingStrategy orders candidates by relevance to a free-text query.
// Implementations must return a permutation of their input and must
// degrade internally (neutral scores, retrieval order) instead of
// failing the ranking pass.
type RankingStrategy interface {
	Rank(ctx context.Context, query string, docs []Document) []ScoredDocument
}

// neutralScores is the degraded result: input order, every score zero.
func neutralScores(docs []Document) []ScoredDocument {
	scored := make([]ScoredDocument, len(docs))
	for i, doc := range docs {
		scored[i] = ScoredDocument{Index: doc.Index}
	}
	return scored
}

// sortByScore orders descending by score. The sort is stable so ties
// keep the candidates' retrieval order; there is no secondary key.
func sortByScore(scored []ScoredDocument) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}
