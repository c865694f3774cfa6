package services

import (
	"context"
	"strings"
)

// KeywordRanker scores candidates by the fraction of query terms their
// text contains. It is both a standalone strategy and the fallback for
// the LLM-guided one.
type KeywordRanker struct{}

func NewKeywordRanker() *KeywordRanker {
	return &KeywordRanker{}
}

func (r *KeywordRanker) Rank(ctx context.Context, query string, docs []Document) []ScoredDocument {
	scored := neutralScores(docs)
	terms := queryTerms(query)
	if len(terms) == 0 {
		return scored
	}

	for i, doc := range docs {
		scored[i].Score = keywordScore(terms, doc.Text)
	}

	sortByScore(scored)
	return scored
}

func queryTerms(query string) []string {
	var terms []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		word = strings.Trim(word, ".,!?\"'")
		if len(word) > 2 {
			terms = append(terms, word)
		}
	}
	return terms
}

func keywordScore(terms []string, text string) float64 {
	lower := strings.ToLower(text)
	matched := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}
