package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbeddingClient maps text to a fixed two-dimensional vector:
// anything mentioning nature points one way, everything else the other.
// Unknown behavior is controlled by the fail flag and zeroFor set.
type fakeEmbeddingClient struct {
	fail    bool
	zeroFor map[string]bool
	calls   int
}

func (f *fakeEmbeddingClient) vectorFor(text string) pgvector.Vector {
	if f.zeroFor[text] {
		return pgvector.NewVector([]float32{0, 0})
	}
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "nature"):
		return pgvector.NewVector([]float32{1, 0})
	case strings.Contains(lower, "beach"):
		return pgvector.NewVector([]float32{0.5, 0.5})
	default:
		return pgvector.NewVector([]float32{0, 1})
	}
}

func (f *fakeEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	f.calls++
	if f.fail {
		return pgvector.Vector{}, errors.New("provider unavailable")
	}
	return f.vectorFor(text), nil
}

func (f *fakeEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("provider unavailable")
	}
	vectors := make([]pgvector.Vector, len(texts))
	for i, text := range texts {
		vectors[i] = f.vectorFor(text)
	}
	return vectors, nil
}

func TestEmbeddingRanker_OrdersBySimilarity(t *testing.T) {
	ranker := NewEmbeddingRanker(&fakeEmbeddingClient{})

	docs := []Document{
		{Index: 0, Text: "downtown shopping district"},
		{Index: 1, Text: "quiet nature reserve"},
		{Index: 2, Text: "beach resort"},
	}

	scored := ranker.Rank(context.Background(), "somewhere with nature", docs)

	require.Len(t, scored, 3)
	assert.Equal(t, 1, scored[0].Index)
	assert.Equal(t, 2, scored[1].Index)
	assert.Equal(t, 0, scored[2].Index)
	assert.Greater(t, scored[0].Score, scored[1].Score)
	assert.Greater(t, scored[1].Score, scored[2].Score)
}

func TestEmbeddingRanker_IsPermutation(t *testing.T) {
	ranker := NewEmbeddingRanker(&fakeEmbeddingClient{})

	docs := []Document{
		{Index: 0, Text: "nature walk"},
		{Index: 1, Text: "city lights"},
		{Index: 2, Text: "beach day"},
		{Index: 3, Text: "museum tour"},
	}

	scored := ranker.Rank(context.Background(), "anything", docs)

	require.Len(t, scored, len(docs))
	seen := make(map[int]bool)
	for _, sd := range scored {
		assert.False(t, seen[sd.Index], "index %d appeared twice", sd.Index)
		seen[sd.Index] = true
	}
	for i := range docs {
		assert.True(t, seen[i], "index %d missing from output", i)
	}
}

func TestEmbeddingRanker_Deterministic(t *testing.T) {
	ranker := NewEmbeddingRanker(&fakeEmbeddingClient{})

	docs := []Document{
		{Index: 0, Text: "nature trail"},
		{Index: 1, Text: "old town"},
		{Index: 2, Text: "beach bar"},
	}

	first := ranker.Rank(context.Background(), "nature and beaches", docs)
	second := ranker.Rank(context.Background(), "nature and beaches", docs)

	assert.Equal(t, first, second)
}

func TestEmbeddingRanker_ZeroNormScoresZero(t *testing.T) {
	client := &fakeEmbeddingClient{zeroFor: map[string]bool{"void": true}}
	ranker := NewEmbeddingRanker(client)

	docs := []Document{
		{Index: 0, Text: "void"},
		{Index: 1, Text: "nature park"},
	}

	scored := ranker.Rank(context.Background(), "nature", docs)

	require.Len(t, scored, 2)
	assert.Equal(t, 1, scored[0].Index)
	for _, sd := range scored {
		if sd.Index == 0 {
			assert.Zero(t, sd.Score)
		}
	}
}

func TestEmbeddingRanker_DegradesToRetrievalOrder(t *testing.T) {
	ranker := NewEmbeddingRanker(&fakeEmbeddingClient{fail: true})

	docs := []Document{
		{Index: 0, Text: "first"},
		{Index: 1, Text: "second"},
		{Index: 2, Text: "third"},
	}

	scored := ranker.Rank(context.Background(), "anything", docs)

	require.Len(t, scored, 3)
	for i, sd := range scored {
		assert.Equal(t, i, sd.Index)
		assert.Zero(t, sd.Score)
	}
}

func TestEmbeddingRanker_EmptyCandidates(t *testing.T) {
	client := &fakeEmbeddingClient{}
	ranker := NewEmbeddingRanker(client)

	scored := ranker.Rank(context.Background(), "anything", nil)

	assert.Empty(t, scored)
	assert.Zero(t, client.calls, "empty candidate list should not call the provider")
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "zero left", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "zero right", a: []float32{1, 1}, b: []float32{0, 0}, want: 0},
		{name: "both empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}
