package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiEmbeddingClient implements EmbeddingClientInterface on top of
// Google's Gemini models. The free tier has no dedicated embedding
// endpoint, so GetEmbedding falls back to a deterministic hash-based
// vector; keyword extraction uses the generative model in JSON mode.
type GeminiEmbeddingClient struct {
	client *genai.Client
	model  string
}

func NewGeminiEmbeddingClient(apiKey, model string) (*GeminiEmbeddingClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbeddingClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return textToVector(text), nil
}

func (c *GeminiEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no input texts provided")
	}

	vectors := make([]pgvector.Vector, len(texts))
	for i, text := range texts {
		vectors[i] = textToVector(text)
	}
	return vectors, nil
}

func (c *GeminiEmbeddingClient) ExtractPreferenceKeywords(ctx context.Context, message string) ([]string, error) {
	model := c.client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.1)
	model.SetTopP(0.5)
	model.SetTopK(20)

	prompt := fmt.Sprintf(
		"Extract up to 8 travel preference keywords from the message below. "+
			"Return ONLY a JSON array of lowercase strings, no prose.\n\nMessage: %s", message)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini keyword extraction: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini keyword extraction: no content")
	}

	content := CleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	var keywords []string
	if err := json.Unmarshal([]byte(content), &keywords); err != nil {
		return nil, fmt.Errorf("gemini keyword extraction: malformed JSON: %w", err)
	}
	for i, kw := range keywords {
		keywords[i] = strings.ToLower(strings.TrimSpace(kw))
	}
	return keywords, nil
}

func (c *GeminiEmbeddingClient) Close() error {
	return c.client.Close()
}

const hashVectorDimensions = 768

// textToVector builds a normalized vector from word hashes. Identical
// input always yields the identical vector, which is all the ranking
// layer requires of a fallback embedder.
func textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	vector := make([]float32, hashVectorDimensions)
	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < hashVectorDimensions; i++ {
			vector[i] += float32(math.Sin(float64(hash+uint32(i))) * 0.1)
		}
	}

	var magnitude float32
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))
	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
