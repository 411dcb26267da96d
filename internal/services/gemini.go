package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiEmbeddingSource is the model-backed EmbeddingSource, using Gemini's
// text embedding model.
type geminiEmbeddingSource struct {
	client     *genai.Client
	embedModel string
	maxChars   int
	maxRetries int
}

func NewGeminiEmbeddingSource(apiKey string, maxRetries int) (EmbeddingSource, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if maxRetries < 1 {
		maxRetries = 1
	}

	return &geminiEmbeddingSource{
		client:     client,
		embedModel: "text-embedding-004",
		maxChars:   40000,
		maxRetries: maxRetries,
	}, nil
}

// Embed implements EmbeddingSource.
func (g *geminiEmbeddingSource) Embed(ctx context.Context, text string) ([]float32, error) {
	text = PrepareEmbeddingText(text, g.maxChars)

	var lastErr error
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		result, err := g.embedOnce(ctx, text)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < g.maxRetries {
			fmt.Printf("⚠️ Embedding attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", g.maxRetries, lastErr)
}

func (g *geminiEmbeddingSource) embedOnce(ctx context.Context, text string) ([]float32, error) {
	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// Kind implements EmbeddingSource.
func (g *geminiEmbeddingSource) Kind() string {
	return EmbeddingKindModel
}
