package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Embedding source kinds, recorded on every match result so that scores
// computed from fabricated vectors are distinguishable from model-backed ones.
const (
	EmbeddingKindModel = "model"
	EmbeddingKindHash  = "hash-fallback"
)

// EmbeddingSource produces a fixed-length vector for a piece of text. The
// source is chosen once at startup and injected wherever embeddings are
// needed.
type EmbeddingSource interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Kind() string
}

// hashEmbeddingSource fabricates deterministic pseudo-embeddings by seeding a
// PRNG from a hash of the text. The same text always yields the same vector,
// so cosine similarity stays stable across calls, but the values carry no
// semantic meaning. Used when no embedding model is configured.
type hashEmbeddingSource struct {
	dimension int
}

func NewHashEmbeddingSource(dimension int) EmbeddingSource {
	if dimension <= 0 {
		dimension = 384
	}
	return &hashEmbeddingSource{dimension: dimension}
}

// Embed implements EmbeddingSource.
func (h *hashEmbeddingSource) Embed(_ context.Context, text string) ([]float32, error) {
	sum := sha256.Sum256([]byte(text))
	seed, _ := strconv.ParseInt(hex.EncodeToString(sum[:])[:8], 16, 64)

	rng := rand.New(rand.NewSource(seed))
	vector := make([]float32, h.dimension)
	var norm float64
	for i := range vector {
		v := rng.NormFloat64()
		vector[i] = float32(v)
		norm += v * v
	}

	// Unit-normalize so magnitudes match what embedding models emit.
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vector {
			vector[i] = float32(float64(vector[i]) / norm)
		}
	}

	return vector, nil
}

// Kind implements EmbeddingSource.
func (h *hashEmbeddingSource) Kind() string {
	return EmbeddingKindHash
}

// PrepareEmbeddingText collapses whitespace and bounds text length before it
// is sent to an embedding source. Long text keeps its head and tail, which
// carry the summary and most recent roles on a typical resume.
func PrepareEmbeddingText(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = 1000
	}

	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= maxLength {
		return text
	}

	// Cut points land on rune boundaries; the result feeds protobuf string
	// fields, which reject invalid UTF-8.
	head := maxLength / 2
	for head > 0 && !utf8.RuneStart(text[head]) {
		head--
	}
	tail := len(text) - maxLength/2
	for tail < len(text) && !utf8.RuneStart(text[tail]) {
		tail++
	}

	return text[:head] + " [...] " + text[tail:]
}
