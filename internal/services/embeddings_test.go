package services

import (
	"context"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbeddingSource(t *testing.T) {
	source := NewHashEmbeddingSource(384)
	ctx := context.Background()

	t.Run("deterministic for same text", func(t *testing.T) {
		first, err := source.Embed(ctx, "golang backend engineer")
		require.NoError(t, err)
		second, err := source.Embed(ctx, "golang backend engineer")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("different text yields different vectors", func(t *testing.T) {
		a, err := source.Embed(ctx, "golang backend engineer")
		require.NoError(t, err)
		b, err := source.Embed(ctx, "marketing coordinator")
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("fixed dimension and unit norm", func(t *testing.T) {
		vector, err := source.Embed(ctx, "some resume text")
		require.NoError(t, err)
		require.Len(t, vector, 384)

		var norm float64
		for _, v := range vector {
			norm += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 0.001)
	})

	t.Run("invalid dimension falls back to default", func(t *testing.T) {
		source := NewHashEmbeddingSource(0)
		vector, err := source.Embed(ctx, "text")
		require.NoError(t, err)
		assert.Len(t, vector, 384)
	})

	t.Run("reports fallback kind", func(t *testing.T) {
		assert.Equal(t, EmbeddingKindHash, source.Kind())
	})
}

func TestPrepareEmbeddingText(t *testing.T) {
	t.Run("collapses whitespace", func(t *testing.T) {
		got := PrepareEmbeddingText("hello\n\n  world\t!", 100)
		assert.Equal(t, "hello world !", got)
	})

	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "short", PrepareEmbeddingText("short", 100))
	})

	t.Run("long text keeps head and tail", func(t *testing.T) {
		text := strings.Repeat("a", 600) + strings.Repeat("z", 600)
		got := PrepareEmbeddingText(text, 1000)

		assert.Contains(t, got, "[...]")
		assert.True(t, strings.HasPrefix(got, "aaa"))
		assert.True(t, strings.HasSuffix(got, "zzz"))
		assert.Less(t, len(got), len(text))
	})

	t.Run("truncation never splits a multibyte rune", func(t *testing.T) {
		got := PrepareEmbeddingText(strings.Repeat("é", 2000), 999)

		assert.True(t, utf8.ValidString(got))
		assert.Contains(t, got, "[...]")
		assert.True(t, strings.HasPrefix(got, "é"))
		assert.True(t, strings.HasSuffix(got, "é"))
	})
}
