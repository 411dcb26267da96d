package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.5, 0.2, 0.8}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 0.0001)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{0, 1}
		assert.InDelta(t, 0.0, CosineSimilarity(a, b), 0.0001)
	})

	t.Run("negative similarity clamps to zero", func(t *testing.T) {
		a := []float32{1, 0}
		b := []float32{-1, 0}
		assert.Equal(t, 0.0, CosineSimilarity(a, b))
	})

	t.Run("missing vectors score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity(nil, []float32{1, 2}))
		assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, nil))
		assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	})

	t.Run("zero norm scores zero", func(t *testing.T) {
		zero := []float32{0, 0, 0}
		other := []float32{1, 2, 3}
		assert.Equal(t, 0.0, CosineSimilarity(zero, other))
		assert.Equal(t, 0.0, CosineSimilarity(zero, zero))
	})

	t.Run("unequal lengths truncate to shorter", func(t *testing.T) {
		a := []float32{1, 0, 0.9, 0.7}
		b := []float32{1, 0}
		assert.InDelta(t, 1.0, CosineSimilarity(a, b), 0.0001)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := []float32{0.3, -0.1, 0.7, 0.2}
		b := []float32{0.1, 0.9, -0.4, 0.5}
		assert.Equal(t, CosineSimilarity(a, b), CosineSimilarity(b, a))
	})

	t.Run("result within unit range", func(t *testing.T) {
		a := []float32{3, 4, 5}
		b := []float32{1, 1, 1}
		sim := CosineSimilarity(a, b)
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	})
}
