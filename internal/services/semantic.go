package services

import "math"

// CosineSimilarity computes the cosine similarity of two embedding vectors,
// clamped to [0, 1]. A missing vector or a zero-norm vector yields 0.0 rather
// than an error. Vectors of unequal length are truncated to the shorter
// length before comparison; that is a lossy but defined fallback.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if similarity < 0 {
		return 0.0
	}
	return similarity
}
