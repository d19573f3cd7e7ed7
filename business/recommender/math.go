package recommender

import (
	"math"

	"sparetime/domain"
)

// cosineSimilarity returns the cosine of the angle between a and b,
// in [-1, 1]. Mismatched lengths or a zero-norm vector score 0.
func cosineSimilarity(a, b domain.Vector) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
