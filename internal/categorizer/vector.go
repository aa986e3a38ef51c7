package categorizer

import "math"

// CosineSimilarity computes (a·b)/(‖a‖·‖b‖) over float32 vectors with
// float64 accumulation. Zero-magnitude or mismatched vectors score 0 so the
// caller never divides by zero.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Centroid returns the elementwise mean of the given vectors. All vectors
// must share the same dimension. Returns nil for an empty input.
func Centroid(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	dim := len(vectors[0])
	sums := make([]float64, dim)
	for _, vec := range vectors {
		for i, v := range vec {
			sums[i] += float64(v)
		}
	}

	mean := make([]float32, dim)
	n := float64(len(vectors))
	for i, s := range sums {
		mean[i] = float32(s / n)
	}
	return mean
}
