package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.3, 0.4, 0.5}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 2}, []float32{-1, -2}), 1e-9)
	})

	t.Run("zero vector scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0, 0}, []float32{1, 2, 3}))
		assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2, 3}, []float32{0, 0, 0}))
	})

	t.Run("mismatched lengths score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
		assert.Equal(t, 0.0, CosineSimilarity(nil, []float32{1}))
	})

	t.Run("scale invariance", func(t *testing.T) {
		a := []float32{1, 1, 0}
		b := []float32{10, 10, 0}
		assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-6)
	})
}

func TestCentroid(t *testing.T) {
	t.Run("single vector", func(t *testing.T) {
		got := Centroid([][]float32{{1, 2, 3}})
		assert.Equal(t, []float32{1, 2, 3}, got)
	})

	t.Run("elementwise mean", func(t *testing.T) {
		got := Centroid([][]float32{
			{1, 0, 0},
			{0, 1, 0},
		})
		assert.Equal(t, []float32{0.5, 0.5, 0}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Centroid(nil))
	})
}
