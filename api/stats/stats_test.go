/* stats_test.go
 * Contains unit tests for stats.go
 * Authors: Zachary Bower
 */

package stats

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// region Sum tests

func TestSum(t *testing.T) {
	assert.Equal(t, 14, Sum([]int{1, 5, 9, 3, -4}))
	assert.Equal(t, 3, Sum([]int{3}))
	assert.Equal(t, 0, Sum([]int{}))
	assert.Equal(t, 0, Sum[int](nil))
}

func TestSum_Floats(t *testing.T) {
	assert.InDelta(t, 4.5, Sum([]float64{1.5, 3}), 1e-9)
}

// endregion

// region Average tests

func TestAverage(t *testing.T) {
	assert.Equal(t, 4.4, Average([]int{1, 9, 6, 2, 4}))
	assert.Equal(t, 4.0, Average([]int{4}))
}

func TestAverage_EmptyIsZero(t *testing.T) {
	avg := Average([]float64{})
	assert.Equal(t, 0.0, avg)
	assert.False(t, math.IsNaN(avg))
}

// endregion

// region Count tests

func TestCount(t *testing.T) {
	assert.Equal(t, 2, Count([]int{4, 1, 9, 2, 8, -5, 4, 19, 2}, 4))
	assert.Equal(t, 3, Count([]int{1, 1, 1, 3, 2}, 1))
	assert.Equal(t, 0, Count([]int{}, 9))
}

func TestCount_Strings(t *testing.T) {
	assert.Equal(t, 2, Count([]string{"SCORED", "FAILED", "SCORED"}, "SCORED"))
}

// endregion

// region OverRatio tests

func TestOverRatio(t *testing.T) {
	assert.Equal(t, 0.625, OverRatio([]float64{9, 5, 3, 4, 2, 6, 7, 4}, 6))
	assert.Equal(t, 0.5, OverRatio([]float64{2, 4, 9, 5, 5, 1, 4, 6}, 5))
	assert.Equal(t, 1.0, OverRatio([]float64{3}, 4))
}

func TestOverRatio_EmptyIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(OverRatio([]float64{}, 2)))
}

func TestOverRatio_StrictlyLess(t *testing.T) {
	assert.Equal(t, 0.0, OverRatio([]float64{4, 4, 4}, 4))
}

// endregion

// region Rank tests

func TestRank(t *testing.T) {
	tests := []struct {
		name             string
		series           []float64
		target           float64
		expectedPosition int
		expectedDistinct int
	}{
		{"ties share a rank", []float64{12, 4, 8, 1, 1, 3, 7, 5, 2, 4, 2, 6, 3}, 3, 7, 9},
		{"present target", []float64{1, 2, 3, 6}, 3, 2, 4},
		{"absent target", []float64{2, 9, 4, 1}, 5, 2, 4},
		{"highest value", []float64{2, 9, 4, 1}, 9, 1, 4},
		{"lowest value", []float64{2, 9, 4, 1}, 1, 4, 4},
		{"single value", []float64{7}, 7, 1, 1},
		{"all equal", []float64{5, 5, 5}, 5, 1, 1},
		{"absent below everything", []float64{5, 6}, 1, 3, 2},
		{"empty", []float64{}, 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			position, distinct := Rank(tt.series, tt.target)
			assert.Equal(t, tt.expectedPosition, position)
			assert.Equal(t, tt.expectedDistinct, distinct)
		})
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	series := []float64{3, 1, 2, 3}
	Rank(series, 2)
	assert.Equal(t, []float64{3, 1, 2, 3}, series)
}

func TestRank_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(8644))
	for length := 1; length < 100; length++ {
		series := make([]float64, length)
		for i := range series {
			series[i] = float64(rng.Intn(500) + 1)
		}
		item := series[rng.Intn(length)]

		uniqueSorted := slices.Clone(series)
		slices.Sort(uniqueSorted)
		uniqueSorted = slices.Compact(uniqueSorted)
		slices.Reverse(uniqueSorted)
		expectedRank := slices.Index(uniqueSorted, item) + 1

		position, distinct := Rank(series, item)
		assert.Equal(t, expectedRank, position, "series %v item %v", series, item)
		assert.Equal(t, len(uniqueSorted), distinct)
	}
}

// endregion

func TestFloats(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, Floats([]int{1, 2, 3}))
	assert.Empty(t, Floats([]int{}))
}
