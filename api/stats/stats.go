/* stats.go
 * Season independent numeric helpers used to compare teams: sum, average, count, over ratio and dense rank.
 * Every function accepts an empty slice without panicking. Note that Average and OverRatio use different
 * conventions for empty input (0 and NaN respectively), callers need to handle both.
 * Authors: Zachary Bower
 */

package stats

import "math"

// Number is the set of numeric types the helpers operate on
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Sum adds every element of xs
// Preconditions: Receives a slice of numbers, which may be empty
// Postconditions: Returns the sum, or 0 for an empty slice
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Average returns the arithmetic mean of xs
// Preconditions: Receives a slice of numbers, which may be empty
// Postconditions: Returns sum/len, or 0 (not NaN) for an empty slice so downstream arithmetic stays total
func Average[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	return float64(Sum(xs)) / float64(len(xs))
}

// Count returns the number of elements of xs equal to target
func Count[T comparable](xs []T, target T) int {
	count := 0
	for _, x := range xs {
		if x == target {
			count++
		}
	}
	return count
}

// OverRatio returns the fraction of xs that is strictly less than target.
// Preconditions: Receives a slice of numbers and the value being compared against the slice
// Postconditions: Returns a value in [0, 1], or NaN for an empty slice
func OverRatio(xs []float64, target float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	below := 0
	for _, x := range xs {
		if x < target {
			below++
		}
	}
	return float64(below) / float64(len(xs))
}

// Rank computes a dense, descending rank of target over the distinct values of xs. Tied values share a rank and the
// next distinct value gets the next integer. target does not have to be present in xs, in which case it is ranked as
// if it was inserted (every strictly greater value outranks it).
// Preconditions: Receives a slice of numbers and the value to rank
// Postconditions: Returns the 1-based position of target and the number of distinct values in xs
func Rank(xs []float64, target float64) (int, int) {
	distinct := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		distinct[x] = struct{}{}
	}

	// Partition the distinct set around target: only the values above it matter for the position
	above := 0
	for value := range distinct {
		if value > target {
			above++
		}
	}
	return above + 1, len(distinct)
}

// Floats converts a slice of any Number type into float64s so it can be passed to OverRatio and Rank
func Floats[T Number](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
