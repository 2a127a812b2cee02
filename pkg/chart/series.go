package chart

import (
	"fmt"
	"strconv"
)

// Series is one ordered sequence of numeric samples.
type Series []float64

// Flatten concatenates multiple series into a single slice, for computing a
// shared range across series.
func Flatten(series []Series) []float64 {
	var out []float64
	for _, s := range series {
		out = append(out, s...)
	}
	return out
}

// RangeWithMargin returns the display range (min, max, range) for the data.
// The margin, as a percentage of the raw range, widens the lower bound only,
// spacing the data away from the axis. A constant series is split into a unit
// range around its value, and empty data yields (0, 1, 1).
func RangeWithMargin(data []float64, marginPercent float64) (min, max, rng float64) {
	if len(data) == 0 {
		return 0, 1, 1
	}

	min, max = data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		min -= 0.5
		max += 0.5
	}

	margin := marginPercent * (max - min) / 100
	min -= margin
	return min, max, max - min
}

// LabelPositions returns n evenly spaced values from min to max inclusive.
// n==1 yields the midpoint; n<=0 yields nil.
func LabelPositions(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{(min + max) / 2}
	}

	step := (max - min) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	return out
}

// FormatNumber formats a value for an axis label with the given number of
// decimal places.
func FormatNumber(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// EqualLengths returns an error unless all slices have the same length.
func EqualLengths(name string, lengths ...int) error {
	for _, l := range lengths[1:] {
		if l != lengths[0] {
			return fmt.Errorf("%s: series lengths differ: %v", name, lengths)
		}
	}
	return nil
}
