package models

import "math"

// MaskZeros returns a copy of values with every exact zero replaced by NaN.
// Zero has no position on a logarithmic axis.
func MaskZeros(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
	}
	return out
}

// Stride returns every k-th value starting at index 0.
// A stride below 2 returns a copy of values.
func Stride[T any](values []T, k int) []T {
	if k < 2 {
		out := make([]T, len(values))
		copy(out, values)
		return out
	}
	out := make([]T, 0, (len(values)+k-1)/k)
	for i := 0; i < len(values); i += k {
		out = append(out, values[i])
	}
	return out
}
