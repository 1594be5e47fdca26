// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// GCD(0, 0) is 0.
//
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of xs, which must be non-negative.
// It returns 1 for an empty argument list and 0 if any value is 0.
//
// Values are folded left to right, dividing before multiplying. The result
// silently overflows if it does not fit in T.
//
func LCM[T constraints.Integer](xs ...T) T {
	r := T(1)
	for _, x := range xs {
		if x == 0 {
			return 0
		}
		r = r / GCD(r, x) * x
	}
	return r
}
