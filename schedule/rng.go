// SPDX-License-Identifier: MIT

// Package schedule activates every agent exactly once per step, in an order
// drawn fresh from the model's random source each step.
//
// Goals:
//   - Determinism: same seed ⇒ identical activation orders across platforms.
//   - Explicitness: the permutation algorithm and its draws are fixed here,
//     never delegated to library shuffles whose draw pattern may change.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A RandomActivation and the
//     *rand.Rand it holds belong to one goroutine.
package schedule

import "math/rand"

// Permutation returns a permutation of 0..n-1 drawn from rng with an
// in-place Fisher–Yates shuffle:
//
//	p[i] = i
//	for i = n-1 down to 1: j = rng.Intn(i+1); swap p[i], p[j]
//
// Exactly n-1 Intn draws are consumed (none for n <= 1). n < 0 yields an
// empty permutation.
//
// Complexity: O(n) time, O(n) space.
func Permutation(rng *rand.Rand, n int) []int {
	if n < 0 {
		n = 0
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)
	return p
}

// shuffleIntsInPlace performs the Fisher–Yates pass described on Permutation.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
