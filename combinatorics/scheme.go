/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package combinatorics implements exact binomial arithmetic and two
// combinatorial number systems: invertible mappings between the integers
// [0, C(n, m)) and the m-element subsets of an n-element universe.
//
// The two systems, lexicographic and colexicographic, enumerate the same
// subsets in different orders. A rank produced by one is meaningless to the
// other, so a deployment must pick a single Scheme and stay with it.
package combinatorics

import (
	"math/big"

	"github.com/pkg/errors"
)

// Scheme is an invertible mapping between integers and combinations. A
// combination is represented as a strictly increasing slice of element
// indices in [0, n) where n is the universe size the Scheme was created with.
type Scheme interface {
	// Rank returns the position of the combination in the scheme's
	// enumeration order, a value in [0, C(n, len(elems))). It returns an
	// error if elems is not strictly increasing or holds values outside
	// [0, n); a repeated element is an error, never a degenerate rank.
	Rank(elems []int) (*big.Int, error)

	// Unrank is the exact inverse of Rank: it reconstructs the m-element
	// combination at the given position. It returns an error if value is
	// negative or not below C(n, m).
	Unrank(value *big.Int, m int) ([]int, error)

	// Enumerate calls visit for every m-element combination in the scheme's
	// rank order, starting at rank zero, until all combinations have been
	// visited or visit returns false. The slice passed to visit is reused
	// between calls and must not be retained.
	Enumerate(m int, visit func(elems []int) bool)
}

// validateElems checks that elems is a strictly increasing sequence within
// the universe [0, n).
func validateElems(elems []int, n int) error {
	for i, elem := range elems {
		if elem < 0 || elem >= n {
			return errors.Errorf("element %d at position %d is outside the universe [0, %d)", elem, i, n)
		}
		if i > 0 && elem <= elems[i-1] {
			if elem == elems[i-1] {
				return errors.Errorf("element %d appears more than once", elem)
			}
			return errors.Errorf("elements are not sorted: %d follows %d", elem, elems[i-1])
		}
	}
	return nil
}

// validateRank checks that value lies in [0, C(n, m)).
func validateRank(value *big.Int, n, m int) error {
	if value.Sign() < 0 {
		return errors.Errorf("rank %s is negative", value)
	}
	if capacity := BinomialOrZero(n, m); value.Cmp(capacity) >= 0 {
		return errors.Errorf("rank %s is not below the %d-of-%d capacity %s", value, m, n, capacity)
	}
	return nil
}
