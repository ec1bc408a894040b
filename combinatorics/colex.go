/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package combinatorics

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// colex ranks combinations in colexicographic order: all subsets drawn from
// the first k elements are exhausted before any subset touches element k. For
// two picks out of five the order is {0,1} {0,2} {1,2} {0,3} {1,3} {2,3} ...
//
// The order has a useful consequence: the rank of a combination is simply the
// sum of C(elem, position+1) over its elements, and unranking never needs to
// know the universe size up front because the search widens until the rank is
// covered.
type colex struct {
	n int
}

// NewColex returns the colexicographic Scheme over a universe of n elements.
func NewColex(n int) Scheme {
	if n <= 0 || n > MaxUniverse {
		panic(fmt.Sprintf("combinatorics: universe size %d out of range (0, %d]", n, MaxUniverse))
	}
	return &colex{n: n}
}

func (c *colex) Rank(elems []int) (*big.Int, error) {
	if err := validateElems(elems, c.n); err != nil {
		return nil, err
	}

	result := new(big.Int)
	for count := len(elems); count > 0; count-- {
		result.Add(result, BinomialOrZero(elems[count-1], count))
	}
	return result, nil
}

func (c *colex) Unrank(value *big.Int, m int) ([]int, error) {
	if m < 0 || m > c.n {
		return nil, errors.Errorf("pick size %d out of range [0, %d]", m, c.n)
	}
	if err := validateRank(value, c.n, m); err != nil {
		return nil, err
	}

	remaining := new(big.Int).Set(value)
	result := make([]int, m)
	for i := m; i > 0; i-- {
		// Find the smallest cur with C(cur, i) > remaining; cur-1 is then
		// the largest element of the combination still to be built.
		cur := i
		for BinomialOrZero(cur, i).Cmp(remaining) <= 0 {
			cur++
		}
		cur--
		result[i-1] = cur
		remaining.Sub(remaining, BinomialOrZero(cur, i))
	}
	return result, nil
}

func (c *colex) Enumerate(m int, visit func(elems []int) bool) {
	if m < 0 || m > c.n {
		panic(fmt.Sprintf("combinatorics: pick size %d out of range [0, %d]", m, c.n))
	}

	cur := make([]int, m)
	for i := range cur {
		cur[i] = i
	}
	if !visit(cur) || m == 0 {
		return
	}

	for {
		idx := 0
		for idx < m-1 {
			if cur[idx]+1 >= cur[idx+1] {
				// Position idx is packed against its neighbor; reset it and
				// carry into the next position.
				cur[idx] = idx
				idx++
				continue
			}
			cur[idx]++
			if !visit(cur) {
				return
			}
			idx = 0
		}

		// All positions below the last are exhausted for the current limit;
		// widen the limit or stop.
		if cur[idx]+1 >= c.n {
			return
		}
		cur[idx]++
		if !visit(cur) {
			return
		}
	}
}
