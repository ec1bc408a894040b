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

// lex ranks combinations in lexicographic order: combinations sharing a
// smaller first element come first, ties broken by the second element, and so
// on. For two picks out of five the order is {0,1} {0,2} {0,3} {0,4} {1,2} ...
//
// Unlike the colexicographic scheme, ranking here depends on the universe
// size: the number of combinations skipped by advancing the first element is
// counted against the elements remaining above it, so the search tracks a
// shrinking residual universe and a base offset for the indices found so far.
type lex struct {
	n int
}

// NewLex returns the lexicographic Scheme over a universe of n elements.
func NewLex(n int) Scheme {
	if n <= 0 || n > MaxUniverse {
		panic(fmt.Sprintf("combinatorics: universe size %d out of range (0, %d]", n, MaxUniverse))
	}
	return &lex{n: n}
}

func (l *lex) Rank(elems []int) (*big.Int, error) {
	if err := validateElems(elems, l.n); err != nil {
		return nil, err
	}

	count := len(elems)
	curmax := l.n
	base := 0
	result := new(big.Int)
	skipped := new(big.Int)
	for idx, elem := range elems {
		// Combinations whose element at this position is below elem all rank
		// earlier: C(curmax, left) counts every completion of the prefix and
		// C(curmax-cur, left) the completions still ahead.
		cur := elem - base
		skipped.Sub(Binomial(curmax, count-idx), Binomial(curmax-cur, count-idx))
		result.Add(result, skipped)
		curmax -= cur + 1
		base = elem + 1
	}
	return result, nil
}

func (l *lex) Unrank(value *big.Int, m int) ([]int, error) {
	if m < 0 || m > l.n {
		return nil, errors.Errorf("pick size %d out of range [0, %d]", m, l.n)
	}
	if err := validateRank(value, l.n, m); err != nil {
		return nil, err
	}
	if m == 0 {
		return []int{}, nil
	}

	remaining := new(big.Int).Set(value)
	result := make([]int, 0, m)
	base := 0
	curmax := l.n
	test := new(big.Int)
	for left := m; left > 1; left-- {
		cur := 1
		test.Sub(BinomialOrZero(curmax, left), BinomialOrZero(curmax-cur, left))
		for test.Cmp(remaining) <= 0 {
			cur++
			test.Sub(BinomialOrZero(curmax, left), BinomialOrZero(curmax-cur, left))
		}
		result = append(result, cur+base-1)
		test.Sub(BinomialOrZero(curmax, left), BinomialOrZero(curmax-cur+1, left))
		remaining.Sub(remaining, test)
		base += cur
		curmax -= cur
	}

	// The last element needs no search: the residual rank is its offset.
	result = append(result, int(remaining.Int64())+base)
	return result, nil
}

func (l *lex) Enumerate(m int, visit func(elems []int) bool) {
	if m < 0 || m > l.n {
		panic(fmt.Sprintf("combinatorics: pick size %d out of range [0, %d]", m, l.n))
	}

	cur := make([]int, m)
	for i := range cur {
		cur[i] = i
	}
	if !visit(cur) || m == 0 {
		return
	}

	for {
		// Find the rightmost position that can still advance.
		idx := m - 1
		limit := l.n
		for idx >= 0 && cur[idx]+1 >= limit {
			idx--
			limit--
		}
		if idx < 0 {
			return
		}

		// Advance it and restart every position to its right.
		next := cur[idx] + 1
		for ; idx < m; idx++ {
			cur[idx] = next
			next++
		}
		if !visit(cur) {
			return
		}
	}
}
