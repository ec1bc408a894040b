/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package combinatorics

import (
	"fmt"
	"math/big"
)

// MaxUniverse is the largest universe size supported by the package. It matches
// the size of the mnemonic vocabulary; C(2048, 1024) is a ~2040-bit number and
// bounds the precision the package must handle.
const MaxUniverse = 2048

// Binomial returns the number of ways to pick m elements out of a set of n,
// written C(n, m) in combinatorics. The result is computed with the
// multiplicative recurrence result = result*(n-k)/(k+1), which keeps every
// intermediate value integral: after k steps the accumulator is C(n, k+1)
// scaled by an exact division.
//
// Binomial panics when n is outside (0, MaxUniverse] or m is outside [0, n].
// Arguments are trusted values produced by the callers' own validation, so a
// violation is a programming error rather than bad input.
func Binomial(n, m int) *big.Int {
	if n <= 0 || n > MaxUniverse {
		panic(fmt.Sprintf("combinatorics: universe size %d out of range (0, %d]", n, MaxUniverse))
	}
	if m < 0 || m > n {
		panic(fmt.Sprintf("combinatorics: pick size %d out of range [0, %d]", m, n))
	}

	result := big.NewInt(1)
	factor := new(big.Int)
	for k := 0; k < m; k++ {
		result.Mul(result, factor.SetInt64(int64(n-k)))
		result.Quo(result, factor.SetInt64(int64(k+1)))
	}
	return result
}

// BinomialOrZero is Binomial extended with C(n, m) = 0 whenever m > n. The
// rank and unrank searches probe combinations below their current element and
// rely on the zero to terminate instead of treating the probe as an error.
func BinomialOrZero(n, m int) *big.Int {
	if n < m {
		return new(big.Int)
	}
	return Binomial(n, m)
}
