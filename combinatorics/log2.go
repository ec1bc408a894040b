/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package combinatorics

import (
	"fmt"
	"math/big"
)

// Log2 returns the floor of the base-2 logarithm of x, so Log2 of 5, 6 and 7
// is 2. x must not be negative. Log2(0) returns 0 by convention; callers must
// not rely on it.
func Log2(x *big.Int) int {
	if x.Sign() < 0 {
		panic(fmt.Sprintf("combinatorics: Log2 of negative value %s", x))
	}

	n := new(big.Int).Set(x)
	result := 0
	for n.BitLen() > 8 { // n >= 256
		n.Rsh(n, 8)
		result += 8
	}
	for n.BitLen() > 1 { // n > 1
		n.Rsh(n, 1)
		result++
	}
	return result
}

// Log2Upper returns the smallest k with x <= 2^k, so Log2Upper of 5, 6, 7 and
// 8 is 3 while Log2Upper(4) is 2. It repeatedly halves x rounding up, counting
// the halvings.
func Log2Upper(x *big.Int) int {
	if x.Sign() < 0 {
		panic(fmt.Sprintf("combinatorics: Log2Upper of negative value %s", x))
	}

	one := big.NewInt(1)
	n := new(big.Int).Set(x)
	result := 0
	for n.Cmp(one) > 0 {
		n.Add(n, one)
		n.Rsh(n, 1)
		result++
	}
	return result
}
