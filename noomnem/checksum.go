/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noomnem

import (
	"crypto/sha256"
	"math/big"
)

// checksum computes the integrity tag for the given entropy bytes: the
// SHA-256 digest read as a big-endian integer, masked to the checksum width
// of the phrase length. The checksum is a short integrity check, not a
// security primitive.
func checksum(entropy []byte, words int) *big.Int {
	digest := sha256.Sum256(entropy)
	sum := new(big.Int).SetBytes(digest[:])
	return sum.And(sum, checksumMask(words))
}

// combineChecksum appends the checksum of the entropy value to its low bits:
// (entropy << checksumBits) | checksum.
func combineChecksum(entropy *big.Int, words int) *big.Int {
	params := supportedLengths[words]
	buf := make([]byte, params.entropyBits/8)
	entropy.FillBytes(buf)

	data := new(big.Int).Lsh(entropy, uint(params.checksumBits))
	return data.Or(data, checksum(buf, words))
}

// extractChecksum splits a combined value back into the entropy value and the
// embedded checksum without recomputing the hash.
func extractChecksum(data *big.Int, words int) (entropy, sum *big.Int) {
	params := supportedLengths[words]
	entropy = new(big.Int).Rsh(data, uint(params.checksumBits))
	sum = new(big.Int).And(data, checksumMask(words))
	return entropy, sum
}

// checksumMask returns 2^checksumBits - 1 for the given phrase length.
func checksumMask(words int) *big.Int {
	mask := big.NewInt(1)
	mask.Lsh(mask, uint(supportedLengths[words].checksumBits))
	return mask.Sub(mask, big.NewInt(1))
}
