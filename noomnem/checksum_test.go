/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noomnem

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksumKnownValues(t *testing.T) {
	// Low bits of sha256 over the raw entropy bytes.
	require.Equal(t, int64(3), checksum(make([]byte, 16), 16).Int64())

	ones := make([]byte, 24)
	for i := range ones {
		ones[i] = 0xff
	}
	sum := checksum(ones, 26)
	require.Less(t, sum.Int64(), int64(1<<5))
}

func TestChecksumMaskWidths(t *testing.T) {
	require.Equal(t, int64(0x07), checksumMask(16).Int64())
	require.Equal(t, int64(0x1f), checksumMask(26).Int64())
	require.Equal(t, int64(0x7f), checksumMask(37).Int64())
}

func TestCombineExtractRoundTrip(t *testing.T) {
	for _, words := range Lengths() {
		params := supportedLengths[words]

		for _, value := range []*big.Int{
			new(big.Int),
			big.NewInt(1),
			new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(params.entropyBits)), big.NewInt(1)),
		} {
			combined := combineChecksum(value, words)
			entropy, sum := extractChecksum(combined, words)
			require.Zero(t, entropy.Cmp(value), "%d words, value %s", words, value)

			buf := make([]byte, params.entropyBits/8)
			value.FillBytes(buf)
			require.Zero(t, sum.Cmp(checksum(buf, words)))
		}
	}
}

func TestCombineShiftsNotOverwrites(t *testing.T) {
	// The entropy value must sit fully above the checksum bits.
	value := big.NewInt(0x1234)
	combined := combineChecksum(value, 16)
	require.Zero(t, new(big.Int).Rsh(combined, 3).Cmp(value))
}
