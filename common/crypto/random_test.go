/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRandomBytes(t *testing.T) {
	buf, err := GetRandomBytes(24)
	require.NoError(t, err)
	require.Len(t, buf, 24)

	other, err := GetRandomBytes(24)
	require.NoError(t, err)
	require.NotEqual(t, buf, other, "two reads returned identical bytes")
}

func TestGetRandomBytesRejectsBadSize(t *testing.T) {
	_, err := GetRandomBytes(0)
	require.ErrorContains(t, err, "size must be positive")

	_, err = GetRandomBytes(-5)
	require.ErrorContains(t, err, "size must be positive")
}

func TestGetRandomEntropy(t *testing.T) {
	for _, bits := range []int{128, 192, 256} {
		entropy, err := GetRandomEntropy(bits)
		require.NoError(t, err)
		require.Len(t, entropy, bits/8)
	}
}

func TestGetRandomEntropyRejectsBadSize(t *testing.T) {
	for _, bits := range []int{0, 64, 160, 224, 512} {
		_, err := GetRandomEntropy(bits)
		require.ErrorContains(t, err, "entropy must be 128, 192 or 256 bits", "bits %d", bits)
	}
}
