/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package crypto holds the entropy source for freshly generated phrases.
package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// GetRandomBytes returns size cryptographically secure random bytes.
func GetRandomBytes(size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Errorf("size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "failed to read from the system entropy source")
	}
	return buf, nil
}

// GetRandomEntropy returns fresh entropy of the given bit length. Only the
// sizes the mnemonic codecs accept are allowed.
func GetRandomEntropy(bits int) ([]byte, error) {
	switch bits {
	case 128, 192, 256:
	default:
		return nil, errors.Errorf("entropy must be 128, 192 or 256 bits, got %d", bits)
	}
	return GetRandomBytes(bits / 8)
}
