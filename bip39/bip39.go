/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bip39 implements the classic ordered mnemonic encoding: entropy is
// extended with a short checksum and cut into 11-bit chunks, each chunk
// selecting one vocabulary word. Word order is significant, unlike the
// order-independent encoding in the noomnem package. Only the English
// vocabulary is supported.
package bip39

import (
	"crypto/sha256"
	"math/big"

	"github.com/noomnem/noomnem/wordlist"
	"github.com/pkg/errors"
)

// wordBits is the number of entropy-plus-checksum bits selecting one word.
const wordBits = 11

// entropyBitsByWords maps phrase lengths to the entropy bits they carry. The
// checksum is entropyBits/32 bits, so each step of 3 words adds 32 bits of
// entropy and one checksum bit.
var entropyBitsByWords = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// ErrChecksumMismatch reports a phrase whose embedded checksum does not match
// its entropy, the usual sign of a mistyped or reordered word.
var ErrChecksumMismatch = errors.New("mnemonic checksum verification failed")

// Encode converts entropy of 16, 20, 24, 28 or 32 bytes into its ordered
// mnemonic phrase.
func Encode(entropy []byte) ([]string, error) {
	entropyBits := len(entropy) * 8
	switch entropyBits {
	case 128, 160, 192, 224, 256:
	default:
		return nil, errors.Errorf("entropy must be 128, 160, 192, 224 or 256 bits, got %d", entropyBits)
	}
	checksumBits := entropyBits / 32
	numWords := (entropyBits + checksumBits) / wordBits

	// The checksum is the leading bits of the entropy digest; it never spans
	// more than the first byte.
	sum := sha256.Sum256(entropy)
	data := new(big.Int).SetBytes(entropy)
	data.Lsh(data, uint(checksumBits))
	data.Or(data, big.NewInt(int64(sum[0]>>(8-checksumBits))))

	// Peel 11-bit chunks from the low end; the first word holds the highest
	// bits, so fill the phrase backwards.
	phrase := make([]string, numWords)
	chunk := new(big.Int)
	mask := big.NewInt(1<<wordBits - 1)
	for i := numWords - 1; i >= 0; i-- {
		chunk.And(data, mask)
		phrase[i] = wordlist.Word(int(chunk.Int64()))
		data.Rsh(data, wordBits)
	}
	return phrase, nil
}

// Decode converts an ordered mnemonic phrase of 12, 15, 18, 21 or 24 words
// back into its entropy bytes, verifying the embedded checksum.
func Decode(phrase []string) ([]byte, error) {
	entropyBits, ok := entropyBitsByWords[len(phrase)]
	if !ok {
		return nil, errors.Errorf("unsupported phrase length of %d words: supported lengths are 12, 15, 18, 21 and 24", len(phrase))
	}
	checksumBits := entropyBits / 32

	data := new(big.Int)
	idx := new(big.Int)
	for _, w := range phrase {
		i, ok := wordlist.Index(w)
		if !ok {
			return nil, errors.Errorf("word %q is not in the vocabulary", w)
		}
		data.Lsh(data, wordBits)
		data.Or(data, idx.SetInt64(int64(i)))
	}

	mask := big.NewInt(1<<checksumBits - 1)
	embedded := uint8(new(big.Int).And(data, mask).Int64())
	data.Rsh(data, uint(checksumBits))

	entropy := make([]byte, entropyBits/8)
	data.FillBytes(entropy)

	sum := sha256.Sum256(entropy)
	if embedded != sum[0]>>(8-checksumBits) {
		return nil, errors.WithStack(ErrChecksumMismatch)
	}
	return entropy, nil
}
