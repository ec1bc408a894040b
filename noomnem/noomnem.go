/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package noomnem implements an order-independent mnemonic encoding of
// entropy: the set of words chosen from the vocabulary carries the value, not
// their order, so a phrase survives any shuffling of its words.
//
// Entropy of 128, 192 or 256 bits is extended with a short SHA-256 checksum
// and the combined value is mapped to its combination of 16, 26 or 37
// distinct vocabulary words through a combinatorial number system. Decoding
// sorts the words, inverts the mapping and verifies the checksum.
//
// All functions are pure and the package holds no mutable state, so it is
// safe for concurrent use without locking.
package noomnem

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/noomnem/noomnem/combinatorics"
	"github.com/noomnem/noomnem/wordlist"
)

// engine is the combinatorial number system every phrase is ranked with. The
// colexicographic and lexicographic schemes enumerate combinations in
// different orders, so the choice is fixed at compile time: a phrase encoded
// under one scheme decodes to garbage under the other (caught by the
// checksum, but still garbage).
var engine = combinatorics.NewColex(wordlist.Size)

// Encode converts entropy of 16, 24 or 32 bytes into its order-independent
// phrase. The returned words are sorted by vocabulary index; callers may
// present them in any order without losing information.
func Encode(entropy []byte) ([]string, error) {
	words, ok := wordsByEntropyBits[len(entropy)*8]
	if !ok {
		return nil, &UnsupportedLengthError{Bytes: len(entropy)}
	}
	params := supportedLengths[words]

	value := new(big.Int).SetBytes(entropy)
	if value.BitLen() > params.entropyBits {
		// Unreachable for exact-width input; guards the table against edits.
		panic(fmt.Sprintf("noomnem: %d-byte entropy exceeds %d bits", len(entropy), params.entropyBits))
	}

	data := combineChecksum(value, words)
	if data.BitLen() > params.entropyBits+params.checksumBits {
		panic(fmt.Sprintf("noomnem: combined value exceeds %d bits", params.entropyBits+params.checksumBits))
	}

	elems, err := engine.Unrank(data, words)
	if err != nil {
		return nil, err
	}

	phrase := make([]string, len(elems))
	for i, elem := range elems {
		phrase[i] = wordlist.Word(elem)
	}
	return phrase, nil
}

// Decode converts a phrase of 16, 26 or 37 vocabulary words, in any order,
// back into the entropy bytes it encodes. The embedded checksum is verified;
// see the package error kinds for the ways a phrase can be rejected.
func Decode(phrase []string) ([]byte, error) {
	words := len(phrase)
	params, ok := supportedLengths[words]
	if !ok {
		return nil, &UnsupportedLengthError{Words: words}
	}

	elems := make([]int, words)
	for i, w := range phrase {
		elem, ok := wordlist.Index(w)
		if !ok {
			return nil, &UnknownWordError{Word: w}
		}
		elems[i] = elem
	}

	// Order carries no information: canonicalize before ranking.
	sort.Ints(elems)
	for i := 0; i < len(elems)-1; i++ {
		if elems[i] == elems[i+1] {
			return nil, &DuplicateWordError{Word: wordlist.Word(elems[i]), Index: elems[i]}
		}
	}

	data, err := engine.Rank(elems)
	if err != nil {
		return nil, err
	}
	if data.BitLen() > params.entropyBits+params.checksumBits {
		return nil, ErrValueOutOfRange
	}

	value, embedded := extractChecksum(data, words)
	entropy := make([]byte, params.entropyBits/8)
	value.FillBytes(entropy)
	if checksum(entropy, words).Cmp(embedded) != 0 {
		return nil, ErrChecksumMismatch
	}
	return entropy, nil
}
