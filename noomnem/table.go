/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noomnem

import (
	"sort"

	"github.com/noomnem/noomnem/combinatorics"
	"github.com/noomnem/noomnem/wordlist"
)

// lengthParams describes how the bits of a phrase of a given word count are
// split between entropy and checksum.
type lengthParams struct {
	entropyBits  int
	checksumBits int
}

// supportedLengths is the fixed table of phrase lengths. For 128 and 192 bits
// the word count is the minimum whose combinatorial capacity covers the
// entropy; for 256 bits the minimum would be 36 words but leaves a single
// checksum bit, so one extra word buys a 7-bit checksum instead. The split
// must satisfy 2^(entropyBits+checksumBits) <= C(2048, words); see the
// derivation tests.
var supportedLengths = map[int]lengthParams{
	16: {entropyBits: 128, checksumBits: 3},
	26: {entropyBits: 192, checksumBits: 5},
	37: {entropyBits: 256, checksumBits: 7},
}

// wordsByEntropyBits is the reverse lookup, entropy bit count to word count.
var wordsByEntropyBits = make(map[int]int, len(supportedLengths))

func init() {
	for words, params := range supportedLengths {
		wordsByEntropyBits[params.entropyBits] = words
	}
}

// Lengths returns the supported phrase word counts in ascending order.
func Lengths() []int {
	lengths := make([]int, 0, len(supportedLengths))
	for words := range supportedLengths {
		lengths = append(lengths, words)
	}
	sort.Ints(lengths)
	return lengths
}

// EntropyBits returns the number of entropy bits carried by a phrase of the
// given word count, and whether that word count is supported.
func EntropyBits(words int) (int, bool) {
	params, ok := supportedLengths[words]
	if !ok {
		return 0, false
	}
	return params.entropyBits, true
}

// wordsForEntropy derives the minimum word count whose combinatorial capacity
// covers the desired entropy, or 0 if no count up to half the vocabulary
// does. The shipped table is frozen, but the derivation stays testable.
func wordsForEntropy(entropyBits int) int {
	for i := 1; i < wordlist.Size/2; i++ {
		capacity := combinatorics.Log2(combinatorics.Binomial(wordlist.Size, i))
		if capacity >= entropyBits {
			return i
		}
	}
	return 0
}

// checksumWidth derives the checksum bit width for a word count as the excess
// capacity beyond the entropy bits, floored.
func checksumWidth(words, entropyBits int) int {
	return combinatorics.Log2(combinatorics.Binomial(wordlist.Size, words)) - entropyBits
}
