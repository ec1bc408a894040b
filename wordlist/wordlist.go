/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package wordlist provides the fixed 2048-word English vocabulary shared by
// the mnemonic codecs. The list is compiled into the binary and never changes;
// both lookup directions are constant time.
package wordlist

import (
	_ "embed"
	"fmt"
	"strings"
)

// Size is the number of words in the vocabulary.
const Size = 2048

//go:embed english.txt
var english string

var (
	words   []string
	indexes map[string]int
)

func init() {
	words = strings.Split(strings.TrimSpace(english), "\n")
	if len(words) != Size {
		panic(fmt.Sprintf("wordlist: embedded vocabulary holds %d words, want %d", len(words), Size))
	}

	indexes = make(map[string]int, Size)
	for i, w := range words {
		if i > 0 && w <= words[i-1] {
			panic(fmt.Sprintf("wordlist: %q out of order after %q", w, words[i-1]))
		}
		indexes[w] = i
	}
}

// Word returns the vocabulary word at index i. It panics when i is outside
// [0, Size); indices reaching this package have already been range-checked by
// the codecs.
func Word(i int) string {
	return words[i]
}

// Index returns the index of the given word and whether the word is part of
// the vocabulary. Lookups are exact: words must be lowercase and untrimmed
// input will not match.
func Index(word string) (int, bool) {
	i, ok := indexes[word]
	return i, ok
}
