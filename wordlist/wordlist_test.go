/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wordlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVocabularyShape(t *testing.T) {
	seen := make(map[string]struct{}, Size)
	for i := 0; i < Size; i++ {
		w := Word(i)
		require.NotEmpty(t, w)
		require.Equal(t, strings.ToLower(w), w, "word %d is not lowercase", i)
		require.NotContains(t, seen, w, "word %q repeats", w)
		seen[w] = struct{}{}

		if i > 0 {
			require.Greater(t, w, Word(i-1), "word %d breaks sort order", i)
		}
	}
}

func TestKnownIndices(t *testing.T) {
	tests := []struct {
		word  string
		index int
	}{
		{word: "abandon", index: 0},
		{word: "ability", index: 1},
		{word: "about", index: 3},
		{word: "zoo", index: 2047},
	}
	for _, tt := range tests {
		require.Equal(t, tt.word, Word(tt.index))
		i, ok := Index(tt.word)
		require.True(t, ok)
		require.Equal(t, tt.index, i)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < Size; i++ {
		got, ok := Index(Word(i))
		require.True(t, ok)
		require.Equal(t, i, got)
	}
}

func TestIndexMisses(t *testing.T) {
	for _, w := range []string{"", "notaword", "Abandon", " zoo", "zoo "} {
		_, ok := Index(w)
		require.False(t, ok, "unexpected hit for %q", w)
	}
}

func TestWordPanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { Word(-1) })
	require.Panics(t, func() { Word(Size) })
}
