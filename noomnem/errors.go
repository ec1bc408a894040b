/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noomnem

import (
	"fmt"

	"github.com/pkg/errors"
)

// Decode failures are deterministic data-validation failures, never transient:
// retrying the same input yields the same error. Each kind carries enough of
// the offending input to produce a precise diagnostic.
var (
	// ErrValueOutOfRange reports a structurally invalid combination: its rank
	// exceeds the bit budget of entropy plus checksum, which no Encode output
	// can ever reach.
	ErrValueOutOfRange = errors.New("phrase decodes to a value exceeding its entropy capacity")

	// ErrChecksumMismatch reports that the recomputed checksum differs from
	// the one embedded in the phrase, the typical sign of a mistyped or
	// corrupted word.
	ErrChecksumMismatch = errors.New("phrase checksum verification failed")
)

// UnsupportedLengthError reports an entropy size or a phrase word count
// outside the fixed table of supported lengths. Exactly one of Words or Bytes
// is set, depending on the failing direction.
type UnsupportedLengthError struct {
	Words int // phrase length, when decoding
	Bytes int // entropy length, when encoding
}

func (e *UnsupportedLengthError) Error() string {
	if e.Words != 0 {
		return fmt.Sprintf("unsupported phrase length of %d words: supported lengths are 16, 26 and 37", e.Words)
	}
	return fmt.Sprintf("unsupported entropy length of %d bytes: supported lengths are 16, 24 and 32", e.Bytes)
}

// UnknownWordError reports a phrase token that is not part of the vocabulary.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("word %q is not in the vocabulary", e.Word)
}

// DuplicateWordError reports a word occurring more than once in a phrase.
// Word order carries no information here, so a repetition is ambiguous and
// must be rejected rather than collapsed.
type DuplicateWordError struct {
	Word  string
	Index int // vocabulary index of the repeated word
}

func (e *DuplicateWordError) Error() string {
	return fmt.Sprintf("word %q (index %d) appears more than once", e.Word, e.Index)
}
