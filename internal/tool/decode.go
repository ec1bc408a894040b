/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tool

import (
	"encoding/hex"
	"fmt"

	"github.com/noomnem/noomnem/bip39"
	"github.com/noomnem/noomnem/noomnem"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// DecodeCmd returns the cobra command decoding a phrase into hex entropy.
func DecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [phrase]",
		Short: "Decode a mnemonic phrase into hex entropy.",
		Long: "Decode a phrase, given in the arguments or on stdin, into its entropy as a hex string. " +
			"The scheme follows from the word count: ordered phrases have 12, 15, 18, 21 or 24 words, " +
			"order-free phrases 16, 26 or 37.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return decode(cmd, args)
		},
	}
}

func decode(cmd *cobra.Command, args []string) error {
	words, err := readPhrase(cmd, args)
	if err != nil {
		return err
	}

	// Parsing of the command line is done so silence cmd usage
	cmd.SilenceUsage = true

	entropy, err := decodePhrase(words)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(entropy))
	return nil
}

func decodePhrase(words []string) ([]byte, error) {
	// The two schemes use disjoint phrase lengths, so the word count selects
	// the codec on its own.
	switch len(words) {
	case 12, 15, 18, 21, 24:
		return bip39.Decode(words)
	case 16, 26, 37:
		return noomnem.Decode(words)
	default:
		return nil, errors.Errorf("no phrase scheme uses %d words", len(words))
	}
}
