/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tool

import (
	"fmt"
	"strings"

	"github.com/noomnem/noomnem/bip39"
	"github.com/noomnem/noomnem/noomnem"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ConvertCmd returns the cobra command converting between the two phrase
// schemes.
func ConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [phrase]",
		Short: "Convert between ordered and order-free phrases.",
		Long: "Convert a 12, 18 or 24-word ordered phrase into its order-free equivalent, " +
			"or a 16, 26 or 37-word order-free phrase back into the ordered form. " +
			"The phrase is taken from the arguments or from stdin; the direction follows from the word count.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, args)
		},
	}
}

func convert(cmd *cobra.Command, args []string) error {
	words, err := readPhrase(cmd, args)
	if err != nil {
		return err
	}

	// Parsing of the command line is done so silence cmd usage
	cmd.SilenceUsage = true

	converted, err := convertPhrase(words)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(converted, " "))
	return nil
}

func convertPhrase(words []string) ([]string, error) {
	switch len(words) {
	case 12, 18, 24:
		logger.Debugf("converting a %d-word ordered phrase", len(words))
		entropy, err := bip39.Decode(words)
		if err != nil {
			return nil, err
		}
		return noomnem.Encode(entropy)

	case 16, 26, 37:
		logger.Debugf("converting a %d-word order-free phrase", len(words))
		entropy, err := noomnem.Decode(words)
		if err != nil {
			return nil, err
		}
		return bip39.Encode(entropy)

	case 15, 21:
		return nil, errors.Errorf(
			"a %d-word ordered phrase carries %d bits of entropy, for which no order-free phrase length exists",
			len(words), len(words)/3*32)

	default:
		return nil, errors.Errorf(
			"cannot convert a %d-word phrase: ordered phrases have 12, 18 or 24 words, order-free phrases 16, 26 or 37",
			len(words))
	}
}
