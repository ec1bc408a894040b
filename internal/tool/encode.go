/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tool

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/noomnem/noomnem/bip39"
	"github.com/noomnem/noomnem/noomnem"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encodeOrdered bool

// EncodeCmd returns the cobra command encoding hex entropy into a phrase.
func EncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [hex-entropy]",
		Short: "Encode hex entropy into a mnemonic phrase.",
		Long: "Encode entropy, given as a hex string in the arguments or on stdin, " +
			"into an order-free phrase, or into an ordered phrase with --ordered.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return encode(cmd, args)
		},
	}
	resetFlags()
	attachFlags(cmd, []string{"ordered"})
	return cmd
}

func encode(cmd *cobra.Command, args []string) error {
	input, err := readHex(cmd, args)
	if err != nil {
		return err
	}

	// Parsing of the command line is done so silence cmd usage
	cmd.SilenceUsage = true

	entropy, err := hex.DecodeString(input)
	if err != nil {
		return errors.Wrapf(err, "entropy %q is not a hex string", input)
	}

	var phrase []string
	if encodeOrdered {
		phrase, err = bip39.Encode(entropy)
	} else {
		phrase, err = noomnem.Encode(entropy)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(phrase, " "))
	return nil
}

func readHex(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "failed to read entropy from stdin")
	}
	input := strings.TrimSpace(string(raw))
	if input == "" {
		return "", errors.New("no entropy given: pass a hex string as an argument or on stdin")
	}
	return input, nil
}
