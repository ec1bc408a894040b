/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package tool implements the subcommands of the noomnem command-line tool.
package tool

import (
	"io"
	"strings"

	"github.com/noomnem/noomnem/common/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// EnvPrefix is the viper environment prefix: the "bits" flag of the generate
// command, for example, maps to NOOMNEM_GENERATE_BITS.
const EnvPrefix = "NOOMNEM"

var logger = logging.MustGetLogger("tool")

var flags *pflag.FlagSet

func init() {
	resetFlags()
}

// Explicitly define a method to facilitate tests
func resetFlags() {
	flags = &pflag.FlagSet{}

	flags.BoolVar(&encodeOrdered, "ordered", false,
		"Emit the ordered phrase instead of the order-free one")
	flags.Int("bits", 128, "Entropy size in bits: 128, 192 or 256")
}

func attachFlags(cmd *cobra.Command, names []string) {
	cmdFlags := cmd.Flags()
	for _, name := range names {
		if flag := flags.Lookup(name); flag != nil {
			cmdFlags.AddFlag(flag)
		} else {
			logger.Fatalf("Could not find flag '%s' to attach to command '%s'", name, cmd.Name())
		}
	}
}

// readPhrase returns the words of the phrase given as command arguments or,
// when there are none, on standard input. Arguments may be individual words
// or whole quoted phrases; any whitespace separates words.
func readPhrase(cmd *cobra.Command, args []string) ([]string, error) {
	var words []string
	for _, arg := range args {
		words = append(words, strings.Fields(arg)...)
	}
	if len(words) > 0 {
		return words, nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, "failed to read phrase from stdin")
	}
	words = strings.Fields(string(raw))
	if len(words) == 0 {
		return nil, errors.New("no phrase given: pass words as arguments or on stdin")
	}
	return words, nil
}
