/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tool

import (
	"fmt"
	"strings"

	"github.com/noomnem/noomnem/bip39"
	"github.com/noomnem/noomnem/common/crypto"
	"github.com/noomnem/noomnem/noomnem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GenerateCmd returns the cobra command generating fresh entropy.
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate fresh entropy and print it with both phrases.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd)
		},
	}
	resetFlags()
	attachFlags(cmd, []string{"bits"})
	viper.BindPFlag("generate.bits", flags.Lookup("bits"))
	return cmd
}

func generate(cmd *cobra.Command) error {
	cmd.SilenceUsage = true

	bits := viper.GetInt("generate.bits")
	entropy, err := crypto.GetRandomEntropy(bits)
	if err != nil {
		return err
	}
	logger.Debugf("generated %d bits of entropy", bits)

	ordered, err := bip39.Encode(entropy)
	if err != nil {
		return err
	}
	orderFree, err := noomnem.Encode(entropy)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "entropy: %x\n", entropy)
	fmt.Fprintf(out, "ordered: %s\n", strings.Join(ordered, " "))
	fmt.Fprintf(out, "order-free: %s\n", strings.Join(orderFree, " "))
	return nil
}
