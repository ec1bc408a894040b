/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the entrypoint for the noomnem binary: a converter between
// raw entropy, ordered mnemonic phrases and order-free mnemonic phrases.
package main

import (
	"os"
	"strings"

	"github.com/noomnem/noomnem/internal/tool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// The main command describes the tool and defaults to printing the help.
var mainCmd = &cobra.Command{
	Use:   "noomnem",
	Short: "Mnemonic phrase tool.",
	Long: "Converts between raw entropy, ordered mnemonic phrases and order-free " +
		"mnemonic phrases, in which only the set of words matters and any word " +
		"order decodes to the same entropy.",
}

func main() {
	viper.SetEnvPrefix(tool.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	mainCmd.AddCommand(tool.ConvertCmd())
	mainCmd.AddCommand(tool.EncodeCmd())
	mainCmd.AddCommand(tool.DecodeCmd())
	mainCmd.AddCommand(tool.GenerateCmd())
	mainCmd.AddCommand(tool.VersionCmd())

	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
