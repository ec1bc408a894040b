/*
Copyright the Noomnem contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tool

import (
	"fmt"
	"runtime"

	"github.com/noomnem/noomnem/common/metadata"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// VersionCmd returns the version information command.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errors.New("trailing args detected")
			}
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true
			fmt.Fprint(cmd.OutOrStdout(), GetInfo())
			return nil
		},
	}
}

// GetInfo returns version information for the command-line tool.
func GetInfo() string {
	return fmt.Sprintf("noomnem:\n Version: %s\n Commit SHA: %s\n"+
		" Go version: %s\n OS/Arch: %s\n",
		metadata.Version,
		metadata.CommitSHA,
		runtime.Version(),
		fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}
