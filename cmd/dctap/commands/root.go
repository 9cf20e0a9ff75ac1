// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands wires the dctap CLI: reading a tabular application
// profile into shapes and projecting it to documentation.
package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd constructs the dctap root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("DCTAP_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "dctap",
		Short:         "dctap - DCTAP application profile reader",
		Long:          "dctap reads tabular application profiles (DCTAP CSV) into structured shapes and renders them for validation and documentation tools.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of dctap",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dctap version %s\n", version)
		},
	})

	cmd.AddCommand(NewReadCommand())
	cmd.AddCommand(NewDocsCommand())

	return cmd
}
