// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dctap/cmd/dctap/internal/clierr"
	"dctap/internal/render"
)

// NewDocsCommand constructs the `dctap docs` command, which projects a
// parsed profile to a Markdown document.
func NewDocsCommand() *cobra.Command {
	var (
		configPath string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "docs <profile.csv>",
		Short: "Render a DCTAP CSV file as a Markdown document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, warnings, err := runPipeline(configPath, args[0])
			if err != nil {
				return err
			}

			doc := render.Document(profile, warnings)
			if outPath == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}

			if err := render.AtomicWrite(outPath, []byte(doc)); err != nil {
				return clierr.Wrap(clierr.CodeGeneric, "writing document", err)
			}
			log.Infof("wrote %s", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "dctap.yaml", "Path to the settings file")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the document to this path instead of stdout")

	return cmd
}
