// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dctap/cmd/dctap/internal/clierr"
	"dctap/internal/config"
	"dctap/internal/csvreader"
)

// NewReadCommand constructs the `dctap read` command.
func NewReadCommand() *cobra.Command {
	var (
		configPath string
		format     string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "read <profile.csv>",
		Short: "Parse a DCTAP CSV file into shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, warnings, err := runPipeline(configPath, args[0])
			if err != nil {
				return err
			}

			if debug {
				spew.Fdump(cmd.ErrOrStderr(), profile)
			}
			logWarnings(profile, warnings)

			var out []byte
			switch format {
			case "json":
				out, err = json.MarshalIndent(profile, "", "  ")
			case "yaml":
				out, err = yaml.Marshal(profile)
			default:
				return clierr.Newf(clierr.CodeUsage, "unknown output format %q", format)
			}
			if err != nil {
				return clierr.Wrap(clierr.CodeGeneric, "encoding result", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "dctap.yaml", "Path to the settings file")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	cmd.Flags().BoolVar(&debug, "debug", false, "Dump the parsed shape graph to stderr")

	return cmd
}

// runPipeline loads settings, opens the source and runs the reader,
// translating failures into exit-coded errors.
func runPipeline(configPath, sourcePath string) (*csvreader.ParsedProfile, csvreader.Warnings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, nil, clierr.Wrap(clierr.CodeUsage, "loading settings", err)
	}
	if settings.Extras() {
		log.Warnf("settings: extra element lists are configured but have no effect")
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		return nil, nil, clierr.Wrap(clierr.CodeUsage, "opening profile", err)
	}
	defer func() { _ = f.Close() }()

	log.Debugf("reading profile from %s", sourcePath)
	profile, warnings, err := csvreader.Read(f, settings)
	if err != nil {
		var formatErr *csvreader.FormatError
		if errors.As(err, &formatErr) {
			return nil, nil, clierr.Wrap(clierr.CodeFormat, "invalid profile", err)
		}
		return nil, nil, clierr.Wrap(clierr.CodeGeneric, "reading profile", err)
	}
	log.Debugf("parsed %d shape(s)", len(profile.Shapes))

	return profile, warnings, nil
}

// logWarnings reports collected warnings on stderr, shapes in creation
// order and elements sorted within each shape.
func logWarnings(profile *csvreader.ParsedProfile, warnings csvreader.Warnings) {
	for _, shape := range profile.Shapes {
		bucket := warnings[shape.ShapeID]
		elements := make([]string, 0, len(bucket))
		for element := range bucket {
			elements = append(elements, element)
		}
		sort.Strings(elements)
		for _, element := range elements {
			for _, message := range bucket[element] {
				log.Warnf("shape %s, element %s: %s", shape.ShapeID, element, message)
			}
		}
	}
}
