// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dctap/cmd/dctap/internal/clierr"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReadCommand_JSON(t *testing.T) {
	profile := writeProfile(t, "shapeID,propertyID\n:book,dc:title\n,dc:creator\n")

	out, err := execute(t, "read", profile, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	var decoded struct {
		Shapes []struct {
			ShapeID              string `json:"shapeID"`
			StatementConstraints []struct {
				PropertyID string `json:"propertyID"`
			} `json:"statement_constraints"`
		} `json:"shapes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Shapes, 1)
	assert.Equal(t, ":book", decoded.Shapes[0].ShapeID)
	require.Len(t, decoded.Shapes[0].StatementConstraints, 2)
	assert.Equal(t, "dc:creator", decoded.Shapes[0].StatementConstraints[1].PropertyID)
}

func TestReadCommand_YAMLFormat(t *testing.T) {
	profile := writeProfile(t, "shapeID,propertyID\n:book,dc:title\n")

	out, err := execute(t, "read", profile, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "propertyID: dc:title")
}

func TestReadCommand_UnknownFormat(t *testing.T) {
	profile := writeProfile(t, "shapeID,propertyID\n:book,dc:title\n")

	_, err := execute(t, "read", profile, "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, clierr.CodeUsage, clierr.ExitCodeOf(err))
}

func TestReadCommand_MissingPropertyIDColumn(t *testing.T) {
	profile := writeProfile(t, "shapeID,note\n:book,hello\n")

	_, err := execute(t, "read", profile)
	require.Error(t, err)
	assert.Equal(t, clierr.CodeFormat, clierr.ExitCodeOf(err))
}

func TestReadCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "read", filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Equal(t, clierr.CodeUsage, clierr.ExitCodeOf(err))
}

func TestDocsCommand_Stdout(t *testing.T) {
	profile := writeProfile(t, "shapeID,propertyID\n:book,dc:title\n")

	out, err := execute(t, "docs", profile)
	require.NoError(t, err)
	assert.Contains(t, out, "# Application Profile")
	assert.Contains(t, out, "## Shape: :book")
	assert.Contains(t, out, "dc:title")
}

func TestDocsCommand_WritesFile(t *testing.T) {
	profile := writeProfile(t, "shapeID,propertyID\n:book,dc:title\n")
	outPath := filepath.Join(t.TempDir(), "docs", "profile.md")

	_, err := execute(t, "docs", profile, "--out", outPath)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "## Shape: :book")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dctap version")
}
