// SPDX-License-Identifier: AGPL-3.0-or-later

// Package golden reads and updates golden files for rendering tests.
// Run tests with -update to rewrite the expectations.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

var Update = flag.Bool("update", false, "update golden files")

// TestdataDir resolves the testdata directory next to the calling test.
func TestdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}

// Check compares got against the named golden file, rewriting the file
// first when -update is set.
func Check(t *testing.T, testdataDir, name, got string) {
	t.Helper()
	safeName(t, name)

	path := filepath.Join(testdataDir, name+".golden")
	if *Update {
		if err := os.MkdirAll(testdataDir, 0o750); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o600); err != nil {
			t.Fatalf("write golden %s: %v", path, err)
		}
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	if got != string(want) {
		t.Errorf("output does not match %s\ngot:\n%s\nwant:\n%s", path, got, want)
	}
}

func safeName(t *testing.T, name string) {
	t.Helper()
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		t.Fatalf("invalid golden name %q", name)
	}
}
