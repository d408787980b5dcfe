package cmd

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/cdragos/merge-codebase-to-xml/pkg/bundle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// resetRoot clears flag values and parse state so each test sees a fresh
// command. Cobra keeps flag state on the package-level RootCmd between
// Execute calls.
func resetRoot(t *testing.T) {
	t.Helper()
	inputDir = ""
	files = nil
	outputFile = ""
	treeFile = ""
	excludePatterns = nil
	globalExcludeFile = ""
	maxFileSizeKB = 0
	for _, name := range []string{
		"input-dir", "file", "output-file", "tree-file",
		"exclude", "global-exclude-file", "max-file-size-kb",
	} {
		flag := RootCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "flag %s should be registered", name)
		flag.Changed = false
	}

	short := versionCmd.Flags().Lookup("short")
	require.NotNil(t, short)
	require.NoError(t, short.Value.Set("false"))
	short.Changed = false
}

// runRoot executes the root command with the given args and returns its
// combined output.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetRoot(t)

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs(args)

	err := Execute(zaptest.NewLogger(t))
	return buf.String(), err
}

func TestRootRequiresSourceFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bundle.xml")

	_, err := runRoot(t, "--output-file", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of the flags in the group")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file should be written on a usage error")
}

func TestRootRequiresOutputFile(t *testing.T) {
	src := t.TempDir()

	_, err := runRoot(t, "--input-dir", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"output-file" not set`)
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	_, err := runRoot(t, "stray", "--output-file", filepath.Join(t.TempDir(), "bundle.xml"))
	require.Error(t, err)
}

func TestRootMergesCodebase(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.py"), []byte("alpha\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("skip\n"), 0o644))

	other := t.TempDir()
	extra := filepath.Join(other, "extra.ts")
	require.NoError(t, os.WriteFile(extra, []byte("gamma\n"), 0o644))

	out := filepath.Join(t.TempDir(), "bundle.xml")
	_, err := runRoot(t,
		"--input-dir", src,
		"--file", extra,
		"--output-file", out,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc bundle.Document
	require.NoError(t, xml.Unmarshal(data, &doc))
	require.Len(t, doc.Files, 2)

	names := []string{doc.Files[0].Filename, doc.Files[1].Filename}
	assert.Contains(t, names, "a.py")
	assert.Contains(t, names, "extra.ts")
}

func TestVersionCommand(t *testing.T) {
	output, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "merge-codebase-to-xml version dev (commit: none)")
}

func TestVersionCommandShort(t *testing.T) {
	output, err := runRoot(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", output)
}
