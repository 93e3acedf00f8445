// Package main provides end-to-end tests for the curatekit CLI.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/curatekit/internal/cli"
	"github.com/leapstack-labs/curatekit/internal/cli/commands"
	"github.com/leapstack-labs/curatekit/internal/cli/config"
	"github.com/leapstack-labs/curatekit/internal/testutil"
	"github.com/leapstack-labs/curatekit/pkg/core"
)

// runCLI executes the root command in a fresh working directory.
func runCLI(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(dir)
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "curatekit v")
}

func TestSplitThenValidate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "master.tsv"),
		[]byte(testutil.TemplateTSV(testutil.MasterRows(10)...)), 0o600))

	out, _, err := runCLI(t, dir, "split", "master.tsv", "-k", "3", "-p", "20", "--seed", "42", "-o", "json")
	require.NoError(t, err)

	var res commands.SplitJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Curators, 3)
	assert.True(t, strings.HasSuffix(res.Curators[0].File, filepath.Join("assignments", "curator1.tsv")), res.Curators[0].File)

	files, err := filepath.Glob(filepath.Join(dir, "assignments", "*.tsv"))
	require.NoError(t, err)
	require.Len(t, files, 3)

	_, _, err = runCLI(t, dir, append([]string{"validate"}, files...)...)
	require.NoError(t, err, "assignments of a clean master validate cleanly")
}

func TestConfigFileDrivesSplit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "master.tsv"),
		[]byte(testutil.TemplateTSV(testutil.MasterRows(8)...)), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "curatekit.yaml"), []byte(`
output: json
split:
  curators: 2
  overlap: 25
  seed: 9
  names: [ann, bob]
  out_dir: review
`), 0o600))

	out, _, err := runCLI(t, dir, "split", "master.tsv")
	require.NoError(t, err)

	var res commands.SplitJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, uint64(9), res.Seed)
	require.Len(t, res.Curators, 2)
	assert.Equal(t, "ann", res.Curators[0].Curator)
	assert.FileExists(t, filepath.Join(dir, "review", "bob.tsv"))
	assert.FileExists(t, filepath.Join(dir, "review", "assignments.yaml"))

	t.Run("flags override the file", func(t *testing.T) {
		out, _, err := runCLI(t, dir, "split", "master.tsv", "--seed", "10", "--dry-run")
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, uint64(10), res.Seed)
	})
}

func TestValidateExitStatus(t *testing.T) {
	dir := t.TempDir()
	rows := testutil.MasterRows(3)
	rows[1].Description = ""
	require.NoError(t, os.WriteFile(filepath.Join(dir, "master.tsv"), []byte(testutil.TemplateTSV(rows...)), 0o600))

	_, _, err := runCLI(t, dir, "lint", "master.tsv")
	require.ErrorIs(t, err, commands.ErrValidation)

	t.Run("severity override in config", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "curatekit.yaml"),
			[]byte("lint:\n  severity:\n    DF01: warning\n"), 0o600))
		t.Cleanup(func() { _ = os.Remove(filepath.Join(dir, "curatekit.yaml")) })

		_, _, err := runCLI(t, dir, "validate", "master.tsv")
		require.NoError(t, err)
	})
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "curatekit.yaml"), []byte("output: html\n"), 0o600))

	_, _, err := runCLI(t, dir, "rules")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrConfiguration))
}

func TestVerboseLogging(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "curatekit.yaml"), []byte("split:\n  curators: 2\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "master.tsv"),
		[]byte(testutil.TemplateTSV(testutil.MasterRows(4)...)), 0o600))

	_, stderr, err := runCLI(t, dir, "split", "master.tsv", "-v", "--log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, stderr, "Using config file: ")
	var sawComplete bool
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "split complete" {
			sawComplete = true
			assert.NotEmpty(t, entry["run_id"])
		}
	}
	assert.True(t, sawComplete, "info log emitted under --verbose")
}

func TestCompletion(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "curatekit")
}
