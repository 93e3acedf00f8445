package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/curatekit/internal/cli/config"
)

// execute runs cmd with args and returns what it wrote to stdout and stderr.
// Commands run outside the root command, so no config file is loaded and
// auto output resolves to markdown.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
