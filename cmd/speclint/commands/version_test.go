package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/speclint/cmd"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	info := cmd.BuildInfo()
	output := buf.String()
	for _, want := range []string{
		"speclint version " + info.Version,
		"commit: " + info.Commit,
		"built:  " + info.Date,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
