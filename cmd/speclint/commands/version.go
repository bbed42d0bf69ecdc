package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/speclint/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of speclint.`,
	Run: func(c *cobra.Command, _ []string) {
		info := cmd.BuildInfo()
		w := c.OutOrStdout()
		fmt.Fprintf(w, "speclint version %s\n", info.Version)
		fmt.Fprintf(w, "  commit: %s\n", info.Commit)
		fmt.Fprintf(w, "  built:  %s\n", info.Date)
	},
}
