package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/speclint/cmd"
	"github.com/thoreinstein/speclint/internal/errors"
	"github.com/thoreinstein/speclint/internal/paths"
)

var (
	genDocDir    string
	genDocFormat string
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		if genDocDir == "" {
			return errors.NewUserError(errors.New("output directory is required"), "Pass --dir")
		}
		if err := paths.EnsureDir(genDocDir, 0o755); err != nil {
			return errors.Wrap(err, "creating output directory")
		}

		if err := generateDocs(genDocDir, genDocFormat); err != nil {
			return err
		}

		fmt.Fprintf(c.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
		return nil
	},
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "Output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "Documentation format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

func generateDocs(dir, format string) error {
	rootCmd.DisableAutoGenTag = true

	switch format {
	case "markdown", "md":
		return errors.Wrap(doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler), "generating markdown")
	case "man":
		header := &doc.GenManHeader{
			Title:   "SPECLINT",
			Section: "1",
			Source:  "speclint " + cmd.BuildInfo().Version,
		}
		return errors.Wrap(doc.GenManTree(rootCmd, header, dir), "generating man pages")
	default:
		return errors.NewUserError(errors.Newf("unknown documentation format %q", format), "Use --format markdown or --format man")
	}
}

// filePrepender adds front matter naming the command, e.g. speclint_rules_list.md -> "rules list".
func filePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	title := strings.ReplaceAll(strings.TrimPrefix(base, "speclint_"), "_", " ")
	if base == "speclint" {
		title = "speclint"
	}

	return fmt.Sprintf("---\ntitle: %q\ndescription: %q\n---\n\n", title, "Reference for the "+title+" command")
}

func linkHandler(name string) string {
	return strings.ToLower(name)
}
