package commands

import (
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/speclint/internal/errors"
	"github.com/thoreinstein/speclint/internal/rules"
)

var rulesListJSON bool

// stdinIsTerminal reports whether the rule picker can be shown.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// pickRule lets the user choose a rule interactively.
var pickRule = func(catalog []rules.Rule) (int, error) {
	return fuzzyfinder.Find(
		catalog,
		func(i int) string {
			return catalog[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describeRule(catalog[i], isEnabled(catalog[i].Name))
		}),
	)
}

func init() {
	rulesListCmd.Flags().BoolVar(&rulesListJSON, "json", false, "Output in JSON format")
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the rule catalog",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rules",
	Long:  `List every rule in the catalog, the node type it checks, and whether it is enabled by the current configuration.`,
	Example: `  speclint rules list
  speclint rules list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if rulesListJSON {
			return listRulesJSON(cmd.OutOrStdout())
		}
		return listRulesText(cmd.OutOrStdout())
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show details for a rule",
	Long: `Show the description, subject type and status of a rule.

Without a name, an interactive picker is opened when stdin is a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRulesShow,
}

// ruleJSON is the JSON shape of one catalog entry.
type ruleJSON struct {
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

func isEnabled(name string) bool {
	return !slices.Contains(currentConfig().DisabledRules, name)
}

func listRulesJSON(w io.Writer) error {
	catalog := rules.Catalog()
	out := make([]ruleJSON, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, ruleJSON{
			Name:        r.Name,
			Subject:     r.Subject,
			Description: r.Description,
			Enabled:     isEnabled(r.Name),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding rules")
	}
	_, err = fmt.Fprintln(w, string(data))
	return errors.Wrap(err, "writing rules")
}

func listRulesText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSUBJECT\tSTATUS\tDESCRIPTION")
	for _, r := range rules.Catalog() {
		status := "enabled"
		if !isEnabled(r.Name) {
			status = "disabled"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Subject, status, r.Description)
	}
	return errors.Wrap(tw.Flush(), "writing rules")
}

func runRulesShow(cmd *cobra.Command, args []string) error {
	var rule rules.Rule
	if len(args) == 1 {
		r, ok := rules.Lookup(args[0])
		if !ok {
			err := errors.Wrapf(errors.ErrUnknownRule, "%q", args[0])
			return errors.NewUserError(err, "Run 'speclint rules list' to see available rules")
		}
		rule = r
	} else {
		if !stdinIsTerminal() {
			return errors.NewUserError(errors.New("rule name required"), "Usage: speclint rules show <name>")
		}
		catalog := rules.Catalog()
		idx, err := pickRule(catalog)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			return errors.Wrap(err, "interactive rule picker failed")
		}
		rule = catalog[idx]
	}

	fmt.Fprintln(cmd.OutOrStdout(), describeRule(rule, isEnabled(rule.Name)))
	return nil
}

func describeRule(r rules.Rule, enabled bool) string {
	status := color.GreenString("enabled")
	if !enabled {
		status = color.YellowString("disabled")
	}
	return fmt.Sprintf("%s\nSubject: %s\nStatus:  %s\n\n%s",
		color.New(color.Bold).Sprint(r.Name), r.Subject, status, r.Description)
}
