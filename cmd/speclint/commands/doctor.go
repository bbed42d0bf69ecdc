package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/speclint/internal/config"
	"github.com/thoreinstein/speclint/internal/doctor"
	"github.com/thoreinstein/speclint/internal/errors"
)

var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Run diagnostic checks on the speclint configuration.

Reports where the config file was found, whether it loads, whether every
disabled rule exists, and whether the worker count suits this machine.

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("doctor found warnings")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("doctor found errors")

func doctorChecks() []doctor.Check {
	used := config.ConfigFileUsed()
	if used == "" {
		used = configFile
	}
	cfg := currentConfig()
	return []doctor.Check{
		&doctor.ConfigFileCheck{Path: used, LoadErr: configLoadErr},
		&doctor.ConfigPermissionCheck{Path: used},
		&doctor.RuleSelectionCheck{Disabled: cfg.DisabledRules},
		&doctor.WorkersCheck{Workers: cfg.Workers},
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	report := doctor.NewRunner(doctorChecks()...).Run(cmd.Context())

	w := cmd.OutOrStdout()
	if doctorJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		fmt.Fprintln(w, string(data))
	} else {
		printDoctorText(w, report)
	}

	switch {
	case report.HasErrors():
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	case report.HasWarnings():
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	default:
		return nil
	}
}

func printDoctorText(w io.Writer, report *doctor.Report) {
	for _, result := range report.Results {
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && result.Status >= doctor.SeverityWarning {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	fmt.Fprintf(w, "\nSummary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
