package commands

import (
	"context"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/speclint/internal/errors"
	"github.com/thoreinstein/speclint/internal/logging"
	"github.com/thoreinstein/speclint/internal/report"
	"github.com/thoreinstein/speclint/internal/rules"
	"github.com/thoreinstein/speclint/pkg/fileutil"
	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/walk"
)

var (
	validateFormat   string
	validateDisabled []string
	validateWorkers  int
	validateOutput   string
	validateStdinFmt string
)

// stdinArg names standard input in the file list.
const stdinArg = "-"

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "",
		"report format: text, json (default from config)")
	validateCmd.Flags().StringArrayVar(&validateDisabled, "disable", nil,
		"disable a rule by name (repeatable)")
	validateCmd.Flags().IntVarP(&validateWorkers, "workers", "w", 0,
		"number of nodes validated concurrently (default from config)")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "",
		"write the report to a file instead of stdout")
	validateCmd.Flags().StringVar(&validateStdinFmt, "stdin-format", "yaml",
		"format of a document read from stdin (\"-\"): json, yaml, toml")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate one or more OpenAPI documents",
	Long: `Validate OpenAPI documents against the rule catalog.

Every enabled rule runs against every node of every document; all violations
are reported, in document order. Rules listed under disabled_rules in the
config file and rules passed with --disable are skipped. Pass "-" to read a
document from stdin.

Exit codes:
  0 - All documents are valid
  1 - At least one document is invalid, or the input could not be read
  2 - System error`,
	Example: `  speclint validate openapi.yaml
  speclint validate --format json -o report.json api/*.yaml
  speclint validate --disable operation-tags-defined --workers 4 openapi.json
  cat openapi.json | speclint validate --stdin-format json -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

// validateOptions is the effective configuration of one validate run.
type validateOptions struct {
	format   report.Format
	workers  int
	rules    []rules.Rule
	output   string
	disabled []string
	stdinFmt openapi.Format
}

// resolveValidateOptions merges flags over the loaded configuration and
// checks the file arguments.
func resolveValidateOptions(files []string) (*validateOptions, error) {
	cfg := currentConfig()

	if n := countStdin(files); n > 1 {
		return nil, errors.NewUserError(
			errors.Newf("stdin (%q) given %d times; it can be read only once", stdinArg, n),
			"Pass \"-\" at most once")
	}

	formatName := validateFormat
	if formatName == "" {
		formatName = cfg.Format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return nil, errors.NewUserError(err, "Use --format text or --format json")
	}

	workers := validateWorkers
	if workers == 0 {
		workers = cfg.Workers
	}
	if workers < 1 {
		return nil, errors.NewUserError(errors.Newf("invalid worker count %d", workers), "Use --workers 1 or more")
	}

	disabled := slices.Concat(cfg.DisabledRules, validateDisabled)
	selected, err := rules.Select(disabled)
	if err != nil {
		return nil, errors.NewUserError(err, "Run 'speclint rules list' to see available rules")
	}

	stdinFmt, err := openapi.ParseFormat(validateStdinFmt)
	if err != nil {
		return nil, errors.NewUserError(err, "Use --stdin-format json, yaml or toml")
	}

	return &validateOptions{
		format:   format,
		workers:  workers,
		rules:    selected,
		output:   validateOutput,
		disabled: disabled,
		stdinFmt: stdinFmt,
	}, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts, err := resolveValidateOptions(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	in := cmd.InOrStdin()
	var invalid []error
	if opts.output == "" {
		invalid, err = validateFiles(ctx, cmd.OutOrStdout(), in, opts, args)
	} else {
		err = fileutil.WriteFileAtomic(opts.output, 0o644, func(w io.Writer) error {
			var ferr error
			invalid, ferr = validateFiles(ctx, w, in, opts, args)
			return ferr
		})
		var exitErr *errors.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			return errors.NewSystemError(err, "Check that the output directory exists and is writable")
		}
	}
	if err != nil {
		return err
	}

	if len(invalid) > 0 {
		err := errors.Mark(errors.Join(invalid...), errors.ErrValidationFailed)
		err = errors.Wrapf(err, "%d of %d document(s)", len(invalid), len(args))
		return errors.NewExitError(err, errors.ExitUser)
	}
	return nil
}

// validateFiles reports on each file in order and returns the
// *validation.ErrorSet of every invalid document.
func validateFiles(ctx context.Context, out io.Writer, in io.Reader, opts *validateOptions, files []string) (invalid []error, err error) {
	logger := logging.FromContext(ctx)
	reporter := report.NewReporter(out, opts.format)
	attempts := rules.Attempts(opts.rules)

	logger.Debug("selected rules", "count", len(opts.rules), "disabled", opts.disabled, "workers", opts.workers)

	defer func() {
		if ferr := reporter.Flush(); ferr != nil && err == nil {
			err = errors.NewSystemError(ferr, "")
		}
	}()

	for _, file := range files {
		doc, err := loadDocument(file, in, opts.stdinFmt)
		if err != nil {
			return invalid, loadError(err)
		}

		v, err := walk.Document(ctx, doc, attempts, walk.WithWorkers[rules.Doc](opts.workers))
		if err != nil {
			return invalid, errors.NewSystemError(err, "")
		}
		logger.Info("validated document", "file", file, "errors", v.Len())

		if err := reporter.Report(file, v); err != nil {
			return invalid, errors.NewSystemError(err, "")
		}
		if verr := v.Err(); verr != nil {
			invalid = append(invalid, errors.Wrapf(verr, "%s", file))
		}
	}
	return invalid, nil
}

func countStdin(files []string) int {
	n := 0
	for _, f := range files {
		if f == stdinArg {
			n++
		}
	}
	return n
}

func loadDocument(file string, in io.Reader, stdinFmt openapi.Format) (*openapi.Document, error) {
	if file == stdinArg {
		return openapi.Read(in, stdinFmt)
	}
	return openapi.Load(file)
}

// loadError classifies a document load failure.
func loadError(err error) error {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		return errors.NewUserError(err, "Check that the file path is correct")
	case errors.Is(err, errors.ErrUnsupportedFormat), errors.Is(err, errors.ErrInvalidDocument):
		return errors.NewUserError(err, "speclint reads OpenAPI 3.x documents written in JSON, YAML or TOML")
	default:
		return errors.NewSystemError(err, "")
	}
}
