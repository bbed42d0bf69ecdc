package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"

	"github.com/thoreinstein/speclint/internal/errors"
	"github.com/thoreinstein/speclint/pkg/validation"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", errors.Newf("unknown report format %q (want text or json)", s)
	}
}

// Document is the JSON shape of one validated document.
type Document struct {
	File       string  `json:"file,omitempty"`
	Valid      bool    `json:"valid"`
	ErrorCount int     `json:"error_count"`
	Errors     []Issue `json:"errors"`
}

// Issue is the JSON shape of a single validation error.
type Issue struct {
	Reason   string          `json:"reason"`
	Path     string          `json:"path"`
	Pointer  string          `json:"pointer"`
	Segments validation.Path `json:"segments"`
}

// NewDocument converts a validity into its report shape.
func NewDocument(file string, v validation.Validity) Document {
	errs := v.Errors()
	doc := Document{
		File:       file,
		Valid:      v.IsValid(),
		ErrorCount: len(errs),
		Errors:     make([]Issue, 0, len(errs)),
	}
	for _, e := range errs {
		segs := e.Path
		if segs == nil {
			segs = validation.Path{}
		}
		doc.Errors = append(doc.Errors, Issue{
			Reason:   e.Reason,
			Path:     e.Path.String(),
			Pointer:  e.Path.Pointer(),
			Segments: segs,
		})
	}
	return doc
}

// Reporter formats and writes validation results. Text is written as each
// document is reported; JSON is held until Flush.
type Reporter struct {
	out     io.Writer
	format  Format
	pending []Document
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report records the result for one document. file may be empty.
func (r *Reporter) Report(file string, v validation.Validity) error {
	switch r.format {
	case FormatJSON:
		r.pending = append(r.pending, NewDocument(file, v))
		return nil
	default:
		return r.reportText(file, v)
	}
}

// Flush writes the buffered JSON report: one object for a single document,
// an array when several were reported. Text reports have nothing to flush.
func (r *Reporter) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	var payload any = r.pending
	if len(r.pending) == 1 {
		payload = r.pending[0]
	}
	r.pending = nil
	return r.writeJSON(payload)
}

func (r *Reporter) writeJSON(payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding JSON report")
	}
	data = append(data, '\n')
	_, err = r.out.Write(data)
	return errors.Wrap(err, "writing JSON report")
}

func (r *Reporter) reportText(file string, v validation.Validity) error {
	if file != "" {
		fmt.Fprintln(r.out, color.New(color.Bold).Sprint(file))
	}

	if v.IsValid() {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return nil
	}

	errs := v.Errors()
	fmt.Fprintf(r.out, "Validation failed: %s\n\n", color.RedString("%d error(s)", len(errs)))
	for _, e := range errs {
		r.printError(e)
	}
	fmt.Fprintln(r.out)

	return nil
}

func (r *Reporter) printError(e validation.Error) {
	printer := color.New(color.FgRed).SprintFunc()

	// Format:  • path: reason
	var sb strings.Builder
	sb.WriteString("  • ")

	path := e.Path.String()
	if path == "" {
		path = "/"
	}
	sb.WriteString(printer(path))
	sb.WriteString(": ")
	sb.WriteString(e.Reason)

	fmt.Fprintln(r.out, sb.String())
}
