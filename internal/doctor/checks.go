package doctor

import (
	"fmt"
	"os"
	"runtime"

	"github.com/thoreinstein/speclint/internal/paths"
	"github.com/thoreinstein/speclint/internal/rules"
)

// ConfigFileCheck reports whether a config file was found and loaded.
type ConfigFileCheck struct {
	// Path is the file that was read, or "" when defaults were used.
	Path string
	// LoadErr is the error returned while loading, if any.
	LoadErr error
}

var _ Check = (*ConfigFileCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ConfigFileCheck) Name() string { return "config-file" }

// Category returns the grouping for this check.
func (c *ConfigFileCheck) Category() string { return "config" }

// Run executes the check.
func (c *ConfigFileCheck) Run() *CheckResult {
	switch {
	case c.LoadErr != nil:
		return &CheckResult{
			Status:  SeverityError,
			Message: c.LoadErr.Error(),
			Details: map[string]any{"path": c.Path},
			FixHint: "Fix the reported fields or pass a different file with --config",
		}
	case c.Path == "":
		return &CheckResult{
			Status:  SeverityInfo,
			Message: "no config file found, using defaults",
			Details: map[string]any{"search_paths": paths.ConfigSearchPaths()},
		}
	default:
		return &CheckResult{
			Status:  SeverityPass,
			Message: "loaded " + c.Path,
		}
	}
}

// ConfigPermissionCheck warns about config files other users may modify.
type ConfigPermissionCheck struct {
	Path string
}

var _ Check = (*ConfigPermissionCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ConfigPermissionCheck) Name() string { return "config-permissions" }

// Category returns the grouping for this check.
func (c *ConfigPermissionCheck) Category() string { return "filesystem" }

// Run executes the check.
func (c *ConfigPermissionCheck) Run() *CheckResult {
	if c.Path == "" {
		return &CheckResult{Status: SeverityPass, Message: "no config file to check"}
	}

	info, err := os.Stat(c.Path)
	if err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: fmt.Sprintf("cannot stat config file: %v", err),
		}
	}

	// Unix permission bits are meaningless on Windows.
	if runtime.GOOS == "windows" {
		return &CheckResult{Status: SeverityPass, Message: "permissions not checked on windows"}
	}

	perm := info.Mode().Perm()
	if perm&0o002 != 0 {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: fmt.Sprintf("config file is world-writable (mode %04o)", perm),
			Details: map[string]any{"path": c.Path},
			FixHint: "chmod 644 " + c.Path,
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: fmt.Sprintf("config file mode %04o", perm),
	}
}

// RuleSelectionCheck verifies disabled rule names and that some rules remain.
type RuleSelectionCheck struct {
	Disabled []string
}

var _ Check = (*RuleSelectionCheck)(nil)

// Name returns the unique identifier for this check.
func (c *RuleSelectionCheck) Name() string { return "rule-selection" }

// Category returns the grouping for this check.
func (c *RuleSelectionCheck) Category() string { return "rules" }

// Run executes the check.
func (c *RuleSelectionCheck) Run() *CheckResult {
	selected, err := rules.Select(c.Disabled)
	if err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: err.Error(),
			FixHint: "Run 'speclint rules list' to see available rules",
		}
	}

	total := len(rules.Catalog())
	if len(selected) == 0 {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "every rule is disabled; validate will accept any document",
			FixHint: "Remove entries from disabled_rules",
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: fmt.Sprintf("%d of %d rules enabled", len(selected), total),
	}
}

// WorkersCheck compares the configured worker count with the available CPUs.
type WorkersCheck struct {
	Workers int
	// CPUs defaults to runtime.NumCPU when zero.
	CPUs int
}

var _ Check = (*WorkersCheck)(nil)

// Name returns the unique identifier for this check.
func (c *WorkersCheck) Name() string { return "workers" }

// Category returns the grouping for this check.
func (c *WorkersCheck) Category() string { return "config" }

// Run executes the check.
func (c *WorkersCheck) Run() *CheckResult {
	cpus := c.CPUs
	if cpus == 0 {
		cpus = runtime.NumCPU()
	}

	switch {
	case c.Workers < 1:
		return &CheckResult{
			Status:  SeverityError,
			Message: fmt.Sprintf("workers must be at least 1, got %d", c.Workers),
			FixHint: "Set workers: 1 in speclint.yaml",
		}
	case c.Workers > cpus:
		return &CheckResult{
			Status:  SeverityWarning,
			Message: fmt.Sprintf("%d workers exceed the %d available CPUs", c.Workers, cpus),
			Details: map[string]any{"workers": c.Workers, "cpus": cpus},
			FixHint: fmt.Sprintf("Set workers: %d or lower", cpus),
		}
	default:
		return &CheckResult{
			Status:  SeverityPass,
			Message: fmt.Sprintf("%d worker(s)", c.Workers),
		}
	}
}
