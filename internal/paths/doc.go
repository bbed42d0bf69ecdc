// Package paths resolves the directories speclint reads its configuration
// from.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config).
//
// The configuration file is looked up in the working directory first and then
// in [ConfigDir]:
//
//	./speclint.yaml
//	~/.config/speclint/speclint.yaml
package paths
