package rules

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/validation"
)

// templateVar matches server variables and path template parameters.
var templateVar = regexp.MustCompile(`\{([^{}/]+)\}`)

func serverURL() validation.Validator[Doc, openapi.Server] {
	return validation.New("server-url", func(c validation.Context[Doc, openapi.Server]) validation.Validity {
		raw := strings.TrimSpace(c.Subject.URL)
		if raw == "" {
			return c.InvalidAt("url is required", validation.Key("url"))
		}
		// Server variables are substituted at runtime; parse with placeholders.
		u, err := url.Parse(templateVar.ReplaceAllString(raw, "x"))
		if err != nil {
			return c.InvalidAt(fmt.Sprintf("url %q cannot be parsed", raw), validation.Key("url"))
		}
		if !u.IsAbs() && !strings.HasPrefix(raw, "/") {
			return c.InvalidAt(fmt.Sprintf("url %q must be absolute or start with /", raw), validation.Key("url"))
		}
		return validation.Valid()
	})
}
