package rules

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/validation"
)

func openAPIVersion() validation.Validator[Doc, *openapi.Document] {
	return validation.New("openapi-version", func(c validation.Context[Doc, *openapi.Document]) validation.Validity {
		version := strings.TrimSpace(c.Subject.OpenAPI)
		switch {
		case version == "":
			return c.InvalidAt("openapi version is required", validation.Key("openapi"))
		case !strings.HasPrefix(version, "3."):
			return c.InvalidAt(fmt.Sprintf("openapi version %q is not supported, want 3.x", version), validation.Key("openapi"))
		}
		return validation.Valid()
	})
}

func tagsUnique() validation.Validator[Doc, *openapi.Document] {
	return validation.New("tags-unique", func(c validation.Context[Doc, *openapi.Document]) validation.Validity {
		seen := make(map[string]bool, len(c.Subject.Tags))
		var result validation.Validity
		for i, t := range c.Subject.Tags {
			if seen[t.Name] {
				result = validation.Merge(result,
					c.InvalidAt(fmt.Sprintf("duplicate tag %q", t.Name), validation.Key("tags"), validation.Index(i), validation.Key("name")))
			}
			seen[t.Name] = true
		}
		return result
	}, validation.WithPredicate(func(c validation.Context[Doc, *openapi.Document]) bool {
		return len(c.Subject.Tags) > 1
	}))
}
