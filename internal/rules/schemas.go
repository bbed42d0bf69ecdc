package rules

import (
	"fmt"

	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/validation"
)

func schemaRefResolves() validation.Validator[Doc, *openapi.Schema] {
	return validation.New("schema-ref-resolves", func(c validation.Context[Doc, *openapi.Schema]) validation.Validity {
		if _, ok := c.Document.ResolveSchema(c.Subject.Ref); !ok {
			return c.InvalidAt(fmt.Sprintf("reference %q does not resolve", c.Subject.Ref), validation.Key("$ref"))
		}
		return validation.Valid()
	}, validation.WithPredicate(func(c validation.Context[Doc, *openapi.Schema]) bool {
		// External references are resolved by other tools.
		return c.Document != nil && openapi.IsLocalRef(c.Subject.Ref)
	}))
}

func schemaRequiredProperties() validation.Validator[Doc, *openapi.Schema] {
	return validation.New("schema-required-properties", func(c validation.Context[Doc, *openapi.Schema]) validation.Validity {
		var result validation.Validity
		for i, name := range c.Subject.Required {
			if _, ok := c.Subject.Properties[name]; !ok {
				result = validation.Merge(result, c.InvalidAt(fmt.Sprintf("required property %q is not defined", name),
					validation.Key("required"), validation.Index(i)))
			}
		}
		return result
	}, validation.WithPredicate(func(c validation.Context[Doc, *openapi.Schema]) bool {
		return c.Subject.Type == "object" && len(c.Subject.Required) > 0
	}))
}
