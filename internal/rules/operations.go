package rules

import (
	"fmt"

	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/validation"
)

func operationIDUnique() validation.Validator[Doc, *openapi.Operation] {
	return validation.New("operation-id-unique", func(c validation.Context[Doc, *openapi.Operation]) validation.Validity {
		if n := c.Document.OperationIDCount(c.Subject.OperationID); n > 1 {
			return c.InvalidAt(fmt.Sprintf("operationId %q is used by %d operations", c.Subject.OperationID, n),
				validation.Key("operationId"))
		}
		return validation.Valid()
	}, validation.WithPredicate(func(c validation.Context[Doc, *openapi.Operation]) bool {
		return c.Subject.OperationID != "" && c.Document != nil
	}))
}

func operationResponses() validation.Validator[Doc, *openapi.Operation] {
	return validation.New("operation-responses", func(c validation.Context[Doc, *openapi.Operation]) validation.Validity {
		if len(c.Subject.Responses) == 0 {
			return c.InvalidAt("at least one response is required", validation.Key("responses"))
		}
		return validation.Valid()
	})
}

func operationTagsDefined() validation.Validator[Doc, *openapi.Operation] {
	return validation.New("operation-tags-defined", func(c validation.Context[Doc, *openapi.Operation]) validation.Validity {
		var result validation.Validity
		for i, tag := range c.Subject.Tags {
			if !c.Document.HasTag(tag) {
				result = validation.Merge(result, c.InvalidAt(fmt.Sprintf("tag %q is not declared", tag),
					validation.Key("tags"), validation.Index(i)))
			}
		}
		return result
	}, validation.WithPredicate(func(c validation.Context[Doc, *openapi.Operation]) bool {
		return c.Document != nil && len(c.Document.Tags) > 0 && len(c.Subject.Tags) > 0
	}))
}

func responseDescription() validation.Validator[Doc, openapi.Response] {
	return validation.New("response-description", func(c validation.Context[Doc, openapi.Response]) validation.Validity {
		if c.Subject.Description == "" {
			return c.InvalidAt("response description is required", validation.Key("description"))
		}
		return validation.Valid()
	}, validation.WithPredicate(func(c validation.Context[Doc, openapi.Response]) bool {
		return c.Subject.Ref == ""
	}))
}
