package walk

import (
	"context"

	"github.com/thoreinstein/speclint/pkg/openapi"
	"github.com/thoreinstein/speclint/pkg/validation"
)

// Document validates every node of doc with attempts.
func Document(ctx context.Context, doc *openapi.Document, attempts []validation.Attempt[*openapi.Document], opts ...Option[*openapi.Document]) (validation.Validity, error) {
	return NewEngine(attempts, opts...).Validate(ctx, doc, Nodes(doc))
}
