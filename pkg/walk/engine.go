package walk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc/iter"

	"github.com/thoreinstein/speclint/internal/errors"
	"github.com/thoreinstein/speclint/internal/logging"
	"github.com/thoreinstein/speclint/pkg/validation"
)

// Engine runs a fixed, ordered set of attempts against document nodes.
type Engine[D any] struct {
	attempts []validation.Attempt[D]
	workers  int
}

// Option configures an Engine.
type Option[D any] func(*Engine[D])

// WithWorkers sets how many nodes are evaluated concurrently. Values below
// one are treated as one.
func WithWorkers[D any](n int) Option[D] {
	return func(e *Engine[D]) {
		e.workers = max(n, 1)
	}
}

// NewEngine creates an Engine. The attempts slice is copied.
func NewEngine[D any](attempts []validation.Attempt[D], opts ...Option[D]) *Engine[D] {
	e := &Engine[D]{
		attempts: append([]validation.Attempt[D](nil), attempts...),
		workers:  1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Attempts returns the registered attempts in run order.
func (e *Engine[D]) Attempts() []validation.Attempt[D] {
	return append([]validation.Attempt[D](nil), e.attempts...)
}

// Workers returns the configured concurrency.
func (e *Engine[D]) Workers() int {
	return e.workers
}

// Validate runs every attempt against every node and merges the results,
// nodes in the given order and, within a node, attempts in registration
// order. The result does not depend on the worker count.
//
// The returned error is non-nil only when ctx is cancelled; validation
// failures are reported in the Validity.
func (e *Engine[D]) Validate(ctx context.Context, doc D, nodes []Node) (validation.Validity, error) {
	logger := logging.FromContext(ctx)

	var perNode []validation.Validity
	if e.workers <= 1 || len(nodes) < 2 {
		perNode = make([]validation.Validity, 0, len(nodes))
		for _, n := range nodes {
			if err := ctx.Err(); err != nil {
				return validation.Valid(), errors.Wrap(err, "validation cancelled")
			}
			perNode = append(perNode, e.runNode(ctx, logger, doc, n))
		}
	} else {
		mapper := iter.Mapper[Node, validation.Validity]{MaxGoroutines: e.workers}
		perNode = mapper.Map(nodes, func(n *Node) validation.Validity {
			if ctx.Err() != nil {
				return validation.Valid()
			}
			return e.runNode(ctx, logger, doc, *n)
		})
		if err := ctx.Err(); err != nil {
			return validation.Valid(), errors.Wrap(err, "validation cancelled")
		}
	}

	result := validation.MergeAll(perNode...)
	logger.Debug("validated document",
		"nodes", len(nodes),
		"attempts", len(e.attempts),
		"workers", e.workers,
		"errors", result.Len())
	return result, nil
}

func (e *Engine[D]) runNode(ctx context.Context, logger *slog.Logger, doc D, n Node) validation.Validity {
	traced := logger.Enabled(ctx, logging.LevelTrace)
	if traced {
		logger.Log(ctx, logging.LevelTrace, "visiting node",
			"path", n.Path.String(),
			"type", fmt.Sprintf("%T", n.Value))
	}

	var result validation.Validity
	for _, a := range e.attempts {
		v := a.Run(doc, n.Value, n.Path)
		if traced && !v.IsValid() {
			logger.Log(ctx, logging.LevelTrace, "rule failed",
				"rule", a.Name(),
				"path", n.Path.String(),
				"errors", v.Len())
		}
		result = validation.Merge(result, v)
	}
	return result
}
