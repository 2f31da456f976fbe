package infer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"typeflow/internal/seed"
	"typeflow/internal/shape"
	"typeflow/internal/syntax"
)

// DefaultMaxTypeDepth bounds the nesting of derived types.
const DefaultMaxTypeDepth = 32

// Config holds configuration for an inference pass.
type Config struct {
	// MaxTypeDepth drops derived pairs whose type nests deeper than this
	// (0 = unlimited). Reconstructing containers from their elements can
	// otherwise grow types forever, e.g. for `x = [x]`.
	MaxTypeDepth int
	// MaxSteps stops the run after this many recorded pairs (0 = unlimited).
	MaxSteps int
	// Logger receives trace events for every recorded pair.
	Logger zerolog.Logger
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxTypeDepth: DefaultMaxTypeDepth,
		MaxSteps:     0,
		Logger:       zerolog.Nop(),
	}
}

// AliasResolver answers which other nodes hold the same value as a node.
type AliasResolver interface {
	Aliases(id syntax.NodeID) []syntax.NodeID
}

// WorkItem is a pending (node, type) pair.
type WorkItem struct {
	Node syntax.NodeID
	Type shape.Type
}

// Engine runs inference over one tree. It is not safe for concurrent use;
// independent files get independent engines.
type Engine struct {
	tree     *syntax.Tree
	resolver AliasResolver
	config   Config
	log      zerolog.Logger

	out   *TypedNodeSet
	stack []WorkItem
}

// NewEngine creates an Engine.
func NewEngine(tree *syntax.Tree, resolver AliasResolver, config Config) *Engine {
	return &Engine{
		tree:     tree,
		resolver: resolver,
		config:   config,
		log:      config.Logger.With().Str("component", "infer").Logger(),
	}
}

// Infer runs a pass with the default configuration.
func Infer(tree *syntax.Tree, resolver AliasResolver, seeds []seed.Seed) *TypedNodeSet {
	out, _ := NewEngine(tree, resolver, DefaultConfig()).Run(context.Background(), seeds)
	return out
}

// Run propagates seeds to a fixed point. Seeds are recorded verbatim. The
// context is checked before each pop; on cancellation the partial result is
// returned together with the context error.
func (e *Engine) Run(ctx context.Context, seeds []seed.Seed) (*TypedNodeSet, error) {
	e.out = NewTypedNodeSet()
	e.stack = e.stack[:0]

	// Seeds are pushed in reverse so the first seed is popped first.
	for i := len(seeds) - 1; i >= 0; i-- {
		if seeds[i].Type != nil && seeds[i].Node.Valid() {
			e.stack = append(e.stack, WorkItem{Node: seeds[i].Node, Type: seeds[i].Type})
		}
	}

	for len(e.stack) > 0 {
		if err := ctx.Err(); err != nil {
			return e.out, fmt.Errorf("inference interrupted after %d steps: %w", e.out.Stats.Steps, err)
		}

		item := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		if e.out.Has(item.Node, item.Type) {
			e.out.Stats.Duplicates++
			continue
		}

		if e.config.MaxSteps > 0 && e.out.Stats.Steps >= e.config.MaxSteps {
			e.out.Truncated = true
			e.log.Debug().Int("steps", e.out.Stats.Steps).Msg("step budget exhausted")

			break
		}

		e.out.Add(item.Node, item.Type)
		e.out.Stats.Steps++

		e.log.Trace().
			Int32("node", int32(item.Node)).
			Stringer("kind", e.tree.Kind(item.Node)).
			Str("type", item.Type.String()).
			Msg("recorded")

		e.step(item.Node, item.Type)
	}

	e.log.Debug().
		Int("steps", e.out.Stats.Steps).
		Int("duplicates", e.out.Stats.Duplicates).
		Int("depth_dropped", e.out.Stats.DepthDropped).
		Int("nodes", e.out.Len()).
		Msg("inference finished")

	return e.out, nil
}

// push schedules a derived pair unless it is already known or too deep.
func (e *Engine) push(id syntax.NodeID, t shape.Type) {
	if !id.Valid() || t == nil {
		return
	}

	if e.out.Has(id, t) {
		e.out.Stats.Duplicates++
		return
	}

	if e.config.MaxTypeDepth > 0 && shape.Depth(t) > e.config.MaxTypeDepth {
		e.out.Stats.DepthDropped++
		return
	}

	e.stack = append(e.stack, WorkItem{Node: id, Type: t})
}

// step generates every successor of a freshly recorded pair.
func (e *Engine) step(id syntax.NodeID, t shape.Type) {
	for _, alias := range e.resolver.Aliases(id) {
		e.push(alias, t)
	}

	e.propagateLinks(id, t)
	e.propagateParent(id, t)
	e.propagateContainer(id, t)

	for _, v := range shape.Variants(t) {
		e.push(id, v)
	}
}
