package trace

import (
	"github.com/flowviz/cflow2uml/graph"
)

// Option customises a Builder.
type Option func(*Builder)

// WithConfig replaces the builder configuration.
func WithConfig(config *Config) Option {
	return func(b *Builder) {
		b.config = config
	}
}

// WithIndentUnit sets the number of leading spaces per call-tree level.
func WithIndentUnit(unit int) Option {
	return func(b *Builder) {
		b.config.IndentUnit = unit
	}
}

// WithGraph seeds the builder with an existing graph so that several traces
// can be merged into a single diagram.
func WithGraph(g *graph.Graph) Option {
	return func(b *Builder) {
		b.graph = g
	}
}
