package trace

import (
	"github.com/flowviz/cflow2uml/graph"
)

// Builder reconstructs a call graph from indentation-structured trace lines.
// Parentage is inferred purely from depth transitions: the builder keeps the
// current call path as a stack indexed by depth.
type Builder struct {
	config *Config
	graph  *graph.Graph
	stack  []string
}

// NewBuilder creates a builder with the supplied options.
func NewBuilder(options ...Option) *Builder {
	builder := &Builder{
		config: DefaultConfig(),
		graph:  graph.New(),
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

// Add feeds one raw line to the builder. Lines outside the trace grammar are
// skipped and leave the call stack untouched.
func (b *Builder) Add(line string) {
	entry, ok := ParseEntry(line, b.config)
	if !ok {
		return
	}
	b.graph.AddFunction(&graph.Function{
		Name:       entry.Name,
		Depth:      entry.Depth,
		ReturnType: entry.ReturnType,
		Arguments:  entry.Arguments,
		SourceFile: entry.SourceFile,
		SourceLine: entry.SourceLine,
	})
	// drop stale deeper frames, then place this call at its depth
	if entry.Depth < len(b.stack) {
		b.stack = b.stack[:entry.Depth]
	}
	for len(b.stack) < entry.Depth {
		// a depth jump leaves unfilled frames empty; their children become roots
		b.stack = append(b.stack, "")
	}
	b.stack = append(b.stack, entry.Name)
	parent := ""
	if entry.Depth > 0 {
		parent = b.stack[entry.Depth-1]
	}
	b.graph.AddRelation(parent, entry.Name)
}

// ParseAll consumes lines in order and returns the graph built so far.
func (b *Builder) ParseAll(lines []string) *graph.Graph {
	for _, line := range lines {
		b.Add(line)
	}
	return b.graph
}

// Graph returns the graph built so far.
func (b *Builder) Graph() *graph.Graph {
	return b.graph
}
