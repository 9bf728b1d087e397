// Package dot emits a call graph as a Graphviz digraph.
package dot

import (
	"bytes"
	"fmt"
	"github.com/flowviz/cflow2uml/graph"
)

// Emitter generates Graphviz DOT markup from a call graph.
type Emitter struct {
	name string
}

// Option customises an Emitter.
type Option func(*Emitter)

// WithName sets the digraph name.
func WithName(name string) Option {
	return func(e *Emitter) {
		e.name = name
	}
}

// New creates an emitter with the supplied options.
func New(options ...Option) *Emitter {
	emitter := &Emitter{name: "callgraph"}
	for _, option := range options {
		option(emitter)
	}
	return emitter
}

// Emit renders the digraph. Nodes are declared in first-reference order over
// the relation list; edge order follows relation order. Emission state is
// tracked locally, the Emitted flag on the function table is left untouched.
func (e *Emitter) Emit(g *graph.Graph) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "digraph %s {\n", e.name)
	declared := map[string]bool{}
	for _, relation := range g.Relations() {
		declare(buf, g, relation.Parent, declared)
		declare(buf, g, relation.Child, declared)
	}
	for _, relation := range g.Relations() {
		if relation.IsRoot() {
			continue
		}
		fmt.Fprintf(buf, "  %q -> %q;\n", relation.Parent, relation.Child)
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func declare(buf *bytes.Buffer, g *graph.Graph, name string, declared map[string]bool) {
	if name == "" || declared[name] {
		return
	}
	fn := g.Lookup(name)
	if fn == nil {
		return
	}
	declared[name] = true
	label := fmt.Sprintf("%s\n%s:%d", fn.Name, fn.SourceFile, fn.SourceLine)
	fmt.Fprintf(buf, "  %q [label=%q];\n", fn.Name, label)
}
