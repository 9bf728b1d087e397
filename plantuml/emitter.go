// Package plantuml emits a call graph as a PlantUML class diagram: one class
// per function with its arguments as attributes, one arrow per caller/callee
// relation.
package plantuml

import (
	"bytes"
	"fmt"
	"github.com/flowviz/cflow2uml/graph"
)

// Emitter generates PlantUML class-diagram markup from a call graph.
type Emitter struct {
	title string
}

// Option customises an Emitter.
type Option func(*Emitter)

// WithTitle adds a title line to the generated diagram.
func WithTitle(title string) Option {
	return func(e *Emitter) {
		e.title = title
	}
}

// New creates an emitter with the supplied options.
func New(options ...Option) *Emitter {
	emitter := &Emitter{}
	for _, option := range options {
		option(emitter)
	}
	return emitter
}

// Emit renders the diagram. Declarations appear in first-reference order over
// the relation list and each function is declared at most once, tracked by
// the Emitted flag on the function table. Root relations contribute their
// child's declaration but draw no arrow.
func (e *Emitter) Emit(g *graph.Graph) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString("@startuml\n")
	if e.title != "" {
		fmt.Fprintf(buf, "title %s\n", e.title)
	}
	buf.WriteString("\n")
	for _, relation := range g.Relations() {
		if !relation.IsRoot() {
			declare(buf, g.Lookup(relation.Parent))
		}
		declare(buf, g.Lookup(relation.Child))
	}
	for _, relation := range g.Relations() {
		if relation.IsRoot() {
			continue
		}
		fmt.Fprintf(buf, "%s --> %s\n", relation.Parent, relation.Child)
	}
	buf.WriteString("\n@enduml\n")
	return buf.Bytes(), nil
}

// declare writes one class block with a file:line stereotype, at most once
// per function.
func declare(buf *bytes.Buffer, fn *graph.Function) {
	if fn == nil || fn.Emitted {
		return
	}
	fn.Emitted = true
	fmt.Fprintf(buf, "class %s <<%s:%d>> {\n", fn.Name, fn.SourceFile, fn.SourceLine)
	for _, argument := range fn.Arguments {
		fmt.Fprintf(buf, "  %s\n", argument)
	}
	buf.WriteString("  ---\n")
	buf.WriteString("}\n\n")
}
