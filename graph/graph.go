package graph

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Graph holds the function table and the caller/callee relations
// reconstructed from a call-graph trace. The function table is keyed by name
// with no meaningful order; the relation list preserves first-observation
// order and contains no duplicate pairs.
type Graph struct {
	functions map[string]*Function
	relations []*Relation
	seen      map[Relation]int // Membership index for duplicate detection
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		functions: map[string]*Function{},
		seen:      map[Relation]int{},
	}
}

// AddFunction inserts or overwrites the table entry for fn.Name. Metadata
// follows the most recent occurrence; the Emitted flag survives an overwrite
// so a declaration is never produced twice.
func (g *Graph) AddFunction(fn *Function) {
	if prev, ok := g.functions[fn.Name]; ok {
		fn.Emitted = prev.Emitted
	}
	g.functions[fn.Name] = fn
}

// AddRelation appends the (parent, child) pair unless an equal pair was
// already recorded. It reports whether the pair was inserted.
func (g *Graph) AddRelation(parent, child string) bool {
	key := Relation{Parent: parent, Child: child}
	if _, ok := g.seen[key]; ok {
		return false
	}
	g.seen[key] = len(g.relations)
	g.relations = append(g.relations, &Relation{Parent: parent, Child: child})
	return true
}

// Lookup retrieves a function by name.
func (g *Graph) Lookup(name string) *Function {
	return g.functions[name]
}

// Functions returns the function table keyed by name.
func (g *Graph) Functions() map[string]*Function {
	return g.functions
}

// Relations returns the caller/callee pairs in first-observation order.
func (g *Graph) Relations() []*Relation {
	return g.relations
}

// ResetEmitted clears emission state so the same graph can be rendered again
// by another emitter within one run.
func (g *Graph) ResetEmitted() {
	for _, fn := range g.functions {
		fn.Emitted = false
	}
}

// Fingerprint returns a stable content digest of the graph. Two graphs built
// from equivalent traces share a fingerprint regardless of emission state.
func (g *Graph) Fingerprint() (uint64, error) {
	buf := &bytes.Buffer{}
	names := make([]string, 0, len(g.functions))
	for name := range g.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fn := g.functions[name]
		fmt.Fprintf(buf, "%s|%d|%s|%s|%s:%d\n", fn.Name, fn.Depth, fn.ReturnType,
			strings.Join(fn.Arguments, ","), fn.SourceFile, fn.SourceLine)
	}
	for _, relation := range g.relations {
		fmt.Fprintf(buf, "%s>%s\n", relation.Parent, relation.Child)
	}
	return Hash(buf.Bytes())
}
