package graph

import (
	"sort"
)

// Document is a marshal-friendly snapshot of a graph with deterministic
// ordering: functions sorted by name, relations in first-observation order.
type Document struct {
	Functions []*Function `yaml:"functions,omitempty"`
	Relations []*Relation `yaml:"relations,omitempty"`
}

// Document builds a snapshot of the graph.
func (g *Graph) Document() *Document {
	document := &Document{
		Functions: make([]*Function, 0, len(g.functions)),
		Relations: g.relations,
	}
	for _, fn := range g.functions {
		document.Functions = append(document.Functions, fn)
	}
	sort.Slice(document.Functions, func(i, j int) bool {
		return document.Functions[i].Name < document.Functions[j].Name
	})
	return document
}
