package graph

// Function represents one function definition seen in a call-graph trace.
type Function struct {
	Name       string   `yaml:"name"`                 // Unique key within a Graph
	Depth      int      `yaml:"depth"`                // Call-tree nesting level at first encounter
	ReturnType string   `yaml:"returnType,omitempty"` // May be compound, e.g. "static int"
	Arguments  []string `yaml:"arguments,omitempty"`  // Argument declarations in source order
	SourceFile string   `yaml:"sourceFile,omitempty"` // Path as reported by the trace
	SourceLine int      `yaml:"sourceLine,omitempty"` // Line number as reported by the trace
	Emitted    bool     `yaml:"-"`                    // Set once a declaration block has been produced
}

// Relation represents a single caller to callee edge. An empty Parent marks a
// root call with no caller in the trace.
type Relation struct {
	Parent string `yaml:"parent,omitempty"`
	Child  string `yaml:"child"`
}

// IsRoot reports whether the relation has no caller.
func (r *Relation) IsRoot() bool {
	return r.Parent == ""
}
