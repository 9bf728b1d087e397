package graph

// Emitter represents a diagram generator.
type Emitter interface {
	Emit(graph *Graph) ([]byte, error)
}
