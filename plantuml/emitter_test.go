package plantuml

import (
	"github.com/flowviz/cflow2uml/graph"
	"github.com/flowviz/cflow2uml/trace"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEmitterEmit(t *testing.T) {
	tests := []struct {
		description string
		lines       []string
		options     []Option
		expect      string
	}{
		{
			description: "single root call declares one class and no arrow",
			lines: []string{
				"main() <int main (void) at main.c:10>",
			},
			expect: `@startuml

class main <<main.c:10>> {
  ---
}


@enduml
`,
		},
		{
			description: "parent and child with one arrow",
			lines: []string{
				"main() <int main (void) at main.c:10>",
				"    helper() <void helper (int x) at util.c:5>",
			},
			expect: `@startuml

class main <<main.c:10>> {
  ---
}

class helper <<util.c:5>> {
  int x
  ---
}

main --> helper

@enduml
`,
		},
		{
			description: "title line follows the start marker",
			lines: []string{
				"main() <int main (void) at main.c:10>",
			},
			options: []Option{WithTitle("Demo")},
			expect: `@startuml
title Demo

class main <<main.c:10>> {
  ---
}


@enduml
`,
		},
		{
			description: "function on both sides of relations is declared once",
			lines: []string{
				"main() <int main (void) at main.c:1>",
				"    helper() <void helper (int x) at util.c:5>",
				"        log() <void log (char *msg) at log.c:3>",
				"    log() <void log (char *msg) at log.c:3>",
			},
			expect: `@startuml

class main <<main.c:1>> {
  ---
}

class helper <<util.c:5>> {
  int x
  ---
}

class log <<log.c:3>> {
  char *msg
  ---
}

main --> helper
helper --> log
main --> log

@enduml
`,
		},
	}

	for _, test := range tests {
		g := trace.NewBuilder().ParseAll(test.lines)
		output, err := New(test.options...).Emit(g)
		if !assert.Nil(t, err, test.description) {
			continue
		}
		assert.Equal(t, test.expect, string(output), test.description)
	}
}

func TestEmitterDeclaresOncePerGraph(t *testing.T) {
	g := trace.NewBuilder().ParseAll([]string{
		"main() <int main (void) at main.c:10>",
	})
	emitter := New()
	first, err := emitter.Emit(g)
	assert.Nil(t, err)
	assert.Contains(t, string(first), "class main")

	// emission state lives on the graph, a second render declares nothing
	second, err := emitter.Emit(g)
	assert.Nil(t, err)
	assert.NotContains(t, string(second), "class main")

	g.ResetEmitted()
	third, err := emitter.Emit(g)
	assert.Nil(t, err)
	assert.Equal(t, string(first), string(third))
}

func TestEmitterSkipsUnknownParent(t *testing.T) {
	g := graph.New()
	g.AddFunction(&graph.Function{Name: "helper", SourceFile: "util.c", SourceLine: 5})
	g.AddRelation("phantom", "helper")

	output, err := New().Emit(g)
	assert.Nil(t, err)
	assert.NotContains(t, string(output), "class phantom")
	assert.Contains(t, string(output), "phantom --> helper")
}
