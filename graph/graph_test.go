package graph

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGraphAddRelation(t *testing.T) {
	g := New()
	assert.True(t, g.AddRelation("", "main"))
	assert.True(t, g.AddRelation("main", "helper"))
	assert.False(t, g.AddRelation("main", "helper"), "duplicate pair must be rejected")
	assert.True(t, g.AddRelation("helper", "main"), "reversed pair is a distinct relation")

	assert.EqualValues(t, []*Relation{
		{Child: "main"},
		{Parent: "main", Child: "helper"},
		{Parent: "helper", Child: "main"},
	}, g.Relations())
}

func TestGraphAddFunctionPreservesEmitted(t *testing.T) {
	g := New()
	g.AddFunction(&Function{Name: "main", SourceFile: "main.c", SourceLine: 10})
	g.Lookup("main").Emitted = true

	g.AddFunction(&Function{Name: "main", SourceFile: "main2.c", SourceLine: 99})
	fn := g.Lookup("main")
	assert.Equal(t, "main2.c", fn.SourceFile)
	assert.Equal(t, 99, fn.SourceLine)
	assert.True(t, fn.Emitted, "emission state must survive an overwrite")
}

func TestGraphResetEmitted(t *testing.T) {
	g := New()
	g.AddFunction(&Function{Name: "main", Emitted: true})
	g.AddFunction(&Function{Name: "helper", Emitted: true})
	g.ResetEmitted()
	assert.False(t, g.Lookup("main").Emitted)
	assert.False(t, g.Lookup("helper").Emitted)
}

func TestGraphFingerprint(t *testing.T) {
	build := func(line int) *Graph {
		g := New()
		g.AddFunction(&Function{Name: "main", ReturnType: "int", SourceFile: "main.c", SourceLine: line})
		g.AddFunction(&Function{Name: "helper", ReturnType: "void", Arguments: []string{"int x"}, SourceFile: "util.c", SourceLine: 5})
		g.AddRelation("", "main")
		g.AddRelation("main", "helper")
		return g
	}

	first, err := build(10).Fingerprint()
	assert.Nil(t, err)
	second, err := build(10).Fingerprint()
	assert.Nil(t, err)
	assert.Equal(t, first, second, "equivalent graphs share a fingerprint")

	changed, err := build(11).Fingerprint()
	assert.Nil(t, err)
	assert.NotEqual(t, first, changed, "metadata change alters the fingerprint")

	emitted := build(10)
	emitted.Lookup("main").Emitted = true
	withEmitted, err := emitted.Fingerprint()
	assert.Nil(t, err)
	assert.Equal(t, first, withEmitted, "emission state does not affect the fingerprint")
}
