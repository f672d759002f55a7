package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knakk/serd"
)

func TestParseSyntaxRecognizesAllFourNames(t *testing.T) {
	cases := map[string]serd.Syntax{
		"turtle":   serd.Turtle,
		"ntriples": serd.NTriples,
		"nquads":   serd.NQuads,
		"trig":     serd.TriG,
	}
	for name, want := range cases {
		got, err := parseSyntax(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseSyntaxRejectsUnknownName(t *testing.T) {
	_, err := parseSyntax("rdfxml")
	assert.Error(t, err)
}

func TestIRIOrNil(t *testing.T) {
	assert.Nil(t, iriOrNil(""))
	n := iriOrNil("http://example.org/")
	if assert.NotNil(t, n) {
		assert.Equal(t, "http://example.org/", n.Text())
	}
}
