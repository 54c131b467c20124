package language

import (
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// NewSource wraps SDL text with the name used in error positions.
func NewSource(name, input string) *Source {
	return &ast.Source{Name: name, Input: input}
}

// LoadSchema parses and validates one or more SDL sources as a single schema.
// Type extensions are folded into their base definitions and the GraphQL
// prelude (built-in scalars, introspection types and directives) is included.
func LoadSchema(sources ...*Source) (*Schema, error) {
	s, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, err
	}
	return s, nil
}
