package ast

import (
	m "ztar.dev/pkg/ztar/internal/model"
)

// Declaration is a top-level named unit.
type Declaration interface {
	BlockOwner
	// Render returns the declaration's source text, resolving addresses
	// through r.
	Render(r Resolver) string
}

// Argument is a formal parameter of a function.
type Argument struct {
	Name string
	Type m.DataType
}

// Function is a script declaration.
type Function struct {
	Name      IdentifierOrPointer
	Arguments []Argument
	Body      Block
}

// Blocks returns the function body. Bodies nested inside it are reached
// through the statements' own Blocks.
func (f *Function) Blocks() []*Block { return []*Block{&f.Body} }

// Render implements Declaration.
func (f *Function) Render(r Resolver) string {
	p := newPrinter(r)
	p.function(f)

	return p.String()
}
