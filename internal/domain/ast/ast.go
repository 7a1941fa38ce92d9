// Package ast defines the decompiled script tree: declarations own blocks,
// blocks are ordered statements, and statements may own nested blocks.
//
// Passes rewrite the tree in place. Statements are pointers, so replacing a
// declared type or an argument is a plain field or slice assignment.
package ast

import (
	m "ztar.dev/pkg/ztar/internal/model"
)

// Resolver answers name and address lookups against a symbol table.
type Resolver interface {
	LookupAddress(addr m.Address) (string, bool)
	LookupName(name string) (m.DataType, bool)
}

// Block is an ordered statement sequence.
type Block []Statement

// BlockOwner is implemented by every node that can contain nested blocks.
type BlockOwner interface {
	// Blocks returns pointers to the nested blocks so passes can rewrite them.
	Blocks() []*Block
}

// Statement is one of the statement variants declared in this package.
type Statement interface {
	BlockOwner
	render(p *printer)
}

// Expression is one of the expression variants declared in this package.
type Expression interface {
	// DataType computes the expression's type against the current scope.
	DataType(r Resolver) m.DataType
	render(r Resolver) string
}

// IdentifierOrPointer references a callee either by name or by raw address.
type IdentifierOrPointer struct {
	Name      string
	Pointer   m.Address
	IsPointer bool
}

// Ident references name.
func Ident(name string) IdentifierOrPointer {
	return IdentifierOrPointer{Name: name}
}

// Ptr references addr.
func Ptr(addr m.Address) IdentifierOrPointer {
	return IdentifierOrPointer{Pointer: addr, IsPointer: true}
}

// Lookup resolves the reference to its name and type.
func (ref IdentifierOrPointer) Lookup(r Resolver) (string, m.DataType, bool) {
	name := ref.Name

	if ref.IsPointer {
		var ok bool

		name, ok = r.LookupAddress(ref.Pointer)
		if !ok {
			return "", m.Any, false
		}
	}

	dataType, ok := r.LookupName(name)
	if !ok {
		return name, m.Any, false
	}

	return name, dataType, true
}

func (ref IdentifierOrPointer) render(r Resolver) string {
	if !ref.IsPointer {
		return ref.Name
	}

	if name, ok := r.LookupAddress(ref.Pointer); ok {
		return name
	}

	return ref.Pointer.String()
}
