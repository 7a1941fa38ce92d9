package ast

import (
	m "ztar.dev/pkg/ztar/internal/model"
)

// VarDeclare introduces a variable. Value is nil when there is no initializer.
type VarDeclare struct {
	Type  m.DataType
	Name  string
	Value Expression
}

// Blocks implements BlockOwner.
func (*VarDeclare) Blocks() []*Block { return nil }

// VarAssign writes to an existing variable.
type VarAssign struct {
	Name  string
	Value Expression
}

// Blocks implements BlockOwner.
func (*VarAssign) Blocks() []*Block { return nil }

// MethodCall calls a script or an engine method.
type MethodCall struct {
	Method IdentifierOrPointer
	Args   []Expression
}

// Blocks implements BlockOwner.
func (*MethodCall) Blocks() []*Block { return nil }

// If runs Then when Cond holds, Else otherwise.
type If struct {
	Cond Expression
	Then Block
	Else Block
}

// Blocks implements BlockOwner.
func (s *If) Blocks() []*Block { return []*Block{&s.Then, &s.Else} }

// Loop repeats Body Count times; a zero count loops forever.
type Loop struct {
	Count Expression
	Body  Block
}

// Blocks implements BlockOwner.
func (s *Loop) Blocks() []*Block { return []*Block{&s.Body} }

// Wait suspends the script for a number of frames.
type Wait struct {
	Frames Expression
}

// Blocks implements BlockOwner.
func (*Wait) Blocks() []*Block { return nil }

// Return ends the script.
type Return struct{}

// Blocks implements BlockOwner.
func (*Return) Blocks() []*Block { return nil }

// Break leaves the innermost loop.
type Break struct{}

// Blocks implements BlockOwner.
func (*Break) Blocks() []*Block { return nil }
