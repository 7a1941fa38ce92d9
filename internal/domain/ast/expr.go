package ast

import (
	"strconv"
	"strings"

	m "ztar.dev/pkg/ztar/internal/model"
)

// Identifier references a variable by name.
type Identifier struct {
	Name string
}

// DataType returns the type currently bound to the name, or Any.
func (e Identifier) DataType(r Resolver) m.DataType {
	if dataType, ok := r.LookupName(e.Name); ok {
		return dataType
	}

	return m.Any
}

func (e Identifier) render(Resolver) string { return e.Name }

// IntLiteral is a word constant.
type IntLiteral struct {
	Value int32
}

// DataType implements Expression.
func (IntLiteral) DataType(Resolver) m.DataType { return m.Int }

func (e IntLiteral) render(Resolver) string { return strconv.FormatInt(int64(e.Value), 10) }

// BoolLiteral is a flag constant.
type BoolLiteral struct {
	Value bool
}

// DataType implements Expression.
func (BoolLiteral) DataType(Resolver) m.DataType { return m.Bool }

func (e BoolLiteral) render(Resolver) string { return strconv.FormatBool(e.Value) }

// FloatLiteral is a fixed-point constant.
type FloatLiteral struct {
	Value float32
}

// DataType implements Expression.
func (FloatLiteral) DataType(Resolver) m.DataType { return m.Float }

func (e FloatLiteral) render(Resolver) string {
	s := strconv.FormatFloat(float64(e.Value), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// PointerLiteral is a raw VM address used as a value.
type PointerLiteral struct {
	Address m.Address
}

// DataType returns the type of the symbol at the address, or Any.
func (e PointerLiteral) DataType(r Resolver) m.DataType {
	if _, dataType, ok := Ptr(e.Address).Lookup(r); ok {
		return dataType
	}

	return m.Any
}

func (e PointerLiteral) render(r Resolver) string { return Ptr(e.Address).render(r) }

// CompareOp is a condition operator.
type CompareOp string

// Condition operators supported by the VM.
const (
	OpEqual        CompareOp = "=="
	OpNotEqual     CompareOp = "!="
	OpLess         CompareOp = "<"
	OpGreater      CompareOp = ">"
	OpLessEqual    CompareOp = "<="
	OpGreaterEqual CompareOp = ">="
	OpBitAnd       CompareOp = "&"
)

// Comparison is a binary condition.
type Comparison struct {
	Op  CompareOp
	Lhs Expression
	Rhs Expression
}

// DataType implements Expression.
func (Comparison) DataType(Resolver) m.DataType { return m.Bool }

func (e Comparison) render(r Resolver) string {
	return e.Lhs.render(r) + " " + string(e.Op) + " " + e.Rhs.render(r)
}

// BoolFromInt converts an integer literal to the equivalent boolean literal
// (1 is true, anything else is false). Other expressions are not converted.
func BoolFromInt(e Expression) (Expression, bool) {
	lit, ok := e.(IntLiteral)
	if !ok {
		return e, false
	}

	return BoolLiteral{Value: lit.Value == 1}, true
}

// Render returns the source text of an expression.
func Render(e Expression, r Resolver) string {
	return e.render(r)
}
