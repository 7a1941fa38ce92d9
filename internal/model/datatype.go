// Package model defines the data structures shared by the decompiler.
package model

import (
	"fmt"
	"strings"
)

// Kind enumerates the closed set of script data types.
type Kind uint8

const (
	// KindAny is the wildcard placeholder for a type that has not been inferred yet.
	KindAny Kind = iota
	// KindBool is a flag value.
	KindBool
	// KindInt is a word value.
	KindInt
	// KindFloat is a fixed-point word value.
	KindFloat
	// KindFun is a user script; calls capture the caller's register file.
	KindFun
	// KindAsm is a raw engine method; calls pass arguments explicitly.
	KindAsm
)

// DataType is a script type. Fun and Asm carry ordered parameter types.
type DataType struct {
	Kind   Kind
	Params []DataType
}

// Scalar types.
var (
	Any   = DataType{Kind: KindAny}
	Bool  = DataType{Kind: KindBool}
	Int   = DataType{Kind: KindInt}
	Float = DataType{Kind: KindFloat}
)

// Fun builds a user script type taking the given parameters.
func Fun(params ...DataType) DataType {
	return DataType{Kind: KindFun, Params: params}
}

// Asm builds an engine method type taking the given parameters.
func Asm(params ...DataType) DataType {
	return DataType{Kind: KindAsm, Params: params}
}

// IsAny reports whether t is the wildcard type.
func (t DataType) IsAny() bool {
	return t.Kind == KindAny
}

// IsCallable reports whether t is a Fun or an Asm type.
func (t DataType) IsCallable() bool {
	return t.Kind == KindFun || t.Kind == KindAsm
}

// Equal compares two types structurally.
func (t DataType) Equal(other DataType) bool {
	if t.Kind != other.Kind || len(t.Params) != len(other.Params) {
		return false
	}

	for i := range t.Params {
		if !t.Params[i].Equal(other.Params[i]) {
			return false
		}
	}

	return true
}

func (t DataType) String() string {
	switch t.Kind {
	case KindAny:
		return "any"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindFun:
		return "fun(" + joinTypes(t.Params) + ")"
	case KindAsm:
		return "asm(" + joinTypes(t.Params) + ")"
	default:
		return fmt.Sprintf("kind(%d)", t.Kind)
	}
}

func joinTypes(types []DataType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}

	return strings.Join(parts, ", ")
}

// ParseDataType parses the name of a scalar type.
func ParseDataType(name string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "any":
		return Any, nil
	case "bool":
		return Bool, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	}

	return Any, fmt.Errorf("unknown data type %q", name)
}
