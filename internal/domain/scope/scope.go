// Package scope implements the layered symbol table used while decompiling a
// map. Each layer maps VM addresses to names and names to data types; inner
// layers shadow outer ones until they are popped.
package scope

import (
	m "ztar.dev/pkg/ztar/internal/model"
)

// Layer is one lexical scope's pair of mappings.
type Layer struct {
	Addresses map[m.Address]string
	Names     map[string]m.DataType
}

func newLayer() Layer {
	return Layer{
		Addresses: make(map[m.Address]string),
		Names:     make(map[string]m.DataType),
	}
}

// Stack is an ordered stack of layers. layers[0] is the current layer.
type Stack struct {
	layers []Layer
}

// New returns a Stack holding a single empty layer.
func New() *Stack {
	s := &Stack{}
	s.Push()

	return s
}

// Depth returns the number of layers.
func (s *Stack) Depth() int {
	return len(s.layers)
}

// Push adds an empty layer on top. Values inserted afterwards shadow values
// below with the same key until the layer is popped.
func (s *Stack) Push() {
	s.layers = append([]Layer{newLayer()}, s.layers...)
}

// Pop removes the current layer and returns it.
func (s *Stack) Pop() (Layer, bool) {
	if len(s.layers) == 0 {
		return Layer{}, false
	}

	top := s.layers[0]
	s.layers = s.layers[1:]

	return top, true
}

func (s *Stack) current() Layer {
	if len(s.layers) == 0 {
		s.Push()
	}

	return s.layers[0]
}

// InsertAddress maps addr to name and name to dataType in the current layer.
// It returns the type name previously held in this layer, if any.
func (s *Stack) InsertAddress(addr m.Address, name string, dataType m.DataType) (m.DataType, bool) {
	layer := s.current()
	layer.Addresses[addr] = name

	return insert(layer, name, dataType)
}

// InsertName maps name to dataType in the current layer. It returns the type
// name previously held in this layer, if any. Outer layers are not consulted.
func (s *Stack) InsertName(name string, dataType m.DataType) (m.DataType, bool) {
	return insert(s.current(), name, dataType)
}

func insert(layer Layer, name string, dataType m.DataType) (m.DataType, bool) {
	prev, ok := layer.Names[name]
	layer.Names[name] = dataType

	return prev, ok
}

// LookupAddress returns the name bound to addr in the nearest layer.
func (s *Stack) LookupAddress(addr m.Address) (string, bool) {
	for _, layer := range s.layers {
		if name, ok := layer.Addresses[addr]; ok {
			return name, true
		}
	}

	return "", false
}

// LookupName returns the type bound to name in the nearest layer.
func (s *Stack) LookupName(name string) (m.DataType, bool) {
	return s.LookupNameDepth(name, len(s.layers))
}

// LookupNameDepth is LookupName restricted to the nearest maxDepth+1 layers;
// a maxDepth of 0 only searches the current layer.
func (s *Stack) LookupNameDepth(name string, maxDepth int) (m.DataType, bool) {
	for i, layer := range s.layers {
		if i > maxDepth {
			break
		}

		if dataType, ok := layer.Names[name]; ok {
			return dataType, true
		}
	}

	return m.Any, false
}
