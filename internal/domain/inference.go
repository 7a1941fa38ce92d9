package domain

import (
	"fmt"
	"log/slog"

	"ztar.dev/pkg/ztar/internal/domain/ast"
	"ztar.dev/pkg/ztar/internal/domain/scope"
	m "ztar.dev/pkg/ztar/internal/model"
)

// UnresolvedPolicy selects how a pass commits a candidate that is still the
// wildcard type.
type UnresolvedPolicy string

const (
	// SkipBatch abandons the rest of the pass's candidates.
	SkipBatch UnresolvedPolicy = "skip-batch"
	// SkipOne skips only that candidate.
	SkipOne UnresolvedPolicy = "skip-one"
)

// DefaultMaxPasses caps the passes run over a single block.
const DefaultMaxPasses = 256

// InferenceOptions tunes the type inference engine.
type InferenceOptions struct {
	MaxPasses        int
	UnresolvedPolicy UnresolvedPolicy
}

// DefaultInferenceOptions returns the options used when none are configured.
func DefaultInferenceOptions() InferenceOptions {
	return InferenceOptions{
		MaxPasses:        DefaultMaxPasses,
		UnresolvedPolicy: SkipBatch,
	}
}

// ParseUnresolvedPolicy validates a policy name. An empty name selects SkipBatch.
func ParseUnresolvedPolicy(name string) (UnresolvedPolicy, error) {
	switch UnresolvedPolicy(name) {
	case "", SkipBatch:
		return SkipBatch, nil
	case SkipOne:
		return SkipOne, nil
	}

	return "", fmt.Errorf("unknown unresolved policy %q (want %s or %s)", name, SkipBatch, SkipOne)
}

func (o InferenceOptions) normalized() InferenceOptions {
	if o.MaxPasses <= 0 {
		o.MaxPasses = DefaultMaxPasses
	}

	if o.UnresolvedPolicy == "" {
		o.UnresolvedPolicy = SkipBatch
	}

	return o
}

// typeState is the inference state of one name: unresolved, or resolved to a
// concrete type.
type typeState struct {
	resolved bool
	dataType m.DataType
}

func stateOf(dataType m.DataType, found bool) typeState {
	if !found || dataType.IsAny() {
		return typeState{dataType: m.Any}
	}

	return typeState{resolved: true, dataType: dataType}
}

// unify refines s with t. It reports whether the state changed, and false
// for ok when s is already resolved to a different type.
func (s typeState) unify(t m.DataType) (next typeState, changed bool, ok bool) {
	switch {
	case t.IsAny():
		return s, false, true
	case !s.resolved:
		return typeState{resolved: true, dataType: t}, true, true
	case s.dataType.Equal(t):
		return s, false, true
	default:
		return s, false, false
	}
}

type candidate struct {
	name     string
	dataType m.DataType
}

type inferrer struct {
	scope *scope.Stack
	opts  InferenceOptions
}

// inferDataTypes resolves any-typed variables of block from their uses and
// stamps the results onto their declarations. Passes scan the block in
// reverse so uses are seen before declarations, and repeat until a pass
// commits nothing.
func inferDataTypes(block *ast.Block, sc *scope.Stack, opts InferenceOptions) error {
	in := &inferrer{scope: sc, opts: opts.normalized()}
	_, err := in.infer(block)

	return err
}

func (in *inferrer) infer(block *ast.Block) (int, error) {
	for pass := 1; ; pass++ {
		if pass > in.opts.MaxPasses {
			return pass - 1, inconsistency("type inference did not settle after %d passes", in.opts.MaxPasses)
		}

		candidates, err := in.scan(*block)
		if err != nil {
			return pass, err
		}

		progress, err := in.commit(candidates)
		if err != nil {
			return pass, err
		}

		slog.Debug("type inference pass", "pass", pass, "statements", len(*block), "candidates", len(candidates), "progress", progress)

		if !progress {
			return pass, nil
		}
	}
}

func (in *inferrer) scan(block ast.Block) ([]candidate, error) {
	var candidates []candidate

	for i := len(block) - 1; i >= 0; i-- {
		stmt := block[i]

		switch s := stmt.(type) {
		case *ast.VarDeclare:
			c, err := in.declaration(s)
			if err != nil {
				return nil, err
			}

			if c != nil {
				candidates = append(candidates, *c)
			}

		case *ast.VarAssign:
			candidates = append(candidates, in.assignment(s)...)

		case *ast.MethodCall:
			candidates = append(candidates, in.call(s)...)
		}

		for _, inner := range stmt.Blocks() {
			if _, err := in.infer(inner); err != nil {
				return nil, err
			}
		}
	}

	return candidates, nil
}

func (in *inferrer) declaration(s *ast.VarDeclare) (*candidate, error) {
	resolved, ok := in.scope.LookupNameDepth(s.Name, 0)
	if !ok {
		dataType := m.Any
		if s.Value != nil {
			dataType = s.Value.DataType(in.scope)
		}

		return &candidate{name: s.Name, dataType: dataType}, nil
	}

	if resolved.IsAny() {
		return nil, nil
	}

	if !s.Type.IsAny() && !s.Type.Equal(resolved) {
		return nil, &TypeMismatchError{Identifier: s.Name, Declared: s.Type, Inferred: resolved}
	}

	s.Type = resolved

	if resolved.Kind == m.KindBool && s.Value != nil {
		s.Value, _ = ast.BoolFromInt(s.Value)
	}

	return nil, nil
}

func (in *inferrer) assignment(s *ast.VarAssign) []candidate {
	current, ok := in.scope.LookupName(s.Name)
	if !ok {
		return nil
	}

	switch current.Kind {
	case m.KindAny:
		return []candidate{{name: s.Name, dataType: s.Value.DataType(in.scope)}}
	case m.KindBool:
		s.Value, _ = ast.BoolFromInt(s.Value)
	}

	return nil
}

func (in *inferrer) call(s *ast.MethodCall) []candidate {
	_, dataType, ok := s.Method.Lookup(in.scope)
	if !ok || !dataType.IsCallable() {
		return nil
	}

	var candidates []candidate

	for i := 0; i < len(dataType.Params) && i < len(s.Args); i++ {
		param := dataType.Params[i]

		switch arg := s.Args[i].(type) {
		case ast.Identifier:
			if current, ok := in.scope.LookupName(arg.Name); ok && current.IsAny() {
				candidates = append(candidates, candidate{name: arg.Name, dataType: param})
			}

		case ast.IntLiteral:
			if param.Kind == m.KindBool {
				s.Args[i], _ = ast.BoolFromInt(arg)
			}
		}
	}

	return candidates
}

// commit writes the candidates into the current layer. It reports whether
// any name changed state.
func (in *inferrer) commit(candidates []candidate) (bool, error) {
	progress := false

	for _, c := range candidates {
		if c.dataType.IsAny() {
			if in.opts.UnresolvedPolicy == SkipBatch {
				break
			}

			continue
		}

		prev, found := in.scope.LookupNameDepth(c.name, 0)

		next, changed, ok := stateOf(prev, found).unify(c.dataType)
		if !ok {
			return progress, inconsistency("type of '%s' inferred as %s but already known as %s", c.name, c.dataType, prev)
		}

		if changed {
			in.scope.InsertName(c.name, next.dataType)

			progress = true
		}
	}

	return progress, nil
}
