package domain

import (
	"context"
	"log/slog"
	"strings"

	"ztar.dev/pkg/ztar/internal/domain/ast"
	"ztar.dev/pkg/ztar/internal/domain/scope"
	m "ztar.dev/pkg/ztar/internal/model"
)

// mainName is the name given to a map's main script.
const mainName = "main"

// Decoder turns a script's bytecode into an untyped statement block. It must
// register every call target it resolves in sc.
type Decoder interface {
	Decode(image m.Image, addr m.Address, code []byte, sc *scope.Stack) (ast.Block, error)
}

// Decompiler reconstructs typed source text for a map.
type Decompiler interface {
	DecompileMap(ctx context.Context, mp m.Map, image m.Image) (string, error)
}

type decompiler struct {
	decoder   Decoder
	catalogue m.Catalogue
	opts      InferenceOptions
}

// NewDecompiler constructs a Decompiler. The catalogue is read-only and may
// be shared between decompilers running concurrently.
func NewDecompiler(decoder Decoder, catalogue m.Catalogue, opts InferenceOptions) Decompiler {
	return &decompiler{
		decoder:   decoder,
		catalogue: catalogue,
		opts:      opts.normalized(),
	}
}

func (d *decompiler) DecompileMap(ctx context.Context, mp m.Map, image m.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sc := d.seedScope(mp)

	block, err := d.decoder.Decode(image, mp.MainFun, mp.Bytecode, sc)
	if err != nil {
		slog.Error("Failed to decode map", "map", mp.Name, "address", mp.MainFun, "error", err)
		return "", &DecodeError{Address: mp.MainFun, Err: err}
	}

	declarations := []ast.Declaration{
		&ast.Function{Name: ast.Ptr(mp.MainFun), Body: block},
	}

	for _, decl := range declarations {
		if err := d.typeDeclaration(ctx, decl, sc); err != nil {
			slog.Error("Failed to type map", "map", mp.Name, "error", err)
			return "", err
		}
	}

	rendered := make([]string, 0, len(declarations))
	for _, decl := range declarations {
		rendered = append(rendered, decl.Render(sc))
	}

	slog.Debug("Decompiled map", "map", mp.Name, "declarations", len(declarations))

	return strings.Join(rendered, "\n"), nil
}

// seedScope brings the engine entry points and the main script into scope,
// then opens the layer the script body is decoded into.
func (d *decompiler) seedScope(mp m.Map) *scope.Stack {
	sc := scope.New()

	for _, entry := range d.catalogue.Entries() {
		sc.InsertAddress(entry.Address, entry.Name, entry.Type)
	}

	// main is declared without parameters even though, like every script,
	// it captures the register file.
	sc.InsertAddress(mp.MainFun, mainName, m.Fun())
	sc.Push()

	return sc
}

// typeDeclaration runs the capture fix-up then type inference on each of the
// declaration's blocks.
func (d *decompiler) typeDeclaration(ctx context.Context, decl ast.Declaration, sc *scope.Stack) error {
	for _, block := range decl.Blocks() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := fixCallArgCapture(block, sc); err != nil {
			return err
		}

		if err := inferDataTypes(block, sc, d.opts); err != nil {
			return err
		}
	}

	return nil
}
