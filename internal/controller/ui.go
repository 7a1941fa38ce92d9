// Package controller provides the user interfaces for displaying
// decompilation results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "ztar.dev/pkg/ztar/internal/model"
)

// UI defines how map lists, decompilation results and sources are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayMaps lists the maps of a map table.
	DisplayMaps(ctx context.Context, maps []m.MapInfo) error
	// DisplayProgress reports a single map that finished decompiling.
	DisplayProgress(ctx context.Context, result m.Result)
	// DisplayResults summarises a decompile run.
	DisplayResults(ctx context.Context, results []m.Result) error
	// DisplayDiffs shows how fresh decompilations differ from stored output.
	DisplayDiffs(ctx context.Context, results []m.Result) error
	// DisplaySource shows the decompiled source of one map.
	DisplaySource(ctx context.Context, info m.MapInfo, source string) error
}

// NewUI picks the interactive UI when output goes to a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
