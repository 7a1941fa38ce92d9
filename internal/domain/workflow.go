package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"ztar.dev/pkg/ztar/internal/adapter"
	"ztar.dev/pkg/ztar/internal/controller"
	m "ztar.dev/pkg/ztar/internal/model"
)

// ListArgs contains the arguments for listing maps.
type ListArgs struct {
	MapTable m.Path
	Exclude  []string
}

// DecompileArgs contains the arguments shared by decompile, diff and view.
type DecompileArgs struct {
	Rom       m.Path
	MapTable  m.Path
	Maps      []string
	Exclude   []string
	Output    m.Path
	Catalogue m.Path
	Threads   int
	Inference InferenceOptions
}

// ViewArgs contains the arguments for viewing a single map.
type ViewArgs struct {
	DecompileArgs
	Map string
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Decompile(ctx context.Context, args DecompileArgs) error
	Diff(ctx context.Context, args DecompileArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.RomAdapter
	adapter.CatalogueAdapter
	adapter.OutputStore
	ui      controller.UI
	decoder Decoder

	uiMutex sync.Mutex
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	romAdapter adapter.RomAdapter,
	catalogueAdapter adapter.CatalogueAdapter,
	outputStore adapter.OutputStore,
	ui controller.UI,
	decoder Decoder,
) Workflow {
	return &workflow{
		RomAdapter:       romAdapter,
		CatalogueAdapter: catalogueAdapter,
		OutputStore:      outputStore,
		ui:               ui,
		decoder:          decoder,
	}
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	maps, err := w.LoadMapTable(args.MapTable)
	if err != nil {
		return fmt.Errorf("load map table: %w", err)
	}

	selected, err := selectMaps(maps, nil, args.Exclude)
	if err != nil {
		return err
	}

	return w.ui.DisplayMaps(ctx, selected)
}

func (w *workflow) Decompile(ctx context.Context, args DecompileArgs) error {
	results, err := w.decompileAll(ctx, args)
	if err != nil {
		return err
	}

	for i := range results {
		result := &results[i]
		if result.Status == m.Failed {
			continue
		}

		path, err := w.OutputStore.Save(args.Output, result.Map, result.Source)
		if err != nil {
			return err
		}

		slog.Debug("Wrote map source", "map", result.Map.Name, "path", path)
	}

	if err := w.ui.DisplayResults(ctx, results); err != nil {
		return err
	}

	return failures(results)
}

func (w *workflow) Diff(ctx context.Context, args DecompileArgs) error {
	results, err := w.decompileAll(ctx, args)
	if err != nil {
		return err
	}

	for i := range results {
		result := &results[i]
		if result.Status == m.Failed {
			continue
		}

		stored, _, err := w.OutputStore.Load(args.Output, result.Map)
		if err != nil {
			return err
		}

		result.Diff, err = unifiedDiff(result.Map, stored, result.Source)
		if err != nil {
			return err
		}

		result.Status = m.Unchanged
		if result.Diff != "" {
			result.Status = m.Changed
		}
	}

	if err := w.ui.DisplayDiffs(ctx, results); err != nil {
		return err
	}

	return failures(results)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	args.Maps = []string{args.Map}
	args.Exclude = nil
	args.Threads = 1

	results, err := w.decompileAll(ctx, args.DecompileArgs)
	if err != nil {
		return err
	}

	result := results[0]
	if result.Err != nil {
		return result.Err
	}

	return w.ui.DisplaySource(ctx, result.Map, result.Source)
}

// decompileAll decompiles the selected maps concurrently. Per-map failures
// are recorded in the results; an internal inconsistency aborts the run.
func (w *workflow) decompileAll(ctx context.Context, args DecompileArgs) ([]m.Result, error) {
	maps, err := w.LoadMapTable(args.MapTable)
	if err != nil {
		return nil, fmt.Errorf("load map table: %w", err)
	}

	selected, err := selectMaps(maps, args.Maps, args.Exclude)
	if err != nil {
		return nil, err
	}

	rom, err := w.LoadRom(args.Rom, maps)
	if err != nil {
		return nil, fmt.Errorf("load rom: %w", err)
	}

	catalogue, err := w.CatalogueAdapter.Load(args.Catalogue)
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}

	decompiler := NewDecompiler(w.decoder, catalogue, args.Inference)
	results := make([]m.Result, len(selected))

	slog.Info("Decompiling maps", "maps", len(selected), "threads", args.Threads, "entrypoints", catalogue.Len())

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, info := range selected {
		i, info := i, info
		group.Go(func() error {
			result, err := decompileOne(groupCtx, decompiler, rom, info)
			if err != nil {
				return err
			}

			results[i] = result

			w.uiMutex.Lock()
			w.ui.DisplayProgress(groupCtx, result)
			w.uiMutex.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func decompileOne(ctx context.Context, decompiler Decompiler, rom *adapter.Rom, info m.MapInfo) (m.Result, error) {
	result := m.Result{Map: info, Status: m.Decompiled}

	mp, image, err := rom.Load(info)
	if err == nil {
		result.Source, err = decompiler.DecompileMap(ctx, mp, image)
	}

	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, ErrInconsistency):
		return result, fmt.Errorf("map %s: %w", info.Name, err)
	case ctx.Err() != nil:
		return result, ctx.Err()
	}

	slog.Warn("Map failed", "map", info.Name, "error", err)

	result.Status = m.Failed
	result.Err = err

	return result, nil
}

// selectMaps keeps the named maps (all maps when names is empty) whose names
// match none of the exclude patterns.
func selectMaps(maps []m.MapInfo, names []string, exclude []string) ([]m.MapInfo, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	candidates := maps

	if len(names) > 0 {
		byName := make(map[string]m.MapInfo, len(maps))
		for _, info := range maps {
			byName[info.Name] = info
		}

		candidates = make([]m.MapInfo, 0, len(names))

		for _, name := range names {
			info, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownMap, name)
			}

			candidates = append(candidates, info)
		}
	}

	selected := make([]m.MapInfo, 0, len(candidates))

	for _, info := range candidates {
		if !excluded(info.Name, patterns) {
			selected = append(selected, info)
		}
	}

	return selected, nil
}

func excluded(name string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}

func unifiedDiff(info m.MapInfo, stored, fresh string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(stored),
		B:        difflib.SplitLines(fresh),
		FromFile: "stored/" + info.Area + "/" + info.Name + adapter.OutputExtension,
		ToFile:   "decompiled/" + info.Area + "/" + info.Name + adapter.OutputExtension,
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}

func failures(results []m.Result) error {
	failed := 0

	for _, result := range results {
		if result.Status == m.Failed {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrMapsFailed, failed, len(results))
	}

	return nil
}
