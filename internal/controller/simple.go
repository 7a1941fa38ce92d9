package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "ztar.dev/pkg/ztar/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayMaps prints the map table.
func (s *SimpleUI) DisplayMaps(ctx context.Context, maps []m.MapInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderMapTable(maps))

	return nil
}

func renderMapTable(maps []m.MapInfo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Map", "Area", "Main", "Bytes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0

	for _, info := range maps {
		table.Append([]string{info.Name, info.Area, info.Main.String(), fmt.Sprintf("%d", info.Size())})

		total += info.Size()
	}

	table.SetFooter([]string{fmt.Sprintf("Total Maps %d", len(maps)), "", "", fmt.Sprintf("%d", total)})
	table.Render()

	return tableBuffer.String()
}

// DisplayProgress prints one line per finished map.
func (s *SimpleUI) DisplayProgress(ctx context.Context, result m.Result) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Err != nil {
		s.printf("%s/%s -> %s: %v\n", result.Map.Area, result.Map.Name, result.Status, result.Err)
		return
	}

	s.printf("%s/%s -> %s\n", result.Map.Area, result.Map.Name, result.Status)
}

// DisplayResults prints a summary table of a decompile run.
func (s *SimpleUI) DisplayResults(ctx context.Context, results []m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderResultTable(results, formatStatus))

	return nil
}

func renderResultTable(results []m.Result, status func(m.Status) string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Map", "Status", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	failed := 0

	for _, result := range results {
		errText := ""
		if result.Err != nil {
			errText = result.Err.Error()
			failed++
		}

		table.Append([]string{result.Map.Area + "/" + result.Map.Name, status(result.Status), errText})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Maps %d", len(results)),
		fmt.Sprintf("%d ok", len(results)-failed),
		fmt.Sprintf("%d failed", failed),
	})
	table.Render()

	return tableBuffer.String()
}

// DisplayDiffs prints the unified diff of every changed map.
func (s *SimpleUI) DisplayDiffs(ctx context.Context, results []m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	changed := 0

	for _, result := range results {
		switch result.Status {
		case m.Changed:
			changed++

			s.printf("%s", result.Diff)
		case m.Failed:
			s.printf("%s/%s: %v\n", result.Map.Area, result.Map.Name, result.Err)
		case m.Decompiled, m.Unchanged:
		}
	}

	s.printf("%d of %d map(s) changed\n", changed, len(results))

	return nil
}

// DisplaySource prints the source of a map.
func (s *SimpleUI) DisplaySource(ctx context.Context, _ m.MapInfo, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", source)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatStatus(status m.Status) string {
	return status.String()
}
