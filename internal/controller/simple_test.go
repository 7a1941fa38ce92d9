package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ztar.dev/pkg/ztar/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

var (
	kmr20 = m.MapInfo{Name: "kmr_20", Area: "kmr", RomStart: 0x100, RomEnd: 0x300, Vram: 0x80240000, Main: 0x80240010}
	mac01 = m.MapInfo{Name: "mac_01", Area: "mac", RomStart: 0x300, RomEnd: 0x340, Vram: 0x80240000, Main: 0x80240000}
)

func TestSimpleUI_DisplayMaps(t *testing.T) {
	cmd, buf := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayMaps(context.Background(), []m.MapInfo{kmr20, mac01}))

	got := buf.String()
	for _, want := range []string{"kmr_20", "mac_01", "0x80240010", "512", "TOTAL MAPS 2", "576"} {
		assert.Contains(t, got, want)
	}
}

func TestSimpleUI_DisplayResults(t *testing.T) {
	cmd, buf := newTestCommand()
	results := []m.Result{
		{Map: kmr20, Status: m.Decompiled},
		{Map: mac01, Status: m.Failed, Err: errors.New("variable 'x' declared as int but is used as bool")},
	}

	require.NoError(t, NewSimpleUI(cmd).DisplayResults(context.Background(), results))

	got := buf.String()
	for _, want := range []string{"kmr/kmr_20", "decompiled", "mac/mac_01", "failed", "declared as int", "1 OK", "1 FAILED"} {
		assert.Contains(t, got, want)
	}
}

func TestSimpleUI_DisplayProgress(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayProgress(context.Background(), m.Result{Map: kmr20, Status: m.Decompiled})
	ui.DisplayProgress(context.Background(), m.Result{Map: mac01, Status: m.Failed, Err: errors.New("boom")})

	assert.Equal(t, "kmr/kmr_20 -> decompiled\nmac/mac_01 -> failed: boom\n", buf.String())
}

func TestSimpleUI_DisplayDiffs(t *testing.T) {
	cmd, buf := newTestCommand()
	results := []m.Result{
		{Map: kmr20, Status: m.Changed, Diff: "--- a\n+++ b\n-old\n+new\n"},
		{Map: mac01, Status: m.Unchanged},
	}

	require.NoError(t, NewSimpleUI(cmd).DisplayDiffs(context.Background(), results))
	assert.Equal(t, "--- a\n+++ b\n-old\n+new\n1 of 2 map(s) changed\n", buf.String())
}

func TestSimpleUI_DisplaySource(t *testing.T) {
	cmd, buf := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplaySource(context.Background(), kmr20, "fun main() {\n}\n"))
	assert.Equal(t, "fun main() {\n}\n", buf.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, buf := newTestCommand()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(cmd)

	require.ErrorIs(t, ui.DisplayMaps(ctx, []m.MapInfo{kmr20}), context.Canceled)
	require.ErrorIs(t, ui.DisplayResults(ctx, nil), context.Canceled)
	ui.DisplayProgress(ctx, m.Result{Map: kmr20})
	assert.Empty(t, buf.String())
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}
