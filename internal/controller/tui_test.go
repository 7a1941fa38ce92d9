package controller

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ztar.dev/pkg/ztar/internal/model"
)

func TestSourceModel_View(t *testing.T) {
	source := "fun main() {\n    wait 10\n}\n"
	model := newSourceModel(kmr20, source)

	assert.Equal(t, "loading...", model.View())

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Nil(t, cmd)

	view := updated.View()
	assert.Contains(t, view, "kmr/kmr_20 @ 0x80240010")
	assert.Contains(t, view, "wait 10")
	assert.Contains(t, view, "3 lines")
}

func TestSourceModel_Resize(t *testing.T) {
	model := newSourceModel(kmr20, strings.Repeat("wait 1\n", 50))

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	updated, _ = updated.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	sm, ok := updated.(sourceModel)
	require.True(t, ok)
	assert.Equal(t, 40, sm.viewport.Width)
	assert.Equal(t, 8, sm.viewport.Height)
}

func TestSourceModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			model := newSourceModel(kmr20, "fun main() {\n}\n")

			updated, cmd := model.Update(key)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, updated.View())
		})
	}
}

func TestTUI_DisplayResults(t *testing.T) {
	cmd, buf := newTestCommand()
	results := []m.Result{
		{Map: kmr20, Status: m.Decompiled},
		{Map: mac01, Status: m.Failed, Err: errors.New("boom")},
	}

	require.NoError(t, NewTUI(cmd).DisplayResults(context.Background(), results))

	got := buf.String()
	for _, want := range []string{"kmr/kmr_20", "decompiled", "mac/mac_01", "failed", "boom"} {
		assert.Contains(t, got, want)
	}
}
