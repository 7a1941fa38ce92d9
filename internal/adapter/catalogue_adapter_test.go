package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ztar.dev/pkg/ztar/internal/model"
)

func findEntry(t *testing.T, catalogue m.Catalogue, name string) m.EntryPoint {
	t.Helper()

	for _, entry := range catalogue.Entries() {
		if entry.Name == name {
			return entry
		}
	}

	t.Fatalf("entry %s not found", name)

	return m.EntryPoint{}
}

func TestLocalCatalogueAdapter_Builtin(t *testing.T) {
	catalogue, err := NewLocalCatalogueAdapter(NewLocalFSAdapter()).Load("")
	require.NoError(t, err)
	require.Positive(t, catalogue.Len())

	input := findEntry(t, catalogue, "DisablePlayerInput")
	assert.Equal(t, m.Address(0x802D0000), input.Address)
	assert.Equal(t, m.Asm(m.Bool), input.Type)

	door := findEntry(t, catalogue, "ExitSingleDoor")
	assert.Equal(t, m.Fun(m.Int, m.Int), door.Type)
}

func TestLocalCatalogueAdapter_Extra(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "extra.yaml")
	writeTestFile(t, path, `entrypoints:
  - {address: 0x802D0000, name: DisablePlayerInput, kind: asm, params: [int]}
  - {address: 0x80241000, name: kmr_20_setup, kind: fun, params: [bool, float]}
`)

	builtin, err := NewLocalCatalogueAdapter(NewLocalFSAdapter()).Load("")
	require.NoError(t, err)

	catalogue, err := NewLocalCatalogueAdapter(NewLocalFSAdapter()).Load(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, builtin.Len()+1, catalogue.Len())

	assert.Equal(t, m.Asm(m.Int), findEntry(t, catalogue, "DisablePlayerInput").Type)
	assert.Equal(t, m.Fun(m.Bool, m.Float), findEntry(t, catalogue, "kmr_20_setup").Type)
}

func TestLocalCatalogueAdapter_ExtraErrors(t *testing.T) {
	root := t.TempDir()
	adapter := NewLocalCatalogueAdapter(NewLocalFSAdapter())

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.Load(m.Path(filepath.Join(root, "missing.yaml")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read catalogue")
	})

	t.Run("name clashes with another address", func(t *testing.T) {
		path := filepath.Join(root, "clash.yaml")
		writeTestFile(t, path, "entrypoints:\n  - {address: 0x80241000, name: PlaySound, kind: asm, params: [int]}\n")

		_, err := adapter.Load(m.Path(path))
		require.ErrorIs(t, err, ErrCatalogue)
		assert.Contains(t, err.Error(), "name PlaySound")
	})
}

func TestParseEntryPoints_Errors(t *testing.T) {
	tests := []struct {
		name  string
		table string
		want  string
	}{
		{
			name:  "duplicate address",
			table: "entrypoints:\n  - {address: 0x1, name: a, kind: asm}\n  - {address: 0x1, name: b, kind: asm}\n",
			want:  "share address",
		},
		{
			name:  "duplicate name",
			table: "entrypoints:\n  - {address: 0x1, name: a, kind: asm}\n  - {address: 0x2, name: a, kind: fun}\n",
			want:  "name a is used",
		},
		{
			name:  "unknown kind",
			table: "entrypoints:\n  - {address: 0x1, name: a, kind: lua}\n",
			want:  `unknown kind "lua"`,
		},
		{
			name:  "unknown param type",
			table: "entrypoints:\n  - {address: 0x1, name: a, kind: asm, params: [string]}\n",
			want:  `unknown data type "string"`,
		},
		{
			name:  "missing name",
			table: "entrypoints:\n  - {address: 0x1, kind: asm}\n",
			want:  "has no name",
		},
		{
			name:  "malformed yaml",
			table: "entrypoints: [",
			want:  "invalid entry-point catalogue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntryPoints([]byte(tt.table))
			require.ErrorIs(t, err, ErrCatalogue)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLocalCatalogueAdapter_ExampleCatalogue(t *testing.T) {
	catalogue, err := NewLocalCatalogueAdapter(NewLocalFSAdapter()).Load(m.Path(filepath.Join("..", "..", "examples", "catalogue.yaml")))
	require.NoError(t, err)

	assert.Equal(t, m.Fun(m.Int, m.Bool), findEntry(t, catalogue, "kmr_20_EnterHouse").Type)
	assert.Equal(t, m.Asm(m.Int), findEntry(t, catalogue, "PlaySound").Type)
}
