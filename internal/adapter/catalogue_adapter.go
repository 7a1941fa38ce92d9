package adapter

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	m "ztar.dev/pkg/ztar/internal/model"
)

//go:embed entrypoints.yaml
var builtinEntryPoints []byte

// ErrCatalogue is returned for a malformed entry-point table.
var ErrCatalogue = errors.New("invalid entry-point catalogue")

// CatalogueAdapter provides the table of engine entry points.
type CatalogueAdapter interface {
	// Load returns the built-in catalogue with the table at extra merged over
	// it. An empty extra path loads only the built-in table.
	Load(extra m.Path) (m.Catalogue, error)
}

type entryPointRecord struct {
	Address m.Address `yaml:"address"`
	Name    string    `yaml:"name"`
	Kind    string    `yaml:"kind"`
	Params  []string  `yaml:"params"`
}

type entryPointTable struct {
	EntryPoints []entryPointRecord `yaml:"entrypoints"`
}

// LocalCatalogueAdapter implements CatalogueAdapter.
type LocalCatalogueAdapter struct {
	fs FSAdapter
}

// NewLocalCatalogueAdapter constructs a LocalCatalogueAdapter.
func NewLocalCatalogueAdapter(fs FSAdapter) *LocalCatalogueAdapter {
	return &LocalCatalogueAdapter{fs: fs}
}

// Load merges the extra table over the built-in one. An extra entry replaces
// the built-in entry at the same address.
func (a *LocalCatalogueAdapter) Load(extra m.Path) (m.Catalogue, error) {
	entries, err := ParseEntryPoints(builtinEntryPoints)
	if err != nil {
		return m.Catalogue{}, fmt.Errorf("built-in catalogue: %w", err)
	}

	if extra != "" {
		data, err := a.fs.ReadFile(extra)
		if err != nil {
			return m.Catalogue{}, fmt.Errorf("read catalogue: %w", err)
		}

		overrides, err := ParseEntryPoints(data)
		if err != nil {
			return m.Catalogue{}, fmt.Errorf("%s: %w", extra, err)
		}

		entries, err = mergeEntryPoints(entries, overrides)
		if err != nil {
			return m.Catalogue{}, fmt.Errorf("%s: %w", extra, err)
		}
	}

	slog.Debug("Loaded catalogue", "entries", len(entries), "extra", extra)

	return m.NewCatalogue(entries), nil
}

// ParseEntryPoints parses an entry-point table. Addresses and names must be
// unique within the table.
func ParseEntryPoints(data []byte) ([]m.EntryPoint, error) {
	var table entryPointTable

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogue, err)
	}

	entries := make([]m.EntryPoint, 0, len(table.EntryPoints))

	for _, record := range table.EntryPoints {
		entry, err := record.entryPoint()
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := checkUnique(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r entryPointRecord) entryPoint() (m.EntryPoint, error) {
	if r.Name == "" {
		return m.EntryPoint{}, fmt.Errorf("%w: entry at %s has no name", ErrCatalogue, r.Address)
	}

	params := make([]m.DataType, 0, len(r.Params))

	for _, name := range r.Params {
		param, err := m.ParseDataType(name)
		if err != nil {
			return m.EntryPoint{}, fmt.Errorf("%w: %s: %w", ErrCatalogue, r.Name, err)
		}

		params = append(params, param)
	}

	var dataType m.DataType

	switch r.Kind {
	case "asm":
		dataType = m.Asm(params...)
	case "fun":
		dataType = m.Fun(params...)
	default:
		return m.EntryPoint{}, fmt.Errorf("%w: %s: unknown kind %q (want asm or fun)", ErrCatalogue, r.Name, r.Kind)
	}

	return m.EntryPoint{Address: r.Address, Name: r.Name, Type: dataType}, nil
}

func checkUnique(entries []m.EntryPoint) error {
	addresses := make(map[m.Address]string, len(entries))
	names := make(map[string]m.Address, len(entries))

	for _, entry := range entries {
		if other, dup := addresses[entry.Address]; dup {
			return fmt.Errorf("%w: %s and %s share address %s", ErrCatalogue, other, entry.Name, entry.Address)
		}

		if other, dup := names[entry.Name]; dup {
			return fmt.Errorf("%w: name %s is used at %s and %s", ErrCatalogue, entry.Name, other, entry.Address)
		}

		addresses[entry.Address] = entry.Name
		names[entry.Name] = entry.Address
	}

	return nil
}

func mergeEntryPoints(base, overrides []m.EntryPoint) ([]m.EntryPoint, error) {
	index := make(map[m.Address]int, len(base))
	merged := append([]m.EntryPoint(nil), base...)

	for i, entry := range merged {
		index[entry.Address] = i
	}

	for _, entry := range overrides {
		if i, ok := index[entry.Address]; ok {
			merged[i] = entry
			continue
		}

		index[entry.Address] = len(merged)
		merged = append(merged, entry)
	}

	if err := checkUnique(merged); err != nil {
		return nil, err
	}

	return merged, nil
}
