package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	m "ztar.dev/pkg/ztar/internal/model"
)

// ErrMapTable is returned for a malformed map table.
var ErrMapTable = errors.New("invalid map table")

// RomAdapter loads ROM images and the map tables describing them.
type RomAdapter interface {
	// LoadMapTable parses the YAML map table at path.
	LoadMapTable(path m.Path) ([]m.MapInfo, error)

	// LoadRom reads the ROM at path and checks every map segment fits in it.
	LoadRom(path m.Path, maps []m.MapInfo) (*Rom, error)
}

type mapTable struct {
	Maps []m.MapInfo `yaml:"maps"`
}

// LocalRomAdapter implements RomAdapter on top of an FSAdapter.
type LocalRomAdapter struct {
	fs FSAdapter
}

// NewLocalRomAdapter constructs a LocalRomAdapter.
func NewLocalRomAdapter(fs FSAdapter) *LocalRomAdapter {
	return &LocalRomAdapter{fs: fs}
}

// LoadMapTable reads and validates a map table. Map names must be unique and
// each main address must lie inside its map's segment. A missing area is
// taken from the map name prefix ("kmr_20" is in area "kmr").
func (a *LocalRomAdapter) LoadMapTable(path m.Path) ([]m.MapInfo, error) {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map table: %w", err)
	}

	maps, err := ParseMapTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Loaded map table", "path", path, "maps", len(maps))

	return maps, nil
}

// ParseMapTable parses and validates map table YAML.
func ParseMapTable(data []byte) ([]m.MapInfo, error) {
	var table mapTable

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapTable, err)
	}

	seen := make(map[string]struct{}, len(table.Maps))

	for i := range table.Maps {
		info := &table.Maps[i]

		if info.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrMapTable, i)
		}

		if _, dup := seen[info.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate map %q", ErrMapTable, info.Name)
		}

		seen[info.Name] = struct{}{}

		if info.Area == "" {
			info.Area, _, _ = strings.Cut(info.Name, "_")
		}

		if info.Size() == 0 {
			return nil, fmt.Errorf("%w: map %q has an empty segment", ErrMapTable, info.Name)
		}

		if info.Main < info.Vram || uint64(info.Main-info.Vram) >= uint64(info.Size()) {
			return nil, fmt.Errorf("%w: map %q main %s is outside its segment", ErrMapTable, info.Name, info.Main)
		}
	}

	return table.Maps, nil
}

// LoadRom reads the ROM image at path.
func (a *LocalRomAdapter) LoadRom(path m.Path, maps []m.MapInfo) (*Rom, error) {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rom: %w", err)
	}

	hash, err := a.fs.HashFile(path)
	if err != nil {
		return nil, fmt.Errorf("hash rom: %w", err)
	}

	rom, err := NewRom(data, maps)
	if err != nil {
		return nil, err
	}

	rom.hash = hash

	slog.Info("Loaded ROM", "path", path, "bytes", len(data), "sha256", hash, "maps", len(maps))

	return rom, nil
}

// Rom is a loaded ROM image together with its map table.
type Rom struct {
	data []byte
	maps []m.MapInfo
	hash string
}

// NewRom wraps a ROM image. Every map segment must fit inside data.
func NewRom(data []byte, maps []m.MapInfo) (*Rom, error) {
	for _, info := range maps {
		if uint64(info.RomEnd) > uint64(len(data)) {
			return nil, fmt.Errorf("%w: map %q ends at 0x%X past the end of the rom (0x%X)", ErrMapTable, info.Name, info.RomEnd, len(data))
		}
	}

	return &Rom{data: data, maps: append([]m.MapInfo(nil), maps...)}, nil
}

// Hash returns the SHA-256 fingerprint of the ROM file, if known.
func (r *Rom) Hash() string {
	return r.hash
}

// Maps returns the map table in load order.
func (r *Rom) Maps() []m.MapInfo {
	return append([]m.MapInfo(nil), r.maps...)
}

// Load extracts a map: its main script bytecode and the image its segment is
// loaded into.
func (r *Rom) Load(info m.MapInfo) (m.Map, m.Image, error) {
	if info.Size() == 0 || uint64(info.RomEnd) > uint64(len(r.data)) {
		return m.Map{}, nil, fmt.Errorf("%w: map %q segment 0x%X-0x%X", ErrMapTable, info.Name, info.RomStart, info.RomEnd)
	}

	image := &segmentImage{base: info.Vram, data: r.data[info.RomStart:info.RomEnd]}
	if !image.Contains(info.Main) {
		return m.Map{}, nil, fmt.Errorf("%w: map %q main %s is outside its segment", ErrMapTable, info.Name, info.Main)
	}

	return m.Map{
		Name:     info.Name,
		Area:     info.Area,
		MainFun:  info.Main,
		Bytecode: image.data[info.Main-info.Vram:],
	}, image, nil
}

// segmentImage maps a contiguous VRAM range onto a ROM segment.
type segmentImage struct {
	base m.Address
	data []byte
}

func (s *segmentImage) Contains(addr m.Address) bool {
	return addr >= s.base && uint64(addr-s.base) < uint64(len(s.data))
}

func (s *segmentImage) ReadAt(addr m.Address, n int) ([]byte, error) {
	if n < 0 || !s.Contains(addr) || uint64(addr-s.base)+uint64(n) > uint64(len(s.data)) {
		return nil, fmt.Errorf("read of %d byte(s) at %s is outside the image", n, addr)
	}

	off := addr - s.base

	return append([]byte(nil), s.data[off:off+m.Address(n)]...), nil
}
