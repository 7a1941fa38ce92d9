package model

import "fmt"

// Address is a VM address. Addresses are unique per decompiled image.
type Address uint32

func (a Address) String() string {
	return fmt.Sprintf("0x%08X", uint32(a))
}

// Image gives the decoder access to the memory a map is loaded into.
type Image interface {
	// Contains reports whether addr lies inside the image.
	Contains(addr Address) bool
	// ReadAt returns n bytes starting at addr.
	ReadAt(addr Address, n int) ([]byte, error)
}

// Map bundles a map's main script address with the bytecode at that address.
type Map struct {
	Name     string
	Area     string
	MainFun  Address
	Bytecode []byte
}

// MapInfo is one entry of a map table: where a map's data segment lives in
// the ROM and where it is loaded in VM memory.
type MapInfo struct {
	Name     string  `yaml:"name"`
	Area     string  `yaml:"area"`
	RomStart uint32  `yaml:"rom_start"`
	RomEnd   uint32  `yaml:"rom_end"`
	Vram     Address `yaml:"vram"`
	Main     Address `yaml:"main"`
}

// Size returns the length of the map's data segment.
func (mi MapInfo) Size() int {
	if mi.RomEnd <= mi.RomStart {
		return 0
	}

	return int(mi.RomEnd - mi.RomStart)
}

// Path is a file system path.
type Path string
