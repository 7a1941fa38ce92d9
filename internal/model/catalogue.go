package model

// EntryPoint is a fixed-address engine entry point with a known signature.
type EntryPoint struct {
	Address Address
	Name    string
	Type    DataType
}

// Catalogue is the immutable table of known entry points.
type Catalogue struct {
	entries []EntryPoint
}

// NewCatalogue copies entries into a new Catalogue.
func NewCatalogue(entries []EntryPoint) Catalogue {
	return Catalogue{entries: append([]EntryPoint(nil), entries...)}
}

// Entries returns a copy of the catalogue's entries in load order.
func (c Catalogue) Entries() []EntryPoint {
	return append([]EntryPoint(nil), c.entries...)
}

// Len returns the number of entries.
func (c Catalogue) Len() int {
	return len(c.entries)
}
