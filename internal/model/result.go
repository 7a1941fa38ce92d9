package model

// Status is the outcome of decompiling one map.
type Status int

const (
	// Decompiled indicates the map produced source text.
	Decompiled Status = iota
	// Failed indicates decoding or inference aborted the map.
	Failed
	// Unchanged indicates the stored output already matches.
	Unchanged
	// Changed indicates the stored output differs from a fresh decompilation.
	Changed
)

func (s Status) String() string {
	switch s {
	case Decompiled:
		return "decompiled"
	case Failed:
		return "failed"
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// Result holds the decompilation outcome for a single map.
type Result struct {
	Map    MapInfo
	Source string
	Status Status
	Err    error
	Diff   string
}
