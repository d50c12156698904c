package model

import (
	"encoding/json"
	"fmt"
)

// Level represents the rank of an outline heading, H1 (most prominent)
// through H4 (least prominent)
type Level int

const (
	LevelUnknown Level = iota
	LevelH1            // H1 - top-level section
	LevelH2            // H2 - major subsection
	LevelH3            // H3 - subsection
	LevelH4            // H4 - minor heading
)

// String returns the conventional name for the level ("H1".."H4")
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelH4:
		return "H4"
	default:
		return "unknown"
	}
}

// Depth returns the nesting depth for rendering (0 for H1, 3 for H4).
// Unknown levels report 0.
func (l Level) Depth() int {
	if l < LevelH1 || l > LevelH4 {
		return 0
	}
	return int(l) - 1
}

// MarshalJSON encodes the level as its conventional name.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its conventional name.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := ParseLevel(s)
	if parsed == LevelUnknown {
		return fmt.Errorf("unknown outline level %q", s)
	}
	*l = parsed
	return nil
}

// ParseLevel returns the Level named by s ("H1".."H4"), or LevelUnknown.
func ParseLevel(s string) Level {
	switch s {
	case "H1":
		return LevelH1
	case "H2":
		return LevelH2
	case "H3":
		return LevelH3
	case "H4":
		return LevelH4
	default:
		return LevelUnknown
	}
}

// OutlineEntry is a single accepted heading in the document outline
type OutlineEntry struct {
	Level Level  `json:"level"` // Heading rank H1..H4
	Text  string `json:"text"`  // Heading text, whitespace-normalized
	Page  int    `json:"page"`  // 1-based page number
}

// Outline is the terminal artifact of outline inference: the inferred
// document title plus the flat heading sequence in reading order
type Outline struct {
	Title   string         `json:"title"`
	Entries []OutlineEntry `json:"outline"`
}

// NewOutline creates an outline with the given title and no entries.
// Entries is non-nil so an empty outline serializes as an empty array.
func NewOutline(title string) *Outline {
	return &Outline{
		Title:   title,
		Entries: make([]OutlineEntry, 0),
	}
}

// EntryCount returns the number of outline entries
func (o *Outline) EntryCount() int {
	if o == nil {
		return 0
	}
	return len(o.Entries)
}

// GetEntry returns a specific entry by index, or nil when out of range
func (o *Outline) GetEntry(index int) *OutlineEntry {
	if o == nil || index < 0 || index >= len(o.Entries) {
		return nil
	}
	return &o.Entries[index]
}

// EntriesAtLevel returns all entries with the given level
func (o *Outline) EntriesAtLevel(level Level) []OutlineEntry {
	if o == nil {
		return nil
	}

	var result []OutlineEntry
	for _, e := range o.Entries {
		if e.Level == level {
			result = append(result, e)
		}
	}
	return result
}

// EntriesOnPage returns all entries recorded for the given 1-based page
func (o *Outline) EntriesOnPage(page int) []OutlineEntry {
	if o == nil {
		return nil
	}

	var result []OutlineEntry
	for _, e := range o.Entries {
		if e.Page == page {
			result = append(result, e)
		}
	}
	return result
}
