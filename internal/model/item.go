package model

// FallbackItemName is used when an item image carries no alt text.
const FallbackItemName = "Unknown Item"

// MaxGlyphRunes limits the fallback glyph shown when an icon is missing.
const MaxGlyphRunes = 5

// Item represents a single item within a build row. Identity is positional
// within the row; the same icon may appear in many rows.
type Item struct {
	Name      string
	ImageURL  string
	Count     int    // number of stacked copies, 1 unless a badge says otherwise
	ImageData []byte // raw icon bytes, filled by the image fetch pass; nil on failure
}

// HasImage reports whether the icon bytes were successfully downloaded.
func (it *Item) HasImage() bool {
	return len(it.ImageData) > 0
}

// Glyph returns a short text stand-in rendered when the icon is missing
// or undecodable.
func (it *Item) Glyph() string {
	runes := []rune(it.Name)
	if len(runes) == 0 {
		return "?"
	}
	if len(runes) > MaxGlyphRunes {
		runes = runes[:MaxGlyphRunes]
	}
	return string(runes)
}

// BuildRow represents one table row of build data: the recommended items
// plus their statistics. Stats are kept as display strings because the
// source page may contain non-numeric placeholders.
type BuildRow struct {
	Items    []Item
	WinRate  string
	PickRate string
	Games    string
}
