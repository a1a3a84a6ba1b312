package model

// Category is one of the four fixed build-data groupings on an ARAM page.
type Category string

const (
	CategoryCoreBuilds   Category = "Core Builds"
	CategoryStarterItems Category = "Starter Items"
	CategoryBoots        Category = "Boots"
	CategorySkills       Category = "Skills"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryCoreBuilds,
		CategoryStarterItems,
		CategoryBoots,
		CategorySkills,
	}
}

// String returns the display name of the category.
func (c Category) String() string {
	return string(c)
}

// HeaderText returns the substring matched against table headers when
// locating this category on the page. The skills table is matched by the
// shorter "Skill" so both "Skill" and "Skills" headers are found.
func (c Category) HeaderText() string {
	if c == CategorySkills {
		return "Skill"
	}
	return string(c)
}

// ResultSet maps each category to its extracted build rows. A set is
// produced once per fetch and never mutated afterwards; a new search
// replaces it wholesale.
type ResultSet map[Category][]BuildRow

// Rows returns the rows for a category, nil when the category was absent
// from the page.
func (rs ResultSet) Rows(c Category) []BuildRow {
	return rs[c]
}

// IsEmpty reports whether no category produced any rows.
func (rs ResultSet) IsEmpty() bool {
	for _, rows := range rs {
		if len(rows) > 0 {
			return false
		}
	}
	return true
}
