package platform

import "strings"

// NormalizeChampionName converts a champion name into the URL slug used by
// the build site.
//
// Rules:
//  1. Lowercase everything.
//  2. Remove every character that is not a lowercase ASCII letter.
//
// This strips spaces, apostrophes, periods, ampersands, and digits:
// "Vel'Koz" -> "velkoz", "Dr. Mundo" -> "drmundo", "Lee Sin" -> "leesin",
// "Nunu & Willump" -> "nunuwillump".
//
// There is no locale awareness; non-Latin input yields an empty or wrong
// slug. That is a documented limitation of the source site's URL scheme.
func NormalizeChampionName(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
