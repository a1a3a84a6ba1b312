package scrape

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aramlens/aram-builds/internal/model"
)

// ExtractTable locates the first table whose header cell contains
// headerText (case-insensitive) and converts its body rows into build rows.
// A missing header, table, or body yields an empty result rather than an
// error: some champions legitimately have no data for a category.
func ExtractTable(doc *goquery.Document, headerText string) []model.BuildRow {
	want := strings.ToLower(headerText)

	var header *goquery.Selection
	doc.Find("th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(Text(th)), want) {
			header = th
			return false
		}
		return true
	})
	if header == nil {
		return nil
	}

	table := header.Closest("table")
	if table.Length() == 0 {
		return nil
	}
	tbody := table.Find("tbody").First()
	if tbody.Length() == 0 {
		return nil
	}

	var rows []model.BuildRow
	tbody.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cols := tr.Find("td")
		if cols.Length() < 3 {
			// malformed row, not fatal for the table
			return
		}

		var items []model.Item
		cols.Eq(0).Find("img").Each(func(_ int, img *goquery.Selection) {
			if src, _ := img.Attr("src"); src != "" {
				items = append(items, extractItem(img, src))
			}
		})

		stats := cols.Eq(1)
		rows = append(rows, model.BuildRow{
			Items:    items,
			PickRate: firstText(stats, "strong"),
			Games:    firstText(stats, "span"),
			WinRate:  firstText(cols.Eq(2), "strong"),
		})
	})
	return rows
}

// extractItem builds an Item from an icon image tag. The stacked-item count
// is an overlay badge: a div.absolute inside the icon's nearest div.relative
// ancestor. Absent or non-numeric badges default the count to 1.
func extractItem(img *goquery.Selection, src string) model.Item {
	name := img.AttrOr("alt", model.FallbackItemName)

	count := 1
	badge := img.Closest("div.relative").Find("div.absolute").First()
	if badge.Length() > 0 {
		if n, err := strconv.Atoi(Text(badge)); err == nil && n > 0 {
			count = n
		}
	}

	return model.Item{Name: name, ImageURL: src, Count: count}
}

// firstText returns the cleaned text of the first child matching the
// selector, or the sentinel "N/A" when no such child exists. The page
// omits stat sub-elements for sparsely played builds.
func firstText(sel *goquery.Selection, selector string) string {
	child := sel.Find(selector).First()
	if child.Length() == 0 {
		return "N/A"
	}
	return Text(child)
}
