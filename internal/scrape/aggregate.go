package scrape

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/aramlens/aram-builds/internal/model"
)

// CollectBuilds runs the table extractor once per category, then fills in
// icon bytes for every discovered item in a flat sequential pass. Repeated
// icons are fetched again rather than deduplicated; the tables are small
// and the simplicity is worth the extra requests. Aggregation never fails
// as a unit, individual sub-fetch failures are absorbed.
func (c *Client) CollectBuilds(ctx context.Context, doc *goquery.Document) model.ResultSet {
	results := model.ResultSet{}
	for _, category := range model.Categories() {
		results[category] = ExtractTable(doc, category.HeaderText())
	}

	for _, category := range model.Categories() {
		rows := results[category]
		for i := range rows {
			for j := range rows[i].Items {
				item := &rows[i].Items[j]
				if item.ImageURL == "" {
					continue
				}
				item.ImageData = c.FetchImageBytes(ctx, item.ImageURL)
			}
		}
	}
	return results
}
