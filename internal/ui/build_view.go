package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/aramlens/aram-builds/internal/model"
)

// renderResults fills every category tab from a completed result set.
// Must run on the UI thread.
func (ui *RootUI) renderResults(results model.ResultSet) {
	for _, category := range model.Categories() {
		box := ui.tabBoxes[category]
		if box == nil {
			continue
		}
		ui.renderCategory(box, results.Rows(category))
		box.Refresh()
	}
}

// renderCategory rebuilds one tab: a header row, then one view per build
// row, or a placeholder when the category produced nothing.
func (ui *RootUI) renderCategory(box *fyne.Container, rows []model.BuildRow) {
	box.RemoveAll()
	box.Add(ui.categoryHeader())
	box.Add(widget.NewSeparator())

	if len(rows) == 0 {
		box.Add(widget.NewLabel(ui.localization.GetText(KeyNoData)))
		return
	}

	for _, row := range rows {
		box.Add(ui.buildRowView(row))
		box.Add(widget.NewSeparator())
	}
}

func (ui *RootUI) categoryHeader() fyne.CanvasObject {
	bold := fyne.TextStyle{Bold: true}
	return container.NewHBox(
		fixedWidth(widget.NewLabelWithStyle(ui.localization.GetText(KeyColWinRate), fyne.TextAlignLeading, bold)),
		fixedWidth(widget.NewLabelWithStyle(ui.localization.GetText(KeyColPickRate), fyne.TextAlignLeading, bold)),
		fixedWidth(widget.NewLabelWithStyle(ui.localization.GetText(KeyColGames), fyne.TextAlignLeading, bold)),
		widget.NewLabelWithStyle(ui.localization.GetText(KeyColItems), fyne.TextAlignLeading, bold),
	)
}

// buildRowView renders one build row: win/pick/games stats followed by the
// item icons.
func (ui *RootUI) buildRowView(row model.BuildRow) fyne.CanvasObject {
	win := widget.NewLabelWithStyle(row.WinRate, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	pick := widget.NewLabel(row.PickRate)
	games := widget.NewLabel(row.Games)

	items := container.NewHBox()
	if len(row.Items) == 0 {
		items.Add(widget.NewLabel(DashPlaceholder))
	}
	for _, item := range row.Items {
		items.Add(ui.itemView(item))
	}

	return container.NewHBox(
		fixedWidth(win),
		fixedWidth(pick),
		fixedWidth(games),
		items,
	)
}

// itemView renders a single item icon with its stacked-count badge, or a
// short text glyph when the icon is missing or undecodable.
func (ui *RootUI) itemView(item model.Item) fyne.CanvasObject {
	size := float32(ui.settings.GetIconSize())

	img := DecodeIcon(item.ImageData, ui.settings.GetIconSize())
	if img == nil {
		glyph := widget.NewLabel(item.Glyph())
		glyph.Alignment = fyne.TextAlignCenter
		return container.NewGridWrap(fyne.NewSize(size, size), glyph)
	}

	icon := canvas.NewImageFromImage(img)
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(size, size))

	if item.Count <= 1 {
		return container.NewPadded(icon)
	}

	badge := canvas.NewText(fmt.Sprintf(CountBadgeFormat, item.Count), color.White)
	badge.TextSize = BadgeTextSize
	badge.TextStyle = fyne.TextStyle{Bold: true}

	// Pin the badge to the bottom-right corner of the icon.
	overlay := container.NewVBox(
		layout.NewSpacer(),
		container.NewHBox(layout.NewSpacer(), badge),
	)
	return container.NewPadded(container.NewStack(icon, overlay))
}

// fixedWidth pins a stats label to a fixed column width so rows line up
// under the header.
func fixedWidth(obj fyne.CanvasObject) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(StatsLabelWidth, obj.MinSize().Height), obj)
}
