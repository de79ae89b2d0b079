package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/places-guide/internal/flow"
)

// categoryView lists the categories; selecting one opens its places
func (ui *RootUI) categoryView(state flow.CategoryState) fyne.CanvasObject {
	categories := state.Categories

	list := widget.NewList(
		func() int {
			return len(categories)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			spacer := canvas.NewRectangle(color.Transparent)
			spacer.SetMinSize(fyne.NewSize(0, ui.mobile.RowHeight(0)))
			return container.NewStack(spacer, container.NewPadded(label))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(categories) {
				return
			}
			label := obj.(*fyne.Container).Objects[1].(*fyne.Container).Objects[0].(*widget.Label)
			label.SetText(categories[id])
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		list.UnselectAll()
		if id < len(categories) {
			ui.router.SelectCategory(categories[id])
		}
	}

	return list
}

// placeListView lists the places of a category or an empty-state message
func (ui *RootUI) placeListView(state flow.PlaceListState) fyne.CanvasObject {
	if state.Empty() {
		empty := widget.NewLabelWithStyle(flow.TextEmptyList, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
		return container.NewCenter(empty)
	}

	places := state.Places
	thumb := ui.mobile.ThumbnailSize()

	list := widget.NewList(
		func() int {
			return len(places)
		},
		func() fyne.CanvasObject {
			return NewPlaceRow(ui.images, thumb)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(places) {
				return
			}
			if row, ok := obj.(*PlaceRow); ok {
				row.Update(places[id])
			}
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		list.UnselectAll()
		if id < len(places) {
			ui.router.SelectPlace(places[id].ID)
		}
	}

	return list
}

// detailView shows a single place, or the not-found message
func (ui *RootUI) detailView(state flow.PlaceDetailState) fyne.CanvasObject {
	if !state.Found {
		icon := widget.NewIcon(theme.QuestionIcon())
		label := widget.NewLabelWithStyle(flow.TextNotFound, fyne.TextAlignCenter, fyne.TextStyle{})
		return container.NewCenter(container.NewVBox(icon, label))
	}

	d := state.Detail

	title := widget.NewRichText(&widget.TextSegment{Text: d.Name, Style: widget.RichTextStyleHeading})
	title.Wrapping = fyne.TextWrapWord

	image := canvas.NewImageFromResource(ui.images.Load(d.ImageRef))
	image.FillMode = canvas.ImageFillContain
	image.SetMinSize(fyne.NewSize(0, ui.mobile.DetailImageHeight()))

	rating := widget.NewLabel(formatRating(d.Rating))

	description := widget.NewLabel(d.Description)
	description.Wrapping = fyne.TextWrapWord

	if ui.mobile.IsMobileDevice() && ui.mobile.IsLandscape() {
		text := container.NewVBox(title, rating, description)
		return container.NewPadded(container.NewGridWithColumns(2, image, container.NewVScroll(text)))
	}

	body := container.NewVBox(title, image, rating, description)
	return container.NewVScroll(container.NewPadded(body))
}
