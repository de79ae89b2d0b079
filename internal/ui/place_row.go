package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/places-guide/internal/flow"
)

// PlaceRow shows a place summary: thumbnail, bold name and rating
type PlaceRow struct {
	widget.BaseWidget

	images *ImageLoader

	image       *canvas.Image
	nameLabel   *widget.Label
	ratingLabel *widget.Label
}

// NewPlaceRow creates an empty row; call Update to fill it
func NewPlaceRow(images *ImageLoader, thumbSize float32) *PlaceRow {
	pr := &PlaceRow{images: images}

	pr.image = canvas.NewImageFromResource(nil)
	pr.image.FillMode = canvas.ImageFillContain
	pr.image.SetMinSize(fyne.NewSize(thumbSize, thumbSize))

	pr.nameLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	pr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	pr.ratingLabel = widget.NewLabel("")

	pr.ExtendBaseWidget(pr)
	return pr
}

// Update shows summary in the row
func (pr *PlaceRow) Update(summary flow.PlaceSummary) {
	pr.nameLabel.SetText(summary.Name)
	pr.ratingLabel.SetText(formatRating(summary.Rating))
	pr.image.Resource = pr.images.Load(summary.ImageRef)
	pr.image.Refresh()
}

// CreateRenderer implements fyne.Widget
func (pr *PlaceRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(pr.nameLabel, pr.ratingLabel)
	return widget.NewSimpleRenderer(
		container.NewPadded(container.NewBorder(nil, nil, pr.image, nil, text)),
	)
}

func formatRating(rating float32) string {
	return IconStar + " " + flow.RatingText(rating)
}
