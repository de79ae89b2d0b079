package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/ytget/places-guide/internal/flow"
	"github.com/ytget/places-guide/internal/model"
)

// Help lines
const (
	TextHelpList   = "Введите номер, b — назад, q — выход"
	TextHelpDetail = "b — назад, q — выход"
)

// WriteRender prints a snapshot of the current screen to w
func WriteRender(w io.Writer, render flow.Render) error {
	var b strings.Builder

	switch render.Screen.Kind {
	case model.ScreenCategoryList:
		writeCategories(&b, render.Categories)
	case model.ScreenPlaceList:
		writePlaceList(&b, render.PlaceList)
	case model.ScreenPlaceDetail:
		writeDetail(&b, render.Detail)
	default:
		fmt.Fprintf(&b, "unknown screen %s\n", render.Screen)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCategories(b *strings.Builder, state flow.CategoryState) {
	fmt.Fprintf(b, "== %s ==\n", flow.TitleCategories)
	for i, c := range state.Categories {
		fmt.Fprintf(b, "%d. %s\n", i+1, c)
	}
	b.WriteString(TextHelpList + "\n")
}

func writePlaceList(b *strings.Builder, state flow.PlaceListState) {
	fmt.Fprintf(b, "== %s ==\n", state.Category)
	if state.Empty() {
		b.WriteString(flow.TextEmptyList + "\n")
	}
	for i, p := range state.Places {
		fmt.Fprintf(b, "%d. %s · %s\n", i+1, p.Name, flow.RatingText(p.Rating))
	}
	b.WriteString(TextHelpList + "\n")
}

func writeDetail(b *strings.Builder, state flow.PlaceDetailState) {
	if !state.Found {
		b.WriteString(flow.TextNotFound + "\n")
		b.WriteString(TextHelpDetail + "\n")
		return
	}

	d := state.Detail
	fmt.Fprintf(b, "== %s ==\n", d.Name)
	b.WriteString(flow.RatingText(d.Rating) + "\n")
	fmt.Fprintf(b, "[%s]\n", d.ImageRef)
	b.WriteString(d.Description + "\n")
	b.WriteString(TextHelpDetail + "\n")
}
