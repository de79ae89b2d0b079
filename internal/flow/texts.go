package flow

import "fmt"

// Screen texts shared by every renderer
const (
	TitleCategories = "Категории"
	RatingFormat    = "Рейтинг: %.1f"
	TextNotFound    = "Место не найдено"
	TextEmptyList   = "В этой категории пока нет мест"
)

// RatingText formats a rating the way every screen shows it
func RatingText(rating float32) string {
	return fmt.Sprintf(RatingFormat, rating)
}
