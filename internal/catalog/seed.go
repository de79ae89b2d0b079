package catalog

import "github.com/ytget/places-guide/internal/model"

// Category names of the built-in Lisbon guide
const (
	CategorySights      = "Достопримечательности"
	CategoryParks       = "Парки"
	CategoryRestaurants = "Рестораны"
)

// Image references understood by the renderers
const (
	ImageTower   = "tower"
	ImageEduardo = "eduardo_park"
	ImageRamiro  = "ramiro_restaurants"
)

// SeedCategories returns the enumerated categories in display order
func SeedCategories() []string {
	return []string{CategorySights, CategoryParks, CategoryRestaurants}
}

// SeedPlaces returns the built-in places
func SeedPlaces() []model.Place {
	return []model.Place{
		{
			ID:       1,
			Name:     "Башня Белен",
			Category: CategorySights,
			Description: "Башня Торре-де-Белен — укреплённое сооружение на острове в реке Тежу в одноимённом районе Лиссабона. " +
				"Построена в 1515—1521 годах Франсишку де Аррудой в честь открытия Васко да Гама морского пути в Индию " +
				"и служила поочерёдно небольшой оборонительной крепостью, пороховым складом, тюрьмой и таможней.",
			ImageRef: ImageTower,
			Rating:   4.8,
		},
		{
			ID:       2,
			Name:     "Парк Эдуарда VII",
			Category: CategoryParks,
			Description: "Парк Эдуарда VII - общественный парк в Лиссабоне, Португалия. Парк занимает площадь в 26 гектаров " +
				"(64 акра) к северу от Авениды да Либердаде и площади Маркиза Помбала в центре Лиссабона. Парк назван " +
				"в честь короля Великобритании Эдуарда VII, который посетил Португалию в 1903 году, чтобы укрепить " +
				"отношения между двумя странами и подтвердить англо-португальский союз. Лиссабонская книжная ярмарка " +
				"ежегодно проводится в парке Эдуарду VII.",
			ImageRef: ImageEduardo,
			Rating:   4.5,
		},
		{
			ID:       3,
			Name:     "Ресторан Ramiro",
			Category: CategoryRestaurants,
			Description: "Прекрасное место, чтобы отведать вкуснейшие и свежайшие морепродукты. Очень популярное место, " +
				"время ожидания на входе может занять до часа",
			ImageRef: ImageRamiro,
			Rating:   4.7,
		},
	}
}
