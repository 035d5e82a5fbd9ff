package get_available_stylists

// Request модель запроса свободных мастеров
type Request struct {
	Date string // YYYY-MM-DD
	Time string // время из рабочей сетки, "10:00"
}

// Response свободные мастера в порядке списка салона
type Response struct {
	Stylists []string
}
