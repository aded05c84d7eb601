package entity

// Movie is a catalog record. Values are built once by the loader and never mutated.
type Movie struct {
	ID          int64   `json:"id"`
	MovieName   string  `json:"movieName"`
	Director    string  `json:"director"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // minutes
	ImdbRating  float64 `json:"imdbRating"`
}
