package model

type Game struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Year  int     `json:"year"`
	Price float64 `json:"price"`
}
