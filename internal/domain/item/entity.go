package item

// Item represents a catalog item. Price is expected to be non-negative
// but is not validated beyond numeric coercion.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}
