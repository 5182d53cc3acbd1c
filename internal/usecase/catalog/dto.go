package catalog

// CreateRequest carries the fields for a new item. Price is a pointer
// so an explicit zero price passes the required check.
type CreateRequest struct {
	Title       string   `validate:"required"`
	Price       *float64 `validate:"required"`
	Category    string   `validate:"required"`
	Image       string
	Description string
}

// UpdateRequest carries a partial item: nil fields are left unchanged.
type UpdateRequest struct {
	Title       *string
	Price       *float64
	Category    *string
	Image       *string
	Description *string
}
