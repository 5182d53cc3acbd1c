package user

import "shop-service/internal/domain/item"

// CartLine is one entry in a user's cart: a copy of the item frozen at
// add time plus a quantity. It is a snapshot, not a reference; if the
// catalog item changes later the line goes stale.
type CartLine struct {
	Item item.Item `json:"item"`
	Qty  int       `json:"qty"`
}

// User represents an account. The cart is embedded in the user record
// and persisted with it. Users are never deleted.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"` // unique, case-insensitive
	PasswordHash string     `json:"passwordHash"`
	Cart         []CartLine `json:"cart"`
}

// Public returns the fields safe to expose over the API.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// PublicUser is the externally visible projection of a user.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
