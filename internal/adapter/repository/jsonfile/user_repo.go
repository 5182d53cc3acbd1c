// Package jsonfile provides repositories backed by the flat-JSON
// collections in internal/store/jsonfile. The on-disk layout is
// users.json = {"users":[...]} and items.json = {"items":[...]}.
package jsonfile

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"shop-service/internal/domain/item"
	"shop-service/internal/domain/user"
	store "shop-service/internal/store/jsonfile"
	pkgerrors "shop-service/pkg/errors"
)

type usersDoc struct {
	Users []user.User `json:"users"`
}

// UserRepository persists users (and their embedded carts) in
// users.json.
type UserRepository struct {
	col *store.Collection[usersDoc]
	log *zap.Logger
}

// NewUserRepository opens (or creates) users.json under dataDir.
func NewUserRepository(dataDir string, log *zap.Logger) (*UserRepository, error) {
	col, err := store.Open[usersDoc](filepath.Join(dataDir, "users.json"))
	if err != nil {
		return nil, err
	}
	return &UserRepository{col: col, log: log}, nil
}

// Create inserts a new user. The duplicate-email check and the insert
// happen under one collection update, so two concurrent signups with
// the same email cannot both succeed.
func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	return r.col.Update(func(doc *usersDoc) error {
		for i := range doc.Users {
			if strings.EqualFold(doc.Users[i].Email, u.Email) {
				return pkgerrors.NewAlreadyExistsError("user", "Email already registered")
			}
		}
		doc.Users = append(doc.Users, *u)
		return nil
	})
}

// GetByEmail returns the user with the given email (case-insensitive),
// or nil if no such user exists.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	var found *user.User
	err := r.col.View(func(doc *usersDoc) error {
		for i := range doc.Users {
			if strings.EqualFold(doc.Users[i].Email, email) {
				u := doc.Users[i]
				found = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// GetByID returns the user with the given id, or nil if no such user
// exists.
func (r *UserRepository) GetByID(_ context.Context, id string) (*user.User, error) {
	var found *user.User
	err := r.col.View(func(doc *usersDoc) error {
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				u := doc.Users[i]
				found = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// AddCartLine adds qty of the given item snapshot to the user's cart.
// An existing line for the same item id has its quantity incremented;
// otherwise a new line is appended. Returns the resulting cart.
func (r *UserRepository) AddCartLine(_ context.Context, userID string, snapshot item.Item, qty int) ([]user.CartLine, error) {
	var cart []user.CartLine
	err := r.col.Update(func(doc *usersDoc) error {
		u := findByID(doc, userID)
		if u == nil {
			return pkgerrors.NewNotFoundError("user", "User not found")
		}
		merged := false
		for i := range u.Cart {
			if u.Cart[i].Item.ID == snapshot.ID {
				u.Cart[i].Qty += qty
				merged = true
				break
			}
		}
		if !merged {
			u.Cart = append(u.Cart, user.CartLine{Item: snapshot, Qty: qty})
		}
		cart = cloneCart(u.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveCartLine drops any line matching itemID from the user's cart.
// Removing an absent item is a no-op; the unchanged cart is returned.
func (r *UserRepository) RemoveCartLine(_ context.Context, userID, itemID string) ([]user.CartLine, error) {
	var cart []user.CartLine
	err := r.col.Update(func(doc *usersDoc) error {
		u := findByID(doc, userID)
		if u == nil {
			return pkgerrors.NewNotFoundError("user", "User not found")
		}
		kept := u.Cart[:0]
		for _, line := range u.Cart {
			if line.Item.ID != itemID {
				kept = append(kept, line)
			}
		}
		u.Cart = kept
		cart = cloneCart(u.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func findByID(doc *usersDoc, id string) *user.User {
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			return &doc.Users[i]
		}
	}
	return nil
}

func cloneCart(cart []user.CartLine) []user.CartLine {
	out := make([]user.CartLine, len(cart))
	copy(out, cart)
	return out
}
