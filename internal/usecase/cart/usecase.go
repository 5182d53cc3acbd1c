package cart

import (
	"context"

	"go.uber.org/zap"

	"shop-service/internal/domain/item"
	"shop-service/internal/domain/user"
	pkgerrors "shop-service/pkg/errors"
)

// UserRepository defines the cart mutations on the users collection.
// Each mutation is atomic with its persist.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	AddCartLine(ctx context.Context, userID string, snapshot item.Item, qty int) ([]user.CartLine, error)
	RemoveCartLine(ctx context.Context, userID, itemID string) ([]user.CartLine, error)
}

// ItemRepository is the catalog lookup needed to snapshot an item at
// add time.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
}

// Usecase implements the per-user cart operations. Cart lines hold an
// item copy frozen at add time; later catalog changes do not propagate
// into existing lines.
type Usecase struct {
	users UserRepository
	items ItemRepository
	log   *zap.Logger
}

// New creates a new cart usecase.
func New(users UserRepository, items ItemRepository, log *zap.Logger) *Usecase {
	return &Usecase{users: users, items: items, log: log}
}

// Get returns the caller's cart as stored.
func (uc *Usecase) Get(ctx context.Context, userID string) ([]user.CartLine, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		uc.log.Error("failed to load user", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	if u == nil {
		// A valid token can outlive its user; surface that as not found.
		return nil, pkgerrors.NewNotFoundError("user", "User not found")
	}
	if u.Cart == nil {
		return []user.CartLine{}, nil
	}
	return u.Cart, nil
}

// Add puts qty of the item into the caller's cart. Quantities below 1
// are clamped to 1. The item is looked up at add time and copied into
// the cart line.
func (uc *Usecase) Add(ctx context.Context, userID, itemID string, qty int) ([]user.CartLine, error) {
	if qty < 1 {
		qty = 1
	}

	it, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		uc.log.Error("failed to look up item", zap.String("item_id", itemID), zap.Error(err))
		return nil, err
	}
	if it == nil {
		return nil, pkgerrors.NewNotFoundError("item", "Item not found")
	}

	cart, err := uc.users.AddCartLine(ctx, userID, *it, qty)
	if err != nil {
		uc.log.Warn("failed to add cart line", zap.String("user_id", userID), zap.String("item_id", itemID), zap.Error(err))
		return nil, err
	}

	uc.log.Info("cart line added", zap.String("user_id", userID), zap.String("item_id", itemID), zap.Int("qty", qty))
	return cart, nil
}

// Remove drops any cart line for the item. Removing an item that is not
// in the cart is a no-op.
func (uc *Usecase) Remove(ctx context.Context, userID, itemID string) ([]user.CartLine, error) {
	cart, err := uc.users.RemoveCartLine(ctx, userID, itemID)
	if err != nil {
		uc.log.Warn("failed to remove cart line", zap.String("user_id", userID), zap.String("item_id", itemID), zap.Error(err))
		return nil, err
	}

	uc.log.Info("cart line removed", zap.String("user_id", userID), zap.String("item_id", itemID))
	return cart, nil
}
