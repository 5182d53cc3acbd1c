package jsonfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"shop-service/internal/domain/item"
	"shop-service/internal/domain/user"
	pkgerrors "shop-service/pkg/errors"
)

func newUser(id, email string) *user.User {
	return &user.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$fakehash",
		Cart:         []user.CartLine{},
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewUserRepository(dir, zaptest.NewLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("u1", "john@example.com")))

	got, err := repo.GetByEmail(ctx, "JOHN@EXAMPLE.COM")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)

	got, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	// The write survives a reopen: persistence is immediate and full.
	reopened, err := NewUserRepository(dir, zaptest.NewLogger(t))
	require.NoError(t, err)
	got, err = reopened.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestUserRepository_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo, err := NewUserRepository(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("u1", "john@example.com")))

	err = repo.Create(ctx, newUser("u2", "John@Example.COM"))
	var cerr *pkgerrors.AlreadyExistsError
	assert.ErrorAs(t, err, &cerr)

	// The rejected user was not persisted
	got, lookupErr := repo.GetByID(ctx, "u2")
	require.NoError(t, lookupErr)
	assert.Nil(t, got)
}

func TestUserRepository_AddCartLine(t *testing.T) {
	repo, err := NewUserRepository(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("u1", "john@example.com")))
	pen := item.Item{ID: "i1", Title: "Pen", Price: 1.5, Category: "office"}

	cart, err := repo.AddCartLine(ctx, "u1", pen, 2)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Qty)

	// Adding the same item again increments the existing line
	cart, err = repo.AddCartLine(ctx, "u1", pen, 3)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Qty)

	// A different item gets its own line, appended in order
	mug := item.Item{ID: "i2", Title: "Mug", Price: 8}
	cart, err = repo.AddCartLine(ctx, "u1", mug, 1)
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, "i1", cart[0].Item.ID)
	assert.Equal(t, "i2", cart[1].Item.ID)
}

func TestUserRepository_CartLineIsASnapshot(t *testing.T) {
	repo, err := NewUserRepository(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("u1", "john@example.com")))

	pen := item.Item{ID: "i1", Title: "Pen", Price: 1.5}
	_, err = repo.AddCartLine(ctx, "u1", pen, 1)
	require.NoError(t, err)

	// Mutating the caller's copy afterwards must not reach the cart
	pen.Price = 99

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, u.Cart, 1)
	assert.Equal(t, 1.5, u.Cart[0].Item.Price)
}

func TestUserRepository_AddCartLine_UserNotFound(t *testing.T) {
	repo, err := NewUserRepository(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = repo.AddCartLine(context.Background(), "ghost", item.Item{ID: "i1"}, 1)

	var nerr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &nerr)
}

func TestUserRepository_RemoveCartLine(t *testing.T) {
	repo, err := NewUserRepository(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("u1", "john@example.com")))
	_, err = repo.AddCartLine(ctx, "u1", item.Item{ID: "i1"}, 1)
	require.NoError(t, err)
	_, err = repo.AddCartLine(ctx, "u1", item.Item{ID: "i2"}, 1)
	require.NoError(t, err)

	cart, err := repo.RemoveCartLine(ctx, "u1", "i1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "i2", cart[0].Item.ID)

	// Removing an absent item is a no-op returning the unchanged cart
	cart, err = repo.RemoveCartLine(ctx, "u1", "i1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "i2", cart[0].Item.ID)
}
