package jsonfile

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"shop-service/internal/domain/item"
	store "shop-service/internal/store/jsonfile"
	pkgerrors "shop-service/pkg/errors"
)

type itemsDoc struct {
	Items []item.Item `json:"items"`
}

// ItemRepository persists catalog items in items.json.
type ItemRepository struct {
	col *store.Collection[itemsDoc]
	log *zap.Logger
}

// NewItemRepository opens (or creates) items.json under dataDir.
func NewItemRepository(dataDir string, log *zap.Logger) (*ItemRepository, error) {
	col, err := store.Open[itemsDoc](filepath.Join(dataDir, "items.json"))
	if err != nil {
		return nil, err
	}
	return &ItemRepository{col: col, log: log}, nil
}

// List returns all items in insertion order.
func (r *ItemRepository) List(_ context.Context) ([]item.Item, error) {
	var items []item.Item
	err := r.col.View(func(doc *itemsDoc) error {
		items = make([]item.Item, len(doc.Items))
		copy(items, doc.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns the item with the given id, or nil if no such item
// exists.
func (r *ItemRepository) GetByID(_ context.Context, id string) (*item.Item, error) {
	var found *item.Item
	err := r.col.View(func(doc *itemsDoc) error {
		for i := range doc.Items {
			if doc.Items[i].ID == id {
				it := doc.Items[i]
				found = &it
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

// Create appends a new item to the collection.
func (r *ItemRepository) Create(_ context.Context, it *item.Item) error {
	return r.col.Update(func(doc *itemsDoc) error {
		doc.Items = append(doc.Items, *it)
		return nil
	})
}

// Update applies the given mutation to the item with the given id and
// persists the result. The mutation runs inside the collection update,
// so the merge is atomic with the rewrite.
func (r *ItemRepository) Update(_ context.Context, id string, apply func(*item.Item)) (*item.Item, error) {
	var updated *item.Item
	err := r.col.Update(func(doc *itemsDoc) error {
		for i := range doc.Items {
			if doc.Items[i].ID == id {
				apply(&doc.Items[i])
				doc.Items[i].ID = id // identifier is immutable
				it := doc.Items[i]
				updated = &it
				return nil
			}
		}
		return pkgerrors.NewNotFoundError("item", "Item not found")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the item with the given id and returns the deleted
// record.
func (r *ItemRepository) Delete(_ context.Context, id string) (*item.Item, error) {
	var removed *item.Item
	err := r.col.Update(func(doc *itemsDoc) error {
		for i := range doc.Items {
			if doc.Items[i].ID == id {
				it := doc.Items[i]
				removed = &it
				doc.Items = append(doc.Items[:i], doc.Items[i+1:]...)
				return nil
			}
		}
		return pkgerrors.NewNotFoundError("item", "Item not found")
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
