package catalog

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shop-service/internal/domain/item"
	pkgerrors "shop-service/pkg/errors"
)

// Repository defines the item data access operations. Filtering is done
// here in the usecase; the store only hands back whole collections.
type Repository interface {
	List(ctx context.Context) ([]item.Item, error)
	GetByID(ctx context.Context, id string) (*item.Item, error)
	Create(ctx context.Context, it *item.Item) error
	Update(ctx context.Context, id string, apply func(*item.Item)) (*item.Item, error)
	Delete(ctx context.Context, id string) (*item.Item, error)
}

// Usecase implements the item catalog operations.
type Usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new catalog usecase.
func New(r Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: log, validate: validator.New()}
}

// Filter holds the optional, conjunctive list filters. Nil price bounds
// mean no bound.
type Filter struct {
	Query    string // substring match against title OR description
	Category string // exact match, case-insensitive
	MinPrice *float64
	MaxPrice *float64
}

func (f Filter) matches(it *item.Item) bool {
	if f.Query != "" {
		needle := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(it.Title), needle) &&
			!strings.Contains(strings.ToLower(it.Description), needle) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(it.Category, f.Category) {
		return false
	}
	if f.MinPrice != nil && it.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && it.Price > *f.MaxPrice {
		return false
	}
	return true
}

// List returns the items matching all given filters.
func (uc *Usecase) List(ctx context.Context, f Filter) ([]item.Item, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list items", zap.Error(err))
		return nil, err
	}

	items := make([]item.Item, 0, len(all))
	for i := range all {
		if f.matches(&all[i]) {
			items = append(items, all[i])
		}
	}
	return items, nil
}

// Create adds a new item to the catalog and returns it with its
// assigned id.
func (uc *Usecase) Create(ctx context.Context, in CreateRequest) (*item.Item, error) {
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("create item validation failed", zap.Error(err))
		return nil, pkgerrors.NewValidationError("", "title, price, category are required")
	}

	it := &item.Item{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Price:       *in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Description: in.Description,
	}
	if err := uc.repo.Create(ctx, it); err != nil {
		uc.log.Error("failed to create item", zap.Error(err))
		return nil, err
	}

	uc.log.Info("item created", zap.String("id", it.ID), zap.String("title", it.Title))
	return it, nil
}

// Update merges the provided fields over the existing record. The id is
// immutable. Fails with not-found if the id is unknown.
func (uc *Usecase) Update(ctx context.Context, id string, in UpdateRequest) (*item.Item, error) {
	updated, err := uc.repo.Update(ctx, id, func(it *item.Item) {
		if in.Title != nil {
			it.Title = *in.Title
		}
		if in.Price != nil {
			it.Price = *in.Price
		}
		if in.Category != nil {
			it.Category = *in.Category
		}
		if in.Image != nil {
			it.Image = *in.Image
		}
		if in.Description != nil {
			it.Description = *in.Description
		}
	})
	if err != nil {
		uc.log.Warn("failed to update item", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	uc.log.Info("item updated", zap.String("id", id))
	return updated, nil
}

// Delete removes an item and returns the deleted record. Existing cart
// snapshots of the item are left untouched.
func (uc *Usecase) Delete(ctx context.Context, id string) (*item.Item, error) {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Warn("failed to delete item", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	uc.log.Info("item deleted", zap.String("id", id))
	return removed, nil
}
