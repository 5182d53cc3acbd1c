package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"shop-service/internal/adapter/gin/handler"
	repo "shop-service/internal/adapter/repository/jsonfile"
	"shop-service/internal/config"
	"shop-service/internal/usecase/auth"
	"shop-service/internal/usecase/cart"
	"shop-service/internal/usecase/catalog"
	"shop-service/pkg/token"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Users       *repo.UserRepository
	Items       *repo.ItemRepository
	Tokens      *token.Manager
	AuthUC      *auth.Usecase
	CatalogUC   *catalog.Usecase
	CartUC      *cart.Usecase
	AuthHandler *handler.AuthHandler
	ItemHandler *handler.ItemHandler
	CartHandler *handler.CartHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, environment string, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(environment); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// File-backed store: load-or-create both collections up front
	users, err := repo.NewUserRepository(cfg.Store.DataDir, l)
	if err != nil {
		return nil, fmt.Errorf("failed to open users collection: %w", err)
	}
	items, err := repo.NewItemRepository(cfg.Store.DataDir, l)
	if err != nil {
		return nil, fmt.Errorf("failed to open items collection: %w", err)
	}

	tokens := token.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	authUC := auth.New(users, tokens, l)
	catalogUC := catalog.New(items, l)
	cartUC := cart.New(users, items, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		Users:       users,
		Items:       items,
		Tokens:      tokens,
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		CartUC:      cartUC,
		AuthHandler: handler.NewAuthHandler(authUC, l),
		ItemHandler: handler.NewItemHandler(catalogUC, l),
		CartHandler: handler.NewCartHandler(cartUC, l),
	}, nil
}
