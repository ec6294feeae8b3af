package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hanbit/shopfront-backend/config"
	"github.com/hanbit/shopfront-backend/internal/app/model"
	"github.com/hanbit/shopfront-backend/internal/app/repository"
	"github.com/hanbit/shopfront-backend/pkg/logger"
)

var (
	ErrShopNotFound = errors.New("shop not found")
	ErrSlugTaken    = errors.New("a shop with this slug already exists")
	ErrNameRequired = errors.New("shop name is required")
	ErrSlugRequired = errors.New("shop slug is required")
)

// ShopInput carries the fields accepted on shop creation. Zero-valued
// optional fields fall back to the model defaults.
type ShopInput struct {
	Name     string
	Slug     string
	Template string
	Config   *model.ShopConfig
	Products []model.Product
}

// ShopMutation carries a partial update. Set fields replace the existing
// value wholesale; a new Config drops every previous theme/seo value not
// present in it.
type ShopMutation struct {
	Name     *string
	Template *string
	Config   *model.ShopConfig
	Products *[]model.Product
}

// ShopListResult is the List response: every shop plus aggregate stats.
type ShopListResult struct {
	Shops []model.Shop
	Stats model.StoreStats
}

type ShopService interface {
	ListShops() (*ShopListResult, error)
	CreateShop(input ShopInput) (*model.Shop, string, error)
	UpdateShop(slug string, input ShopMutation) (*model.Shop, error)
	RecordVisit(slug string) (*model.Shop, error)
	ReconcileStats() (*model.StoreStats, error)
}

type shopService struct {
	// mu serializes every load-modify-save cycle so concurrent writers
	// cannot silently discard each other's changes.
	mu        sync.Mutex
	storeRepo repository.StoreRepository
	cfg       *config.Config
}

func NewShopService(storeRepo repository.StoreRepository, cfg *config.Config) ShopService {
	return &shopService{storeRepo: storeRepo, cfg: cfg}
}

func (s *shopService) ListShops() (*ShopListResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.Load()
	if err != nil {
		return nil, err
	}

	shops := make([]model.Shop, 0, len(store.Shops))
	for _, shop := range store.Shops {
		shops = append(shops, *shop)
	}

	return &ShopListResult{Shops: shops, Stats: store.Stats}, nil
}

func (s *shopService) CreateShop(input ShopInput) (*model.Shop, string, error) {
	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)
	if name == "" {
		return nil, "", ErrNameRequired
	}
	if slug == "" {
		return nil, "", ErrSlugRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.Load()
	if err != nil {
		return nil, "", err
	}

	if _, exists := store.Shops[slug]; exists {
		logger.Warn("Shop slug already taken", map[string]interface{}{
			"slug": slug,
		})
		return nil, "", ErrSlugTaken
	}

	now := time.Now().UTC()
	shop := &model.Shop{
		ID:       uuid.NewString(),
		Name:     name,
		Slug:     slug,
		Template: input.Template,
		Products: input.Products,
		Stats: model.ShopStats{
			Views:     0,
			CreatedAt: now,
			LastVisit: nil,
		},
	}
	if input.Config != nil {
		shop.Config = *input.Config
	}
	if shop.Products == nil {
		shop.Products = []model.Product{}
	}
	shop.ApplyDefaults()

	store.Shops[slug] = shop
	store.Stats.TotalShops++
	store.Stats.LastUpdate = now

	if err := s.storeRepo.Save(store); err != nil {
		return nil, "", err
	}

	url := s.cfg.ShopURL(slug)
	logger.Info("Shop created", map[string]interface{}{
		"shop_id": shop.ID,
		"slug":    slug,
		"url":     url,
	})
	return shop, url, nil
}

func (s *shopService) UpdateShop(slug string, input ShopMutation) (*model.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.Load()
	if err != nil {
		return nil, err
	}

	shop, exists := store.Shops[slug]
	if !exists {
		logger.Warn("Shop not found for update", map[string]interface{}{
			"slug": slug,
		})
		return nil, ErrShopNotFound
	}

	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Template != nil {
		shop.Template = *input.Template
	}
	if input.Config != nil {
		shop.Config = *input.Config
	}
	if input.Products != nil {
		shop.Products = *input.Products
		if shop.Products == nil {
			shop.Products = []model.Product{}
		}
	}
	store.Stats.LastUpdate = time.Now().UTC()

	if err := s.storeRepo.Save(store); err != nil {
		return nil, err
	}

	logger.Info("Shop updated", map[string]interface{}{
		"slug": slug,
	})
	return shop, nil
}

// RecordVisit increments the shop and store view counters. Called exactly
// once per successfully served storefront page, never from the API routes.
func (s *shopService) RecordVisit(slug string) (*model.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.Load()
	if err != nil {
		return nil, err
	}

	shop, exists := store.Shops[slug]
	if !exists {
		return nil, ErrShopNotFound
	}

	now := time.Now().UTC()
	shop.Stats.Views++
	shop.Stats.LastVisit = &now
	store.Stats.TotalViews++
	store.Stats.LastUpdate = now

	if err := s.storeRepo.Save(store); err != nil {
		return nil, err
	}

	logger.Debug("Visit recorded", map[string]interface{}{
		"slug":  slug,
		"views": shop.Stats.Views,
	})
	return shop, nil
}

// ReconcileStats recomputes the aggregate counters from the shops map and
// persists the result. Recovery path for drift after out-of-band edits.
func (s *shopService) ReconcileStats() (*model.StoreStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.Load()
	if err != nil {
		return nil, err
	}

	before := store.Stats
	store.Reconcile()

	if before.TotalShops != store.Stats.TotalShops || before.TotalViews != store.Stats.TotalViews {
		logger.Warn("Aggregate counters drifted, reconciled", map[string]interface{}{
			"total_shops_before": before.TotalShops,
			"total_shops_after":  store.Stats.TotalShops,
			"total_views_before": before.TotalViews,
			"total_views_after":  store.Stats.TotalViews,
		})
	}

	if err := s.storeRepo.Save(store); err != nil {
		return nil, err
	}

	stats := store.Stats
	return &stats, nil
}
