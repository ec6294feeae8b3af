package service

import (
	"path/filepath"
	"testing"

	"github.com/hanbit/shopfront-backend/config"
	"github.com/hanbit/shopfront-backend/internal/app/model"
	"github.com/hanbit/shopfront-backend/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        "3012",
			Environment: "development",
		},
		Platform: config.PlatformConfig{
			Domain: "shopfront.dev",
		},
	}
}

func setupShopServiceTest(t *testing.T) (ShopService, repository.StoreRepository) {
	storeRepo := repository.NewFileStoreRepository(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, storeRepo.Init())
	return NewShopService(storeRepo, testConfig()), storeRepo
}

func TestShopService_CreateShop(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	shop, url, err := shopService.CreateShop(ShopInput{Name: "Nike", Slug: "nike"})
	require.NoError(t, err)

	assert.NotEmpty(t, shop.ID)
	assert.Equal(t, "Nike", shop.Name)
	assert.Equal(t, "nike", shop.Slug)
	assert.Equal(t, model.DefaultTemplate, shop.Template)
	assert.Equal(t, model.DefaultPrimaryColor, shop.Config.Theme.PrimaryColor)
	assert.Equal(t, "Nike - Online Store", shop.Config.SEO.Title)
	assert.Equal(t, 0, shop.Stats.Views)
	assert.False(t, shop.Stats.CreatedAt.IsZero())
	assert.Nil(t, shop.Stats.LastVisit)
	assert.Equal(t, "http://nike.localhost:3012", url)

	result, err := shopService.ListShops()
	require.NoError(t, err)
	require.Len(t, result.Shops, 1)
	assert.Equal(t, "nike", result.Shops[0].Slug)
	assert.Equal(t, 1, result.Stats.TotalShops)
	assert.Equal(t, 0, result.Stats.TotalViews)
}

func TestShopService_CreateShop_ProductionURL(t *testing.T) {
	storeRepo := repository.NewFileStoreRepository(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, storeRepo.Init())

	cfg := testConfig()
	cfg.Server.Environment = "production"
	shopService := NewShopService(storeRepo, cfg)

	_, url, err := shopService.CreateShop(ShopInput{Name: "Nike", Slug: "nike"})
	require.NoError(t, err)
	assert.Equal(t, "https://nike.shopfront.dev", url)
}

func TestShopService_CreateShop_Validation(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	tests := []struct {
		name    string
		input   ShopInput
		wantErr error
	}{
		{
			name:    "Missing name",
			input:   ShopInput{Slug: "nike"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "Blank name",
			input:   ShopInput{Name: "   ", Slug: "nike"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "Missing slug",
			input:   ShopInput{Name: "Nike"},
			wantErr: ErrSlugRequired,
		},
		{
			name:    "Blank slug",
			input:   ShopInput{Name: "Nike", Slug: " "},
			wantErr: ErrSlugRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shop, _, err := shopService.CreateShop(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, shop)
		})
	}

	// Failed creates must leave the store unchanged
	result, err := shopService.ListShops()
	require.NoError(t, err)
	assert.Empty(t, result.Shops)
	assert.Equal(t, 0, result.Stats.TotalShops)
}

func TestShopService_CreateShop_DuplicateSlug(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	_, _, err := shopService.CreateShop(ShopInput{Name: "Nike", Slug: "nike"})
	require.NoError(t, err)

	shop, _, err := shopService.CreateShop(ShopInput{Name: "Fake Nike", Slug: "nike"})
	assert.ErrorIs(t, err, ErrSlugTaken)
	assert.Nil(t, shop)

	// Conflict must leave the store unchanged
	result, err := shopService.ListShops()
	require.NoError(t, err)
	require.Len(t, result.Shops, 1)
	assert.Equal(t, "Nike", result.Shops[0].Name)
	assert.Equal(t, 1, result.Stats.TotalShops)
}

func TestShopService_CreateShop_KeepsProvidedConfig(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	shop, _, err := shopService.CreateShop(ShopInput{
		Name: "Coffee Corner",
		Slug: "coffee",
		Config: &model.ShopConfig{
			Theme: model.Theme{PrimaryColor: "#111111"},
			SEO:   model.SEO{Title: "Best coffee in town"},
		},
		Products: []model.Product{{Name: "Espresso", Price: 2.5}},
	})
	require.NoError(t, err)

	assert.Equal(t, "#111111", shop.Config.Theme.PrimaryColor)
	// Unset fields still get defaults
	assert.Equal(t, model.DefaultSecondaryColor, shop.Config.Theme.SecondaryColor)
	assert.Equal(t, "Best coffee in town", shop.Config.SEO.Title)
	assert.Equal(t, "Welcome to Coffee Corner", shop.Config.SEO.Description)
	require.Len(t, shop.Products, 1)
	assert.Equal(t, "Espresso", shop.Products[0].Name)
}

func TestShopService_UpdateShop(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	_, _, err := shopService.CreateShop(ShopInput{Name: "Nike", Slug: "nike"})
	require.NoError(t, err)

	newName := "Nike Official"
	shop, err := shopService.UpdateShop("nike", ShopMutation{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Nike Official", shop.Name)
	// Untouched fields survive
	assert.Equal(t, model.DefaultTemplate, shop.Template)
	assert.Equal(t, model.DefaultPrimaryColor, shop.Config.Theme.PrimaryColor)
}

func TestShopService_UpdateShop_ConfigReplacedWholesale(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	_, _, err := shopService.CreateShop(ShopInput{
		Name: "Nike",
		Slug: "nike",
		Config: &model.ShopConfig{
			Theme: model.Theme{PrimaryColor: "#111111", SecondaryColor: "#222222"},
			SEO:   model.SEO{Title: "Old title", Keywords: "old, keywords"},
		},
	})
	require.NoError(t, err)

	shop, err := shopService.UpdateShop("nike", ShopMutation{
		Config: &model.ShopConfig{
			Theme: model.Theme{PrimaryColor: "#333333"},
		},
	})
	require.NoError(t, err)

	// The whole previous config is gone, not merged field-by-field
	assert.Equal(t, "#333333", shop.Config.Theme.PrimaryColor)
	assert.Empty(t, shop.Config.Theme.SecondaryColor)
	assert.Empty(t, shop.Config.SEO.Title)
	assert.Empty(t, shop.Config.SEO.Keywords)
}

func TestShopService_UpdateShop_NotFound(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	name := "Ghost"
	shop, err := shopService.UpdateShop("ghost", ShopMutation{Name: &name})
	assert.ErrorIs(t, err, ErrShopNotFound)
	assert.Nil(t, shop)
}

func TestShopService_RecordVisit(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	created, _, err := shopService.CreateShop(ShopInput{Name: "Nike", Slug: "nike"})
	require.NoError(t, err)

	shop, err := shopService.RecordVisit("nike")
	require.NoError(t, err)

	assert.Equal(t, 1, shop.Stats.Views)
	require.NotNil(t, shop.Stats.LastVisit)
	assert.False(t, shop.Stats.LastVisit.Before(created.Stats.CreatedAt))

	result, err := shopService.ListShops()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.TotalViews)
}

func TestShopService_RecordVisit_UnknownSlug(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	_, _, err := shopService.CreateShop(ShopInput{Name: "Nike", Slug: "nike"})
	require.NoError(t, err)

	shop, err := shopService.RecordVisit("adidas")
	assert.ErrorIs(t, err, ErrShopNotFound)
	assert.Nil(t, shop)

	// Counters stay untouched
	result, err := shopService.ListShops()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.TotalViews)
	assert.Equal(t, 0, result.Shops[0].Stats.Views)
}

func TestShopService_ReconcileStats(t *testing.T) {
	shopService, storeRepo := setupShopServiceTest(t)

	_, _, err := shopService.CreateShop(ShopInput{Name: "Nike", Slug: "nike"})
	require.NoError(t, err)
	_, err = shopService.RecordVisit("nike")
	require.NoError(t, err)

	// Simulate drift from an out-of-band edit
	store, err := storeRepo.Load()
	require.NoError(t, err)
	store.Stats.TotalShops = 42
	store.Stats.TotalViews = 0
	require.NoError(t, storeRepo.Save(store))

	stats, err := shopService.ReconcileStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalShops)
	assert.Equal(t, 1, stats.TotalViews)
}
