package render

import (
	"strings"
	"testing"

	"github.com/hanbit/shopfront-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer() *Renderer {
	return NewRenderer(Options{
		MainSiteURL: "http://localhost:3012",
		ShopURL: func(slug string) string {
			return "http://" + slug + ".localhost:3012"
		},
	})
}

func testShop() *model.Shop {
	shop := &model.Shop{
		ID:   "shop-1",
		Name: "Nike",
		Slug: "nike",
	}
	shop.ApplyDefaults()
	return shop
}

func TestRenderer_LandingPage(t *testing.T) {
	html, err := testRenderer().LandingPage()
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "http://demo.localhost:3012")
	assert.Contains(t, html, "http://nike.localhost:3012")
}

func TestRenderer_NotFoundPage(t *testing.T) {
	html, err := testRenderer().NotFoundPage("ghost")
	require.NoError(t, err)

	assert.Contains(t, html, "ghost")
	assert.Contains(t, html, `href="http://localhost:3012"`)
}

func TestRenderer_NotFoundPage_EscapesTenant(t *testing.T) {
	html, err := testRenderer().NotFoundPage(`<img src=x onerror=alert(1)>`)
	require.NoError(t, err)

	assert.NotContains(t, html, "<img src=x")
	assert.Contains(t, html, "&lt;img")
}

func TestRenderer_StorefrontPage(t *testing.T) {
	shop := testShop()
	shop.Products = []model.Product{
		{Name: "Air Max", Description: "Classic runners", Price: 129.99, ImageURL: "https://img.example.com/airmax.png"},
		{Name: "Mystery Box", Price: 10},
	}

	html, err := testRenderer().StorefrontPage(shop)
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Nike - Online Store</title>")
	assert.Contains(t, html, `name="description" content="Welcome to Nike"`)
	assert.Contains(t, html, model.DefaultPrimaryColor)
	assert.Contains(t, html, model.DefaultSecondaryColor)

	// Product with image, description and price
	assert.Contains(t, html, "Air Max")
	assert.Contains(t, html, "Classic runners")
	assert.Contains(t, html, "129.99$")
	assert.Contains(t, html, "https://img.example.com/airmax.png")

	// Product without image or description gets the placeholder and filler
	assert.Contains(t, html, `class="placeholder"`)
	assert.Contains(t, html, "Quality product from our store")

	// Insertion order is display order
	assert.Less(t, strings.Index(html, "Air Max"), strings.Index(html, "Mystery Box"))
}

func TestRenderer_StorefrontPage_EmptyState(t *testing.T) {
	html, err := testRenderer().StorefrontPage(testShop())
	require.NoError(t, err)

	assert.Contains(t, html, "No products yet")
	assert.NotContains(t, html, `class="card"`)
}

func TestRenderer_StorefrontPage_EscapesShopContent(t *testing.T) {
	shop := testShop()
	shop.Name = `<script>alert("shop")</script>`
	shop.Products = []model.Product{
		{Name: `<script>alert("product")</script>`, Description: `"><img src=x>`, Price: 1},
	}

	html, err := testRenderer().StorefrontPage(shop)
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, `"><img src=x>`)
}

func TestRenderer_StorefrontPage_RejectsUnsafeThemeValues(t *testing.T) {
	shop := testShop()
	shop.Config.Theme.PrimaryColor = `red;}</style><script>alert(1)</script>`
	shop.Config.Theme.FontFamily = `Arial</style><script>x</script>`

	html, err := testRenderer().StorefrontPage(shop)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "<script>x</script>")
	assert.Contains(t, html, model.DefaultPrimaryColor)
	assert.Contains(t, html, "Arial, sans-serif")
}

func TestSafeColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"Hex color", "#ff0000", "#ff0000"},
		{"Short hex", "#f00", "#f00"},
		{"Named color", "tomato", "tomato"},
		{"RGB function", "rgb(255, 0, 0)", "rgb(255, 0, 0)"},
		{"CSS injection", "red;} body{display:none", model.DefaultPrimaryColor},
		{"Markup", "<script>", model.DefaultPrimaryColor},
		{"Empty", "", model.DefaultPrimaryColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(safeColor(tt.value, model.DefaultPrimaryColor)))
		})
	}
}
