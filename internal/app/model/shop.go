package model

import "time"

// DefaultTemplate is the template tag assigned to shops created without one.
// The core does not interpret it beyond storing and echoing it back.
const DefaultTemplate = "ecommerce"

// Theme default values, applied field-by-field when a shop is created
// without an explicit theme.
const (
	DefaultPrimaryColor   = "#3498db"
	DefaultSecondaryColor = "#2ecc71"
	DefaultFontFamily     = "Arial, sans-serif"
	DefaultLayout         = "grid"
)

// Theme holds the visual settings of a storefront.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	Layout         string `json:"layout"`
}

// SEO holds the document metadata of a storefront page.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// ShopConfig groups theme and SEO settings. Updates replace it wholesale.
type ShopConfig struct {
	Theme Theme `json:"theme"`
	SEO   SEO   `json:"seo"`
}

// Product is embedded in its shop and not independently addressable.
// Slice order is display order.
type Product struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// ShopStats tracks per-shop visit counters.
type ShopStats struct {
	Views     int        `json:"views"`
	CreatedAt time.Time  `json:"createdAt"`
	LastVisit *time.Time `json:"lastVisit"`
}

// Shop is one tenant storefront, keyed in the store document by its slug.
type Shop struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Template string     `json:"template"`
	Config   ShopConfig `json:"config"`
	Products []Product  `json:"products"`
	Stats    ShopStats  `json:"stats"`
}

// ApplyDefaults fills zero-valued template, theme and SEO fields.
// SEO defaults derive from the shop name.
func (s *Shop) ApplyDefaults() {
	if s.Template == "" {
		s.Template = DefaultTemplate
	}
	if s.Config.Theme.PrimaryColor == "" {
		s.Config.Theme.PrimaryColor = DefaultPrimaryColor
	}
	if s.Config.Theme.SecondaryColor == "" {
		s.Config.Theme.SecondaryColor = DefaultSecondaryColor
	}
	if s.Config.Theme.FontFamily == "" {
		s.Config.Theme.FontFamily = DefaultFontFamily
	}
	if s.Config.Theme.Layout == "" {
		s.Config.Theme.Layout = DefaultLayout
	}
	if s.Config.SEO.Title == "" {
		s.Config.SEO.Title = s.Name + " - Online Store"
	}
	if s.Config.SEO.Description == "" {
		s.Config.SEO.Description = "Welcome to " + s.Name
	}
	if s.Config.SEO.Keywords == "" {
		s.Config.SEO.Keywords = s.Name + ", online store, shop"
	}
}
