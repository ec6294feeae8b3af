// Package render builds the HTML documents served to storefront visitors.
// Rendering is pure: the renderer takes a shop record and returns a string,
// touching neither the store nor the network. Shop-supplied text always goes
// through contextual escaping so stored content can never execute as markup.
package render

import (
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/hanbit/shopfront-backend/internal/app/model"
)

// Options configures URL building for the static pages.
type Options struct {
	// MainSiteURL is the platform landing page, used as the not-found CTA.
	MainSiteURL string
	// ShopURL builds a storefront URL from a slug, for the example links.
	ShopURL func(slug string) string
}

type Renderer struct {
	landing    *template.Template
	notFound   *template.Template
	storefront *template.Template
	opts       Options
}

// Example storefront slugs shown on the landing page.
var exampleSlugs = []string{"demo", "nike", "coffee"}

func NewRenderer(opts Options) *Renderer {
	funcs := template.FuncMap{
		"formatPrice": formatPrice,
	}
	return &Renderer{
		landing:    template.Must(template.New("landing").Parse(landingTemplate)),
		notFound:   template.Must(template.New("notfound").Parse(notFoundTemplate)),
		storefront: template.Must(template.New("storefront").Funcs(funcs).Parse(storefrontTemplate)),
		opts:       opts,
	}
}

type exampleLink struct {
	Label string
	URL   string
}

// LandingPage renders the main-site page shown when no tenant resolves.
func (r *Renderer) LandingPage() (string, error) {
	examples := make([]exampleLink, 0, len(exampleSlugs))
	for _, slug := range exampleSlugs {
		examples = append(examples, exampleLink{
			Label: slug + " store",
			URL:   r.opts.ShopURL(slug),
		})
	}

	var b strings.Builder
	if err := r.landing.Execute(&b, map[string]interface{}{
		"Examples": examples,
	}); err != nil {
		return "", fmt.Errorf("render landing page: %w", err)
	}
	return b.String(), nil
}

// NotFoundPage renders the page shown for a tenant with no matching shop.
func (r *Renderer) NotFoundPage(tenant string) (string, error) {
	var b strings.Builder
	if err := r.notFound.Execute(&b, map[string]interface{}{
		"Tenant":      tenant,
		"MainSiteURL": r.opts.MainSiteURL,
	}); err != nil {
		return "", fmt.Errorf("render not-found page: %w", err)
	}
	return b.String(), nil
}

// StorefrontPage renders the full storefront document for a shop.
func (r *Renderer) StorefrontPage(shop *model.Shop) (string, error) {
	var b strings.Builder
	err := r.storefront.Execute(&b, map[string]interface{}{
		"Shop":           shop,
		"PrimaryColor":   safeColor(shop.Config.Theme.PrimaryColor, model.DefaultPrimaryColor),
		"SecondaryColor": safeColor(shop.Config.Theme.SecondaryColor, model.DefaultSecondaryColor),
		"FontFamily":     safeFontFamily(shop.Config.Theme.FontFamily),
	})
	if err != nil {
		return "", fmt.Errorf("render storefront page: %w", err)
	}
	return b.String(), nil
}

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	funcColorPattern = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\([0-9,.%\s]+\)$`)
	nameColorPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	fontPattern      = regexp.MustCompile(`^[a-zA-Z0-9 ,'-]+$`)
)

// safeColor admits theme values into a CSS context. Escaping does not help
// inside style blocks, so anything that is not a plausible color literal
// falls back to the default.
func safeColor(value, fallback string) template.CSS {
	v := strings.TrimSpace(value)
	if hexColorPattern.MatchString(v) || funcColorPattern.MatchString(v) || nameColorPattern.MatchString(v) {
		return template.CSS(v)
	}
	return template.CSS(fallback)
}

func safeFontFamily(value string) template.CSS {
	v := strings.TrimSpace(value)
	if v != "" && fontPattern.MatchString(v) {
		return template.CSS(v)
	}
	return template.CSS(model.DefaultFontFamily)
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
