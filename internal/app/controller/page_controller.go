package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanbit/shopfront-backend/internal/app/service"
	"github.com/hanbit/shopfront-backend/internal/middleware"
	"github.com/hanbit/shopfront-backend/internal/render"
	"github.com/hanbit/shopfront-backend/internal/tenant"
)

const htmlContentType = "text/html; charset=utf-8"

// PageController serves the HTML surface: the landing page on the apex
// domain and per-tenant storefront pages on subdomains.
type PageController struct {
	shopService service.ShopService
	resolver    *tenant.Resolver
	renderer    *render.Renderer
}

func NewPageController(shopService service.ShopService, resolver *tenant.Resolver, renderer *render.Renderer) *PageController {
	return &PageController{
		shopService: shopService,
		resolver:    resolver,
		renderer:    renderer,
	}
}

// ServePage is the catch-all route. Tenant resolution decides which page
// variant is rendered; only a successfully served storefront records a visit.
func (ctrl *PageController) ServePage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slug, ok := ctrl.resolver.Resolve(c.Request.Host)
	if !ok {
		html, err := ctrl.renderer.LandingPage()
		if err != nil {
			log.Error("Failed to render landing page", err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
		c.Data(http.StatusOK, htmlContentType, []byte(html))
		return
	}

	shop, err := ctrl.shopService.RecordVisit(slug)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			log.Warn("Storefront not found", map[string]interface{}{
				"tenant": slug,
			})
			html, renderErr := ctrl.renderer.NotFoundPage(slug)
			if renderErr != nil {
				log.Error("Failed to render not-found page", renderErr)
				c.String(http.StatusInternalServerError, "Internal Server Error")
				return
			}
			c.Data(http.StatusNotFound, htmlContentType, []byte(html))
			return
		}
		log.Error("Failed to record visit", err, map[string]interface{}{
			"tenant": slug,
		})
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	html, err := ctrl.renderer.StorefrontPage(shop)
	if err != nil {
		log.Error("Failed to render storefront page", err, map[string]interface{}{
			"tenant": slug,
		})
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	log.Info("Storefront served", map[string]interface{}{
		"tenant": slug,
		"views":  shop.Stats.Views,
	})
	c.Data(http.StatusOK, htmlContentType, []byte(html))
}
