package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanbit/shopfront-backend/internal/app/model"
	"github.com/hanbit/shopfront-backend/internal/app/service"
	apperrors "github.com/hanbit/shopfront-backend/internal/errors"
	"github.com/hanbit/shopfront-backend/internal/middleware"
)

type ShopController struct {
	shopService service.ShopService
}

func NewShopController(shopService service.ShopService) *ShopController {
	return &ShopController{shopService: shopService}
}

type CreateShopRequest struct {
	Name     string            `json:"name"`
	Slug     string            `json:"slug"`
	Template string            `json:"template"`
	Config   *model.ShopConfig `json:"config"`
	Products []model.Product   `json:"products"`
}

// UpdateShopRequest is a partial update. A present key replaces the stored
// value wholesale; config in particular is never merged field-by-field.
type UpdateShopRequest struct {
	Name     *string           `json:"name"`
	Template *string           `json:"template"`
	Config   *model.ShopConfig `json:"config"`
	Products *[]model.Product  `json:"products"`
}

// ListShops handles GET /api/shops
func (ctrl *ShopController) ListShops(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	result, err := ctrl.shopService.ListShops()
	if err != nil {
		log.Error("Failed to list shops", err, map[string]interface{}{
			"code": apperrors.InternalStorageError,
		})
		apperrors.InternalError(c, "failed to fetch shops")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"shops":   result.Shops,
		"stats":   result.Stats,
	})
}

// CreateShop handles POST /api/shops
func (ctrl *ShopController) CreateShop(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid shop creation request", map[string]interface{}{
			"code":  apperrors.ValidationInvalidInput,
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	shop, url, err := ctrl.shopService.CreateShop(service.ShopInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Template: req.Template,
		Config:   req.Config,
		Products: req.Products,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired), errors.Is(err, service.ErrSlugRequired):
			log.Warn("Shop creation rejected", map[string]interface{}{
				"code":  apperrors.ValidationRequired,
				"error": err.Error(),
			})
			apperrors.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrSlugTaken):
			log.Warn("Shop creation conflict", map[string]interface{}{
				"code": apperrors.ShopSlugExists,
				"slug": req.Slug,
			})
			apperrors.Conflict(c, err.Error())
		default:
			log.Error("Failed to create shop", err, map[string]interface{}{
				"code": apperrors.InternalStorageError,
				"slug": req.Slug,
			})
			apperrors.InternalError(c, "failed to create shop")
		}
		return
	}

	log.Info("Shop created", map[string]interface{}{
		"shop_id": shop.ID,
		"slug":    shop.Slug,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"shop":    shop,
		"url":     url,
	})
}

// UpdateShop handles PUT /api/shops/:slug
func (ctrl *ShopController) UpdateShop(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid shop update request", map[string]interface{}{
			"code":  apperrors.ValidationInvalidInput,
			"slug":  slug,
			"error": err.Error(),
		})
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	shop, err := ctrl.shopService.UpdateShop(slug, service.ShopMutation{
		Name:     req.Name,
		Template: req.Template,
		Config:   req.Config,
		Products: req.Products,
	})
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			log.Warn("Shop not found", map[string]interface{}{
				"code": apperrors.ShopNotFound,
				"slug": slug,
			})
			apperrors.NotFound(c, err.Error())
			return
		}
		log.Error("Failed to update shop", err, map[string]interface{}{
			"code": apperrors.InternalStorageError,
			"slug": slug,
		})
		apperrors.InternalError(c, "failed to update shop")
		return
	}

	log.Info("Shop updated", map[string]interface{}{
		"slug": slug,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"shop":    shop,
	})
}

// ReconcileStats handles POST /api/shops/reconcile
func (ctrl *ShopController) ReconcileStats(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stats, err := ctrl.shopService.ReconcileStats()
	if err != nil {
		log.Error("Failed to reconcile stats", err, map[string]interface{}{
			"code": apperrors.InternalStorageError,
		})
		apperrors.InternalError(c, "failed to reconcile stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
