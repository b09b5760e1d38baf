// Package storefront serves the customer-facing customization endpoints over HTTP.
package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ristorante/customization-service/internal/app/customization/usecases/open_session"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/price_item"
	"github.com/ristorante/customization-service/internal/pkg/metrics"
)

// Deps are the application handlers the storefront delegates to. Metrics may be nil.
type Deps struct {
	OpenSession *open_session.Interactor
	Price       *price_item.Interactor
	Metrics     *metrics.Registry
}

// NewRouter registers every storefront route on a fresh engine.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	items := r.Group("/v1/items")
	{
		items.GET("/:id/customization", GetCustomization(deps.OpenSession))
		items.POST("/:id/price", PriceItem(deps.Price, deps.Metrics))
	}
	return r
}
