package storefront

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/open_session"
	"github.com/ristorante/customization-service/internal/app/customization/usecases/price_item"
	"github.com/ristorante/customization-service/internal/app/customization/utils"
	"github.com/ristorante/customization-service/internal/pkg/metrics"
)

// PriceInput is the body of POST /v1/items/:id/price, keyed by schema id:
//
//	{"selections": {"size": {"size": "20cm"}, "toppings": {"toppings": ["olives"]}}}
type PriceInput struct {
	Selections map[string]map[string]any `json:"selections"`
}

// GET /v1/items/:id/customization
func GetCustomization(open *open_session.Interactor) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := open.Execute(c.Request.Context(), open_session.Request{ItemID: c.Param("id")})
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, utils.SessionToMap(res.Session, res.Rows))
	}
}

// POST /v1/items/:id/price
func PriceItem(price *price_item.Interactor, reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PriceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		selections := make(map[string]any, len(input.Selections))
		for schemaID, values := range input.Selections {
			selections[schemaID] = values
		}

		line, err := price.Execute(c.Request.Context(), price_item.Request{
			ItemID: c.Param("id"),
			State:  utils.SelectionStateFromMap(selections),
		})

		var violations domain.ValidationErrors
		if errors.As(err, &violations) {
			if reg != nil {
				kinds := make([]string, 0, len(violations))
				for _, k := range violations.Kinds() {
					kinds = append(kinds, string(k))
				}
				reg.ObserveValidationFailure(kinds...)
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"violations": utils.ViolationsToList(violations)})
			return
		}
		if err != nil {
			writeError(c, err)
			return
		}

		if reg != nil {
			reg.ObservePricedLine(line.UnitPrice)
		}
		c.JSON(http.StatusOK, utils.PricedLineToMap(line))
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCatalogItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item does not exist"})
	case errors.Is(err, domain.ErrCatalogItemNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "Item is not available"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
	}
}
