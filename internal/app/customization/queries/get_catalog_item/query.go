package get_catalog_item

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
	"github.com/ristorante/customization-service/internal/app/customization/dto"
)

const selectColumns = `SELECT item_id, name, base_price_numerator, base_price_denominator, vat_rate, status
		      FROM catalog_items`

// SpannerGetCatalogItemQuery reads catalog rows directly from Spanner.
type SpannerGetCatalogItemQuery struct {
	Client *spanner.Client
}

func NewSpannerGetCatalogItemQuery(client *spanner.Client) *SpannerGetCatalogItemQuery {
	return &SpannerGetCatalogItemQuery{Client: client}
}

// GetCatalogItem fetches one item, returning domain.ErrCatalogItemNotFound when absent.
func (q *SpannerGetCatalogItemQuery) GetCatalogItem(ctx context.Context, itemID string) (*dto.CatalogItemDTO, error) {
	stmt := spanner.Statement{
		SQL:    selectColumns + ` WHERE item_id = @id`,
		Params: map[string]interface{}{"id": itemID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrCatalogItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return scanItem(row)
}

// GetCatalogItems fetches several items in one round trip. Missing ids are simply absent.
func (q *SpannerGetCatalogItemQuery) GetCatalogItems(ctx context.Context, itemIDs []string) ([]*dto.CatalogItemDTO, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	stmt := spanner.Statement{
		SQL:    selectColumns + ` WHERE item_id IN UNNEST(@ids)`,
		Params: map[string]interface{}{"ids": itemIDs},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.CatalogItemDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		item, err := scanItem(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
}

func scanItem(row *spanner.Row) (*dto.CatalogItemDTO, error) {
	var (
		id      string
		name    string
		baseNum int64
		baseDen int64
		vatRate spanner.NullString
		status  string
	)
	if err := row.Columns(&id, &name, &baseNum, &baseDen, &vatRate, &status); err != nil {
		return nil, err
	}

	out := &dto.CatalogItemDTO{
		ItemID:       id,
		Name:         name,
		BasePriceNum: baseNum,
		BasePriceDen: baseDen,
		Status:       status,
	}
	if vatRate.Valid {
		v := vatRate.StringVal
		out.VATRate = &v
	}
	return out, nil
}
