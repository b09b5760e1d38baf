package m_catalog_item

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertOrUpdateMutation upserts a catalog row. Used to seed local databases and tests.
func InsertOrUpdateMutation(itemID, name string, baseNum, baseDen int64, vatRate *string, status string, now time.Time) *spanner.Mutation {
	var vat interface{}
	if vatRate != nil {
		vat = *vatRate
	}
	return spanner.InsertOrUpdate(TableName,
		[]string{ColItemID, ColName, ColBasePriceNumerator, ColBasePriceDenominator, ColVATRate, ColStatus, ColCreatedAt, ColUpdatedAt},
		[]interface{}{itemID, name, baseNum, baseDen, vat, status, now, now},
	)
}
