// Package portfolio computes summary aggregates over transaction
// lists. Amounts go through decimal arithmetic so repeated addition
// does not drift the way float64 sums do.
package portfolio

import (
	"github.com/Sumit10612/wealth-manager/internal/models"

	"github.com/shopspring/decimal"
)

// Summary is the aggregate view over a set of transactions.
type Summary struct {
	Total       float64            `json:"total"`
	ByAssetType map[string]float64 `json:"byAssetType"`
	Count       int                `json:"count"`
}

// Summarize folds transactions into totals. A Sell contributes its
// amount negated; every other type (Buy, Dividend, anything else the
// user typed) contributes the amount as-is.
func Summarize(txs []models.Transaction) Summary {
	total := decimal.Zero
	byType := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		v := decimal.NewFromFloat(tx.Amount)
		if tx.TransactionType == models.TxSell {
			v = v.Neg()
		}
		total = total.Add(v)
		byType[tx.AssetType] = byType[tx.AssetType].Add(v)
	}

	out := Summary{
		ByAssetType: make(map[string]float64, len(byType)),
		Count:       len(txs),
	}
	out.Total, _ = total.Float64()
	for k, v := range byType {
		out.ByAssetType[k], _ = v.Float64()
	}
	return out
}

// Narrow reduces a summary to a single asset type: its subtotal
// becomes the total, and count is the number of given transactions
// carrying that asset type.
func Narrow(s Summary, txs []models.Transaction, assetType string) Summary {
	if assetType == "" {
		return s
	}
	n := 0
	for _, tx := range txs {
		if tx.AssetType == assetType {
			n++
		}
	}
	sub := s.ByAssetType[assetType]
	return Summary{
		Total:       sub,
		ByAssetType: map[string]float64{assetType: sub},
		Count:       n,
	}
}
