package models

import "time"

// Transaction types. Stored as plain text, not enforced at the
// storage level.
const (
	TxBuy      = "Buy"
	TxSell     = "Sell"
	TxDividend = "Dividend"
)

// Transaction is a single buy/sell/dividend record.
// asset_type, platform and account reference the corresponding tables
// by name only; deleting a reference row leaves the name in place here.
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	SchemeName      string    `gorm:"size:255;not null" json:"scheme_name"`
	AssetType       string    `gorm:"size:64;not null" json:"asset_type"`
	TransactionType string    `gorm:"size:16;not null" json:"transaction_type"`
	Units           float64   `gorm:"not null" json:"units"`
	Nav             float64   `gorm:"not null" json:"nav"` // price per unit
	Amount          float64   `gorm:"not null" json:"amount"`
	Date            string    `gorm:"size:32;not null" json:"date"` // YYYY-MM-DD as entered
	Platform        *string   `gorm:"size:64" json:"platform"`
	Account         *string   `gorm:"size:64" json:"account"`
	CreatedAt       time.Time `json:"created_at"` // set once at insert
}
