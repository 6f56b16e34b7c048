package models

import "time"

// AssetType is a broad investment category (e.g. Stocks, Mutual Funds).
// Transactions reference it by name, not by foreign key.
type AssetType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultAssetTypes are seeded once, when the table is empty.
var DefaultAssetTypes = []string{"Stocks", "Mutual Funds", "Fixed Deposits"}
