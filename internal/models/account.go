package models

import "time"

// Account is a free-form tag identifying the account a transaction
// belongs to. Same shape as Platform.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
