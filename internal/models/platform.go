package models

import "time"

// Platform is a free-form tag for where a transaction was executed
// (e.g. a broker or fund house). Created ad hoc by the user.
type Platform struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
