package database

import (
	"fmt"

	"github.com/Sumit10612/wealth-manager/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date and seeds the default asset
// types. It is idempotent: running it against an already-migrated
// database is a no-op.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.AssetType{},
		&models.Platform{},
		&models.Account{},
		&models.Transaction{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Databases created before platform/account tagging existed lack
	// these two columns; add them without touching existing rows.
	for _, col := range []string{"platform", "account"} {
		if !db.Migrator().HasColumn(&models.Transaction{}, col) {
			if err := db.Migrator().AddColumn(&models.Transaction{}, col); err != nil {
				return fmt.Errorf("add column %s: %w", col, err)
			}
		}
	}

	if err := seedAssetTypes(db); err != nil {
		return fmt.Errorf("seed asset types: %w", err)
	}
	return nil
}

// seedAssetTypes inserts the default asset types, but only into an
// empty table so user deletions stick across restarts.
func seedAssetTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AssetType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range models.DefaultAssetTypes {
		if err := db.Create(&models.AssetType{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
