package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shishihs/insurance-self-game-sub003/internal/game"
)

// OpenAndMigrate opens the sqlite database and keeps the schema current via
// AutoMigrate. Game snapshots are single rows; card collections live in
// JSON columns, so the schema stays one table.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Game{}); err != nil {
		return nil, err
	}
	return db, nil
}
