package sqlite

import (
	"time"

	"conesites/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const MemoryPath = ":memory:"

// Init opens the cache database and migrates its tables. The database only
// backs infrastructure caches (CNPJ lookups and websocket connections), so an
// in-memory path is the default.
func Init(path string) (*gorm.DB, error) {
	if path == "" {
		path = MemoryPath
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.Company{}, &entity.CompanyPartner{}, &entity.Connection{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	// Every new connection to :memory: is a brand new database.
	if path == MemoryPath {
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return db, nil
}
