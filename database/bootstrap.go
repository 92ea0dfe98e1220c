package database

import (
	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"github.com/yashcodes29/Farm-wise/entities"
)

// OpenSQLite opens (or creates) the forum store and migrates its tables.
// Callers decide whether a failure is fatal; the forum simply degrades to
// "service unavailable" without a store.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&entities.ForumPost{},
		&entities.Comment{},
		&entities.Reply{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
