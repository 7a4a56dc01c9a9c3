package storage

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB 開啟一個以記憶體為後端的 SQLite 資料庫，主要供測試使用。
// name 用來區分同一進程內的多個資料庫，cache=shared 讓連接池共享同一份資料。
func NewSQLiteDB(name string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %v", err)
	}

	return &Database{DB: db}, nil
}
