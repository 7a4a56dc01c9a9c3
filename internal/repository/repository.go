package repository

import (
	"werewolf_web/internal/storage"

	"gorm.io/gorm"
)

type Repositories struct {
	User    UserRepository
	Room    RoomRepository
	Message MessageRepository

	db *storage.Database
}

func NewRepositories(db *storage.Database) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Room:    NewRoomRepository(db),
		Message: NewMessageRepository(db),
		db:      db,
	}
}

// Transaction 在單一資料庫交易中執行 fn。
// fn 收到的 Repositories 綁定在該交易上，fn 回傳錯誤時整個交易回滾。
// 房間階段翻轉與成員狀態連鎖必須在同一個交易內完成，不允許部分生效。
func (r *Repositories) Transaction(fn func(*Repositories) error) error {
	return r.db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(&storage.Database{DB: tx}))
	})
}
