package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 表示系統中的用戶（玩家）
type User struct {
	gorm.Model             // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Name         string    `gorm:"not null" json:"name"`
	Alias        string    `json:"alias"` // 在房間內顯示的化名，可選
	State        UserState `gorm:"type:varchar(20)" json:"state"`
	SessionToken string    `gorm:"uniqueIndex;not null" json:"-"` // 會話憑證，僅作為查詢鍵使用，json 序列化時會被忽略
	RoomID       *uint     `json:"room_id"` // 所在房間，離開房間時為 nil
}

// UserState 定義用戶參與狀態的類型
type UserState string

const (
	UserStateOutOfPlay UserState = "OutOfPlay" // 在房間內但不在遊戲中
	UserStateAlive     UserState = "Alive"     // 遊戲中存活
	UserStateDead      UserState = "Dead"      // 遊戲中死亡
	UserStateWatcher   UserState = "Watcher"   // 觀戰者
	UserStateOutside   UserState = "Outside"   // 不在任何房間
)

// BeforeCreate 在建立用戶時產生會話憑證
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.SessionToken == "" {
		u.SessionToken = uuid.NewString()
	}
	if u.State == "" {
		u.State = UserStateOutside
	}
	return nil
}
