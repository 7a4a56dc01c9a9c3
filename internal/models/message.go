package models

import (
	"time"

	"gorm.io/gorm"
)

// Message 代表一條房間內的消息，同時滿足 WebSocket 傳遞和數據庫存儲需求
type Message struct {
	gorm.Model
	RoomID      uint      `json:"room_id"`
	UserID      uint      `json:"user_id"`
	Content     string    `gorm:"type:text" json:"content"`
	TargetGroup string    `gorm:"type:varchar(50)" json:"target_group"` // 訊息的目標群體，依役職過濾是未來的工作
	Timestamp   time.Time `json:"timestamp"`
}

// NewRoomMessage 創建一條新的玩家消息
func NewRoomMessage(roomID, userID uint, content, targetGroup string) Message {
	return Message{
		RoomID:      roomID,
		UserID:      userID,
		Content:     content,
		TargetGroup: targetGroup,
		Timestamp:   time.Now(),
	}
}

// NewSystemMessage 創建一條新的系統消息
func NewSystemMessage(roomID uint, content string) Message {
	return Message{
		RoomID:      roomID,
		Content:     content,
		TargetGroup: "system",
		Timestamp:   time.Now(),
	}
}
