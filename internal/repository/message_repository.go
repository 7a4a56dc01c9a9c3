package repository

import (
	"werewolf_web/internal/models"
	"werewolf_web/internal/storage"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByRoomID(roomID uint, targetGroup string, offset, limit int) ([]models.Message, error)
}

type messageRepository struct {
	db *storage.Database
}

func NewMessageRepository(db *storage.Database) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByRoomID(roomID uint, targetGroup string, offset, limit int) ([]models.Message, error) {
	var messages []models.Message
	query := r.db.Where("room_id = ?", roomID)
	if targetGroup != "" {
		query = query.Where("target_group = ?", targetGroup)
	}
	err := query.Order("timestamp asc").Offset(offset).Limit(limit).Find(&messages).Error
	return messages, err
}
