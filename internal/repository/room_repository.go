package repository

import (
	"gorm.io/gorm/clause"

	"werewolf_web/internal/models"
	"werewolf_web/internal/storage"
)

type RoomRepository interface {
	Create(room *models.Room) error
	FindByID(id uint) (*models.Room, error)
	Update(room *models.Room) error
	FindAll() ([]models.Room, error)
	FindPage(offset, limit int) ([]models.Room, error)
}

type roomRepository struct {
	db *storage.Database
}

func NewRoomRepository(db *storage.Database) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.Preload("Users").First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Update(room *models.Room) error {
	return r.db.Omit(clause.Associations).Save(room).Error
}

// FindAll 查詢所有房間，階段推進器掃描時使用
func (r *roomRepository) FindAll() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Order("id ASC").Find(&rooms).Error
	return rooms, err
}

// FindPage 分頁查詢房間列表
func (r *roomRepository) FindPage(offset, limit int) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Preload("Users").Order("id ASC").Offset(offset).Limit(limit).Find(&rooms).Error
	return rooms, err
}
