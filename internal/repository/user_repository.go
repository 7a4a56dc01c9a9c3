package repository

import (
	"werewolf_web/internal/models"
	"werewolf_web/internal/storage"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindBySessionToken(token string) (*models.User, error)
	FindByRoomID(roomID uint) ([]models.User, error)
	FindPageByRoom(roomID *uint, offset, limit int) ([]models.User, error)
	Update(user *models.User) error
}

type userRepository struct {
	db *storage.Database
}

func NewUserRepository(db *storage.Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindBySessionToken 以會話憑證解析用戶身份
func (r *userRepository) FindBySessionToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.Where("session_token = ?", token).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByRoomID 查詢指定房間的所有成員
func (r *userRepository) FindByRoomID(roomID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("room_id = ?", roomID).Order("id ASC").Find(&users).Error
	return users, err
}

// FindPageByRoom 分頁查詢指定房間的成員，roomID 為 nil 時查詢不在任何房間的用戶
func (r *userRepository) FindPageByRoom(roomID *uint, offset, limit int) ([]models.User, error) {
	var users []models.User
	query := r.db.Order("id ASC").Offset(offset).Limit(limit)
	if roomID == nil {
		query = query.Where("room_id IS NULL")
	} else {
		query = query.Where("room_id = ?", *roomID)
	}
	err := query.Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
