package service

import (
	"errors"

	"gorm.io/gorm"

	"werewolf_web/internal/models"
	"werewolf_web/internal/repository"
)

// UserSummary 是用戶在他人視角下的視圖，不包含本名
type UserSummary struct {
	ID    uint             `json:"id"`
	Alias string           `json:"alias"`
	State models.UserState `json:"state"`
}

// UserProfile 是用戶自己視角下的完整視圖
type UserProfile struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Alias     string           `json:"alias"`
	State     models.UserState `json:"state"`
	RoomID    *uint            `json:"room_id"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

type UserService struct {
	repos *repository.Repositories
}

func NewUserService(repos *repository.Repositories) *UserService {
	return &UserService{repos: repos}
}

// CreateUser 註冊一個新用戶。會話憑證由模型層在建立時產生。
func (s *UserService) CreateUser(name, alias string) (*models.User, error) {
	user := &models.User{
		Name:  name,
		Alias: alias,
		State: models.UserStateOutside,
	}
	if err := s.repos.User.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResolveSession 以會話憑證解析用戶身份
func (s *UserService) ResolveSession(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	user, err := s.repos.User.FindBySessionToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownSession
		}
		return nil, err
	}
	return user, nil
}

// ListRoomMates 列出與呼叫者同房間的用戶（含呼叫者自己）
func (s *UserService) ListRoomMates(caller *models.User, offset, limit int) ([]UserSummary, error) {
	users, err := s.repos.User.FindPageByRoom(caller.RoomID, offset, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, convertModelToUserSummary(&users[i]))
	}
	return summaries, nil
}

func convertModelToUserSummary(model *models.User) UserSummary {
	return UserSummary{
		ID:    model.ID,
		Alias: model.Alias,
		State: model.State,
	}
}

// ConvertModelToProfile 把用戶模型轉為本人視角的視圖
func ConvertModelToProfile(model *models.User) *UserProfile {
	return &UserProfile{
		ID:        model.ID,
		Name:      model.Name,
		Alias:     model.Alias,
		State:     model.State,
		RoomID:    model.RoomID,
		CreatedAt: model.CreatedAt.Format(models.TimestampLayout),
		UpdatedAt: model.UpdatedAt.Format(models.TimestampLayout),
	}
}
