package service

import (
	"werewolf_web/internal/models"
	"werewolf_web/internal/repository"
)

// MessageView 是消息對外的視圖
type MessageView struct {
	ID          uint   `json:"id"`
	RoomID      uint   `json:"room_id"`
	UserID      uint   `json:"user_id"`
	Content     string `json:"content"`
	TargetGroup string `json:"target_group"`
	Timestamp   string `json:"timestamp"`
}

type MessageService struct {
	repos     *repository.Repositories
	wsManager *WebSocketManager
}

func NewMessageService(repos *repository.Repositories, wsManager *WebSocketManager) *MessageService {
	return &MessageService{
		repos:     repos,
		wsManager: wsManager,
	}
}

// CreateMessage 在呼叫者所在的房間發送一條消息，並即時轉發給房間內的連線
func (s *MessageService) CreateMessage(caller *models.User, content, targetGroup string) (*MessageView, error) {
	if caller.RoomID == nil {
		return nil, ErrNotInRoom
	}

	message := models.NewRoomMessage(*caller.RoomID, caller.ID, content, targetGroup)
	if err := s.repos.Message.Create(&message); err != nil {
		return nil, err
	}

	s.wsManager.BroadcastToRoom(message.RoomID, &message)
	return convertModelToMessageView(&message), nil
}

// ListMessages 列出呼叫者所在房間的消息，可依目標群體過濾
func (s *MessageService) ListMessages(caller *models.User, targetGroup string, offset, limit int) ([]MessageView, error) {
	if caller.RoomID == nil {
		return nil, ErrNotInRoom
	}

	messages, err := s.repos.Message.FindByRoomID(*caller.RoomID, targetGroup, offset, limit)
	if err != nil {
		return nil, err
	}

	views := make([]MessageView, 0, len(messages))
	for i := range messages {
		views = append(views, *convertModelToMessageView(&messages[i]))
	}
	return views, nil
}

func convertModelToMessageView(model *models.Message) *MessageView {
	return &MessageView{
		ID:          model.ID,
		RoomID:      model.RoomID,
		UserID:      model.UserID,
		Content:     model.Content,
		TargetGroup: model.TargetGroup,
		Timestamp:   model.Timestamp.Format(models.TimestampLayout),
	}
}
