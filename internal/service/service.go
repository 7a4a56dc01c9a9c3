package service

import (
	"werewolf_web/internal/models"
	"werewolf_web/internal/repository"
)

type Services struct {
	User      *UserService
	Room      *RoomService
	Message   *MessageService
	WebSocket *WebSocketManager
}

func NewServices(repos *repository.Repositories, schedule models.StateSchedule) *Services {
	wsManager := NewWebSocketManager(repos.Message)

	return &Services{
		User:      NewUserService(repos),
		Room:      NewRoomService(repos, wsManager, schedule),
		Message:   NewMessageService(repos, wsManager),
		WebSocket: wsManager,
	}
}
