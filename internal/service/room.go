package service

import (
	"time"

	"werewolf_web/internal/models"
	"werewolf_web/internal/repository"
)

// Room 是房間對外的視圖，時間戳已轉為固定的文字格式
type Room struct {
	ID                uint             `json:"id"`
	Name              string           `json:"name"`
	Explanation       string           `json:"explanation"`
	DetailOfRole      string           `json:"detail_of_role"`
	State             models.RoomState `json:"state"`
	NextStateUpdateAt string           `json:"next_state_update_at"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
	Users             []UserSummary    `json:"users"`
}

// RoomSettingsInput 定義更新房間設定的輸入，nil 字段表示不變更。
// 只允許修改描述性字段，階段與排程不受這個操作影響。
type RoomSettingsInput struct {
	Name         *string `json:"name"`
	Explanation  *string `json:"explanation"`
	DetailOfRole *string `json:"detail_of_role"`
}

type RoomService struct {
	repos     *repository.Repositories
	wsManager *WebSocketManager
	schedule  models.StateSchedule
}

func NewRoomService(repos *repository.Repositories, wsManager *WebSocketManager, schedule models.StateSchedule) *RoomService {
	return &RoomService{
		repos:     repos,
		wsManager: wsManager,
		schedule:  schedule,
	}
}

// CreateRoom 創建一個新房間，初始階段為 BeforeGame 並排定第一次自動轉換
func (s *RoomService) CreateRoom(name, explanation, detailOfRole string) (*Room, error) {
	now := time.Now()
	roomModel := &models.Room{
		Name:              name,
		Explanation:       explanation,
		DetailOfRole:      detailOfRole,
		State:             models.RoomStateBeforeGame,
		NextStateUpdateAt: now.Add(s.schedule.Dwell(models.RoomStateBeforeGame)),
	}

	if err := s.repos.Room.Create(roomModel); err != nil {
		return nil, err
	}

	return s.convertModelToRoom(roomModel), nil
}

func (s *RoomService) GetRoom(roomID uint) (*Room, error) {
	roomModel, err := s.repos.Room.FindByID(roomID)
	if err != nil {
		return nil, err
	}
	return s.convertModelToRoom(roomModel), nil
}

func (s *RoomService) ListRooms(offset, limit int) ([]Room, error) {
	roomModels, err := s.repos.Room.FindPage(offset, limit)
	if err != nil {
		return nil, err
	}

	rooms := make([]Room, 0, len(roomModels))
	for i := range roomModels {
		rooms = append(rooms, *s.convertModelToRoom(&roomModels[i]))
	}
	return rooms, nil
}

// UpdateSettings 修改房間的描述性設定，要求呼叫者是該房間的成員
func (s *RoomService) UpdateSettings(caller *models.User, roomID uint, input RoomSettingsInput) (*Room, error) {
	if err := s.requireMembership(caller, roomID); err != nil {
		return nil, err
	}

	roomModel, err := s.repos.Room.FindByID(roomID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		roomModel.Name = *input.Name
	}
	if input.Explanation != nil {
		roomModel.Explanation = *input.Explanation
	}
	if input.DetailOfRole != nil {
		roomModel.DetailOfRole = *input.DetailOfRole
	}

	if err := s.repos.Room.Update(roomModel); err != nil {
		return nil, err
	}
	return s.convertModelToRoom(roomModel), nil
}

// EnterRoom 讓呼叫者加入房間。
// 一般玩家只能在 BeforeGame 或 AfterGame 階段進入，
// 觀戰者不受房間階段限制。
func (s *RoomService) EnterRoom(caller *models.User, roomID uint, asWatcher bool) (*Room, error) {
	if caller.RoomID != nil {
		return nil, ErrAlreadyInRoom
	}

	roomModel, err := s.repos.Room.FindByID(roomID)
	if err != nil {
		return nil, err
	}

	if asWatcher {
		caller.State = models.UserStateWatcher
	} else {
		switch roomModel.State {
		case models.RoomStateClosed:
			return nil, ErrRoomClosed
		case models.RoomStateBeforeGame, models.RoomStateAfterGame:
			caller.State = models.UserStateOutOfPlay
		default:
			return nil, ErrGameInProgress
		}
	}

	caller.RoomID = &roomModel.ID
	if err := s.repos.User.Update(caller); err != nil {
		return nil, err
	}

	if asWatcher {
		s.wsManager.BroadcastSystemMessage(roomModel.ID, "新觀眾加入了房間")
	} else {
		s.wsManager.BroadcastSystemMessage(roomModel.ID, "新玩家加入了房間")
	}

	return s.GetRoom(roomModel.ID)
}

// ExitRoom 讓呼叫者離開目前所在的房間
func (s *RoomService) ExitRoom(caller *models.User) error {
	if caller.RoomID == nil {
		return ErrNotInRoom
	}

	roomID := *caller.RoomID
	caller.RoomID = nil
	caller.State = models.UserStateOutside
	if err := s.repos.User.Update(caller); err != nil {
		return err
	}

	s.wsManager.BroadcastSystemMessage(roomID, "一位成員離開了房間")
	return nil
}

// StartGame 把房間從 BeforeGame 帶入 FirstNight。
// 房間階段翻轉與成員狀態連鎖在同一個交易中完成：
// 觀戰者以外的所有成員轉為 Alive。
func (s *RoomService) StartGame(caller *models.User, roomID uint) (*Room, error) {
	if err := s.requireMembership(caller, roomID); err != nil {
		return nil, err
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		roomModel, err := tx.Room.FindByID(roomID)
		if err != nil {
			return err
		}
		if roomModel.State != models.RoomStateBeforeGame {
			return ErrPreconditionFailed
		}

		s.setState(roomModel, models.RoomStateFirstNight, time.Now())
		if err := tx.Room.Update(roomModel); err != nil {
			return err
		}

		return s.cascadeMemberState(tx, roomID, models.UserStateAlive)
	})
	if err != nil {
		return nil, err
	}

	s.wsManager.BroadcastSystemMessage(roomID, "遊戲開始，第一個夜晚降臨")
	return s.GetRoom(roomID)
}

// EndGame 把遊戲進行中的房間帶入 AfterGame。
// 觀戰者以外的所有成員轉回 OutOfPlay。
func (s *RoomService) EndGame(caller *models.User, roomID uint) (*Room, error) {
	if err := s.requireMembership(caller, roomID); err != nil {
		return nil, err
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		roomModel, err := tx.Room.FindByID(roomID)
		if err != nil {
			return err
		}
		if !roomModel.State.InGame() {
			return ErrPreconditionFailed
		}

		s.setState(roomModel, models.RoomStateAfterGame, time.Now())
		if err := tx.Room.Update(roomModel); err != nil {
			return err
		}

		return s.cascadeMemberState(tx, roomID, models.UserStateOutOfPlay)
	})
	if err != nil {
		return nil, err
	}

	s.wsManager.BroadcastSystemMessage(roomID, "遊戲結束")
	return s.GetRoom(roomID)
}

// CloseRoom 關閉房間並清空所有成員：
// 包含觀戰者在內的每個成員都離開房間並轉為 Outside，
// 不留下任何指向已關閉房間的引用。
func (s *RoomService) CloseRoom(caller *models.User, roomID uint) error {
	if err := s.requireMembership(caller, roomID); err != nil {
		return err
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		roomModel, err := tx.Room.FindByID(roomID)
		if err != nil {
			return err
		}

		s.setState(roomModel, models.RoomStateClosed, time.Now())
		if err := tx.Room.Update(roomModel); err != nil {
			return err
		}

		users, err := tx.User.FindByRoomID(roomID)
		if err != nil {
			return err
		}
		for i := range users {
			users[i].RoomID = nil
			users[i].State = models.UserStateOutside
			if err := tx.User.Update(&users[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.wsManager.BroadcastSystemMessage(roomID, "房間已關閉")
	return nil
}

// requireMembership 確認呼叫者是目標房間的成員
func (s *RoomService) requireMembership(caller *models.User, roomID uint) error {
	if caller.RoomID == nil {
		return ErrNotInRoom
	}
	if *caller.RoomID != roomID {
		return ErrForbidden
	}
	return nil
}

// setState 切換房間階段並重新排定下一次自動轉換的時間
func (s *RoomService) setState(room *models.Room, state models.RoomState, now time.Time) {
	room.State = state
	room.NextStateUpdateAt = now.Add(s.schedule.Dwell(state))
}

// cascadeMemberState 把房間內觀戰者以外的所有成員轉為指定狀態
func (s *RoomService) cascadeMemberState(tx *repository.Repositories, roomID uint, state models.UserState) error {
	users, err := tx.User.FindByRoomID(roomID)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].State == models.UserStateWatcher {
			continue
		}
		users[i].State = state
		if err := tx.User.Update(&users[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *RoomService) convertModelToRoom(model *models.Room) *Room {
	users := make([]UserSummary, 0, len(model.Users))
	for i := range model.Users {
		users = append(users, convertModelToUserSummary(&model.Users[i]))
	}

	return &Room{
		ID:                model.ID,
		Name:              model.Name,
		Explanation:       model.Explanation,
		DetailOfRole:      model.DetailOfRole,
		State:             model.State,
		NextStateUpdateAt: model.NextStateUpdateAt.Format(models.TimestampLayout),
		CreatedAt:         model.CreatedAt.Format(models.TimestampLayout),
		UpdatedAt:         model.UpdatedAt.Format(models.TimestampLayout),
		Users:             users,
	}
}
