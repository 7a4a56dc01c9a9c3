package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"werewolf_web/internal/models"
	"werewolf_web/internal/repository"
	"werewolf_web/internal/storage"
)

// newTestServices 建立一組跑在記憶體 SQLite 上的服務，
// 對應原系統用同一套資料層跑真實交易的測試方式
func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()

	db, err := storage.NewSQLiteDB(t.Name())
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Room{}, &models.Message{}))

	repos := repository.NewRepositories(db)
	return NewServices(repos, models.DefaultStateSchedule()), repos
}

func createTestRoom(t *testing.T, repos *repository.Repositories, state models.RoomState, nextUpdateAt time.Time) *models.Room {
	t.Helper()

	room := &models.Room{
		Name:              "room_1",
		State:             state,
		NextStateUpdateAt: nextUpdateAt,
	}
	require.NoError(t, repos.Room.Create(room))
	return room
}

func createTestUser(t *testing.T, repos *repository.Repositories, name string, state models.UserState, roomID *uint) *models.User {
	t.Helper()

	user := &models.User{
		Name:   name,
		Alias:  name + "_alias",
		State:  state,
		RoomID: roomID,
	}
	require.NoError(t, repos.User.Create(user))
	return user
}

func reloadRoom(t *testing.T, repos *repository.Repositories, id uint) *models.Room {
	t.Helper()

	room, err := repos.Room.FindByID(id)
	require.NoError(t, err)
	return room
}

func reloadUser(t *testing.T, repos *repository.Repositories, id uint) *models.User {
	t.Helper()

	user, err := repos.User.FindByID(id)
	require.NoError(t, err)
	return user
}
