package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"werewolf_web/internal/models"
)

func TestCreateMessageRequiresRoom(t *testing.T) {
	services, repos := newTestServices(t)

	outsider := createTestUser(t, repos, "Ronin", models.UserStateOutside, nil)

	_, err := services.Message.CreateMessage(outsider, "hello", "")
	assert.ErrorIs(t, err, ErrNotInRoom)
}

func TestCreateAndListMessages(t *testing.T) {
	services, repos := newTestServices(t)

	room := createTestRoom(t, repos, models.RoomStateDayTime, time.Now().Add(5*time.Minute))
	user := createTestUser(t, repos, "Tommy", models.UserStateAlive, &room.ID)

	created, err := services.Message.CreateMessage(user, "誰が人狼だと思う？", "")
	require.NoError(t, err)
	assert.Equal(t, room.ID, created.RoomID)
	assert.Equal(t, user.ID, created.UserID)

	_, err = services.Message.CreateMessage(user, "今夜の相談", "werewolf")
	require.NoError(t, err)

	all, err := services.Message.ListMessages(user, "", 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// 依目標群體過濾
	wolves, err := services.Message.ListMessages(user, "werewolf", 0, 100)
	require.NoError(t, err)
	require.Len(t, wolves, 1)
	assert.Equal(t, "今夜の相談", wolves[0].Content)
}
