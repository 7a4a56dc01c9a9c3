package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"werewolf_web/internal/models"
)

func TestCreateUserIssuesSessionToken(t *testing.T) {
	services, _ := newTestServices(t)

	user, err := services.User.CreateUser("Tommy", "Friday")
	require.NoError(t, err)

	assert.NotEmpty(t, user.SessionToken)
	assert.Equal(t, models.UserStateOutside, user.State)

	other, err := services.User.CreateUser("Romance", "Shifter")
	require.NoError(t, err)
	assert.NotEqual(t, user.SessionToken, other.SessionToken)
}

func TestResolveSession(t *testing.T) {
	services, _ := newTestServices(t)

	user, err := services.User.CreateUser("Tommy", "Friday")
	require.NoError(t, err)

	resolved, err := services.User.ResolveSession(user.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	_, err = services.User.ResolveSession("")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = services.User.ResolveSession("no-such-token")
	assert.ErrorIs(t, err, ErrUnknownSession)
}

// 同房間成員列表只露出化名，不露出本名
func TestListRoomMates(t *testing.T) {
	services, repos := newTestServices(t)

	room := createTestRoom(t, repos, models.RoomStateBeforeGame, time.Now().Add(30*time.Minute))
	userA := createTestUser(t, repos, "Tommy", models.UserStateOutOfPlay, &room.ID)
	userB := createTestUser(t, repos, "Romance", models.UserStateWatcher, &room.ID)
	createTestUser(t, repos, "Ronin", models.UserStateOutside, nil)

	mates, err := services.User.ListRoomMates(userA, 0, 100)
	require.NoError(t, err)

	require.Len(t, mates, 2)
	assert.Equal(t, userA.ID, mates[0].ID)
	assert.Equal(t, userA.Alias, mates[0].Alias)
	assert.Equal(t, userB.ID, mates[1].ID)
	assert.Equal(t, models.UserStateWatcher, mates[1].State)
}
