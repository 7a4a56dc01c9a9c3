package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"werewolf_web/internal/models"
)

// 無人觸碰 95 分鐘的新房間必須一路補課到 Closed，而不是停在 BeforeGame
func TestSyncStatesCatchUp(t *testing.T) {
	services, repos := newTestServices(t)

	t0 := time.Now()
	room := createTestRoom(t, repos, models.RoomStateBeforeGame, t0.Add(30*time.Minute))

	services.Room.SyncStates(t0.Add(95 * time.Minute))

	assert.Equal(t, models.RoomStateClosed, reloadRoom(t, repos, room.ID).State)
}

// 以相同的 now 重複呼叫不得產生額外的轉換
func TestSyncStatesIdempotent(t *testing.T) {
	services, repos := newTestServices(t)

	now := time.Now()
	room := createTestRoom(t, repos, models.RoomStateDayTime, now)

	services.Room.SyncStates(now)
	first := reloadRoom(t, repos, room.ID)
	require.Equal(t, models.RoomStateSunSet, first.State)

	services.Room.SyncStates(now)
	second := reloadRoom(t, repos, room.ID)

	assert.Equal(t, first.State, second.State)
	assert.True(t, second.NextStateUpdateAt.Equal(first.NextStateUpdateAt))
}

// 晝夜循環按停留時間逐步推進時，狀態序列必須是
// DayTime, SunSet, Night, Morning, DayTime, … 且永遠不會到達 Closed 或 BeforeGame
func TestSyncStatesDayNightCycle(t *testing.T) {
	services, repos := newTestServices(t)

	now := time.Now()
	room := createTestRoom(t, repos, models.RoomStateDayTime, now)

	var visited []models.RoomState
	for i := 0; i < 8; i++ {
		current := reloadRoom(t, repos, room.ID)
		services.Room.SyncStates(current.NextStateUpdateAt)
		current = reloadRoom(t, repos, room.ID)
		visited = append(visited, current.State)

		assert.NotEqual(t, models.RoomStateClosed, current.State)
		assert.NotEqual(t, models.RoomStateBeforeGame, current.State)
	}

	assert.Equal(t, []models.RoomState{
		models.RoomStateSunSet, models.RoomStateNight, models.RoomStateMorning, models.RoomStateDayTime,
		models.RoomStateSunSet, models.RoomStateNight, models.RoomStateMorning, models.RoomStateDayTime,
	}, visited)
}

// Closed 是終端狀態，經過再久也不會改變
func TestSyncStatesClosedIsTerminal(t *testing.T) {
	services, repos := newTestServices(t)

	now := time.Now()
	room := createTestRoom(t, repos, models.RoomStateClosed, now.Add(-time.Hour))

	services.Room.SyncStates(now.Add(1000 * time.Hour))

	assert.Equal(t, models.RoomStateClosed, reloadRoom(t, repos, room.ID).State)
}

// 純粹由時間驅動的階段漂移不改變任何成員的狀態
func TestSyncStatesNeverTouchesMembers(t *testing.T) {
	services, repos := newTestServices(t)

	now := time.Now()
	room := createTestRoom(t, repos, models.RoomStateDayTime, now)
	alive := createTestUser(t, repos, "Tommy", models.UserStateAlive, &room.ID)
	watcher := createTestUser(t, repos, "Steffany", models.UserStateWatcher, &room.ID)

	// 跨越多個轉換
	services.Room.SyncStates(now.Add(30 * time.Minute))

	require.True(t, reloadRoom(t, repos, room.ID).State.InGame())
	assert.Equal(t, models.UserStateAlive, reloadUser(t, repos, alive.ID).State)
	assert.Equal(t, models.UserStateWatcher, reloadUser(t, repos, watcher.ID).State)
}

// 排程欄位損壞的房間被跳過，不影響其他房間的推進
func TestSyncStatesSkipsRoomWithoutSchedule(t *testing.T) {
	services, repos := newTestServices(t)

	now := time.Now()
	broken := createTestRoom(t, repos, models.RoomStateBeforeGame, time.Time{})
	healthy := createTestRoom(t, repos, models.RoomStateBeforeGame, now.Add(-time.Minute))

	services.Room.SyncStates(now)

	assert.Equal(t, models.RoomStateBeforeGame, reloadRoom(t, repos, broken.ID).State)
	assert.Equal(t, models.RoomStateClosed, reloadRoom(t, repos, healthy.ID).State)
}
