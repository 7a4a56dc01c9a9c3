package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"werewolf_web/internal/models"
)

func newTestClient(roomID uint, buffer int) *Client {
	return &Client{
		UserID:   1,
		RoomID:   roomID,
		SendChan: make(chan *models.Message, buffer),
		done:     make(chan struct{}),
	}
}

// 廣播與客戶端增刪並發執行時不得互相干擾
func TestBroadcastToRoomDuringClientChurn(t *testing.T) {
	services, repos := newTestServices(t)
	room := createTestRoom(t, repos, models.RoomStateDayTime, time.Now().Add(time.Hour))
	manager := services.WebSocket

	msg := models.NewSystemMessage(room.ID, "天黑請閉眼")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			manager.BroadcastToRoom(room.ID, &msg)
		}
	}()

	for i := 0; i < 500; i++ {
		client := newTestClient(room.ID, 1024)
		manager.addClient(client)
		manager.removeClient(client)
	}
	wg.Wait()

	assert.Zero(t, manager.GetRoomClients(room.ID))
}

func TestRemoveClientIsIdempotent(t *testing.T) {
	services, repos := newTestServices(t)
	room := createTestRoom(t, repos, models.RoomStateDayTime, time.Now().Add(time.Hour))
	manager := services.WebSocket

	client := newTestClient(room.ID, 1)
	manager.addClient(client)
	assert.Equal(t, 1, manager.GetRoomClients(room.ID))

	manager.removeClient(client)
	manager.removeClient(client) // 第二次呼叫應為 no-op
	assert.Zero(t, manager.GetRoomClients(room.ID))
}

// 已移除客戶端的 SendChan 滿了也不能讓廣播阻塞或觸碰連接
func TestBroadcastSkipsRemovedClientWithFullQueue(t *testing.T) {
	services, repos := newTestServices(t)
	room := createTestRoom(t, repos, models.RoomStateNight, time.Now().Add(time.Hour))
	manager := services.WebSocket

	stale := newTestClient(room.ID, 0)
	manager.addClient(stale)

	live := newTestClient(room.ID, 1)
	manager.addClient(live)

	manager.removeClient(stale)

	msg := models.NewSystemMessage(room.ID, "天亮了")
	manager.BroadcastToRoom(room.ID, &msg)

	assert.Len(t, live.SendChan, 1)
	assert.Empty(t, stale.SendChan)
}
