package service

import (
	"log"
	"time"

	"werewolf_web/internal/models"
)

// SyncStates 把所有房間的階段推進到 now 時刻應有的狀態。
//
// 系統沒有背景排程器，這個方法由中介層在每個請求開頭呼叫（惰性排程）。
// 它是冪等的：以相同的 now 重複呼叫不會產生額外的轉換，因為
// NextStateUpdateAt 單調遞增且比較條件是「不晚於 now」。
// 它只改變房間階段，絕不改變成員狀態，成員連鎖只屬於明確的操作轉換。
func (s *RoomService) SyncStates(now time.Time) {
	rooms, err := s.repos.Room.FindAll()
	if err != nil {
		log.Printf("phase sync: failed to load rooms: %v", err)
		return
	}

	for i := range rooms {
		room := &rooms[i]
		if !s.advanceRoom(room, now) {
			continue
		}
		// 每個有變化的房間各寫入一次；單一房間失敗不影響其他房間
		if err := s.repos.Room.Update(room); err != nil {
			log.Printf("phase sync: failed to save room %d: %v", room.ID, err)
		}
	}
}

// advanceRoom 對單一房間套用所有到期的轉換，回報房間是否有變化。
//
// 補課迴圈：房間可能跨越多個停留期間都沒有被任何請求觸碰，
// 必須一路推進到「持續觀察時鐘的情況下此刻應處的階段」，而不是只走一步。
// 排程欄位損壞（零值時間戳）的房間記錄後跳過，視為已是最新。
func (s *RoomService) advanceRoom(room *models.Room, now time.Time) bool {
	if room.NextStateUpdateAt.IsZero() {
		if _, ok := models.NextRoomState(room.State); ok {
			log.Printf("phase sync: room %d has no schedule, skipping", room.ID)
		}
		return false
	}

	changed := false
	for {
		next, ok := models.NextRoomState(room.State)
		if !ok || room.NextStateUpdateAt.After(now) {
			break
		}
		room.State = next
		room.NextStateUpdateAt = room.NextStateUpdateAt.Add(s.schedule.Dwell(next))
		changed = true
	}
	return changed
}
