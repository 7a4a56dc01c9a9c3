package models

import (
	"time"

	"gorm.io/gorm"
)

// Room 表示一個人狼遊戲房間
type Room struct {
	gorm.Model
	Name              string    `json:"name"`
	Explanation       string    `json:"explanation"`    // 房間說明文字
	DetailOfRole      string    `json:"detail_of_role"` // 役職配置的說明
	State             RoomState `gorm:"type:varchar(20)" json:"state"`
	NextStateUpdateAt time.Time `json:"next_state_update_at"` // 下一次自動階段轉換的預定時間
	Users             []User    `gorm:"foreignKey:RoomID" json:"users"`
	Messages          []Message `gorm:"foreignKey:RoomID" json:"-"`
}

// RoomState 定義房間階段的類型
type RoomState string

const (
	RoomStateBeforeGame    RoomState = "BeforeGame"    // 遊戲開始前的等待階段
	RoomStateFirstNight    RoomState = "FirstNight"    // 第一個夜晚
	RoomStateSecondMorning RoomState = "SecondMorning" // 第二天的黎明
	RoomStateDayTime       RoomState = "DayTime"       // 白天的討論時間
	RoomStateSunSet        RoomState = "SunSet"        // 日落
	RoomStateNight         RoomState = "Night"         // 夜晚
	RoomStateMorning       RoomState = "Morning"       // 黎明
	RoomStateAfterGame     RoomState = "AfterGame"     // 遊戲結束後的感想階段
	RoomStateClosed        RoomState = "Closed"        // 已關閉（終端狀態）
)

// roomStateSuccessor 定義每個階段的線性後繼。
// 用資料表而非條件分支來表達，Closed 沒有後繼所以不在表中。
// 注意 Morning 會回到 DayTime 形成晝夜循環，遊戲中的房間不會自動關閉。
var roomStateSuccessor = map[RoomState]RoomState{
	RoomStateBeforeGame:    RoomStateClosed,
	RoomStateFirstNight:    RoomStateSecondMorning,
	RoomStateSecondMorning: RoomStateDayTime,
	RoomStateDayTime:       RoomStateSunSet,
	RoomStateSunSet:        RoomStateNight,
	RoomStateNight:         RoomStateMorning,
	RoomStateMorning:       RoomStateDayTime,
	RoomStateAfterGame:     RoomStateClosed,
}

// NextRoomState 查詢指定階段的後繼階段。
// 對於終端狀態（或未知狀態）回傳 false。
func NextRoomState(state RoomState) (RoomState, bool) {
	next, ok := roomStateSuccessor[state]
	return next, ok
}

// InGame 回報該階段是否屬於遊戲進行中的晝夜循環
func (s RoomState) InGame() bool {
	switch s {
	case RoomStateFirstNight, RoomStateSecondMorning, RoomStateDayTime,
		RoomStateSunSet, RoomStateNight, RoomStateMorning:
		return true
	}
	return false
}

// defaultStateDwell 定義每個階段的預設停留時間
var defaultStateDwell = map[RoomState]time.Duration{
	RoomStateBeforeGame:    30 * time.Minute,
	RoomStateFirstNight:    3 * time.Minute,
	RoomStateSecondMorning: 15 * time.Second,
	RoomStateDayTime:       5 * time.Minute,
	RoomStateSunSet:        2 * time.Minute,
	RoomStateNight:         3 * time.Minute,
	RoomStateMorning:       15 * time.Second,
	RoomStateAfterGame:     5 * time.Minute,
	RoomStateClosed:        5 * time.Minute, // Closed 沒有後繼，這個值不會產生轉換
}

// StateSchedule 保存每個階段的停留時間，可由部署配置覆寫
type StateSchedule map[RoomState]time.Duration

// DefaultStateSchedule 回傳預設的階段時程表
func DefaultStateSchedule() StateSchedule {
	schedule := make(StateSchedule, len(defaultStateDwell))
	for state, dwell := range defaultStateDwell {
		schedule[state] = dwell
	}
	return schedule
}

// ScheduleFromMinutes 從配置的分鐘數建立階段時程表。
// 未知的階段名稱與非正值會被忽略，對應階段維持預設值。
func ScheduleFromMinutes(overrides map[string]float64) StateSchedule {
	schedule := DefaultStateSchedule()
	for name, minutes := range overrides {
		state := RoomState(name)
		if _, ok := defaultStateDwell[state]; !ok || minutes <= 0 {
			continue
		}
		schedule[state] = time.Duration(minutes * float64(time.Minute))
	}
	return schedule
}

// Dwell 查詢指定階段的停留時間。
// 配置缺漏或非正值一律退回預設值，避免推進迴圈因為零停留時間而空轉。
func (s StateSchedule) Dwell(state RoomState) time.Duration {
	if d, ok := s[state]; ok && d > 0 {
		return d
	}
	if d, ok := defaultStateDwell[state]; ok {
		return d
	}
	return time.Minute
}

// TimestampLayout 是對外傳輸時間戳的固定格式（微秒精度、可排序）
const TimestampLayout = "2006-01-02T15:04:05.000000"
