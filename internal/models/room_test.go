package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRoomStateTable(t *testing.T) {
	cases := []struct {
		state RoomState
		next  RoomState
		ok    bool
	}{
		{RoomStateBeforeGame, RoomStateClosed, true},
		{RoomStateFirstNight, RoomStateSecondMorning, true},
		{RoomStateSecondMorning, RoomStateDayTime, true},
		{RoomStateDayTime, RoomStateSunSet, true},
		{RoomStateSunSet, RoomStateNight, true},
		{RoomStateNight, RoomStateMorning, true},
		{RoomStateMorning, RoomStateDayTime, true},
		{RoomStateAfterGame, RoomStateClosed, true},
		{RoomStateClosed, "", false},
		{RoomState("NoSuchState"), "", false},
	}

	for _, tc := range cases {
		next, ok := NextRoomState(tc.state)
		assert.Equal(t, tc.ok, ok, "state %s", tc.state)
		if tc.ok {
			assert.Equal(t, tc.next, next, "state %s", tc.state)
		}
	}
}

// 晝夜循環永遠不會自己走到 Closed 或 BeforeGame
func TestDayNightCycleNeverTerminates(t *testing.T) {
	state := RoomStateDayTime
	visited := []RoomState{state}
	for i := 0; i < 20; i++ {
		next, ok := NextRoomState(state)
		assert.True(t, ok)
		assert.NotEqual(t, RoomStateClosed, next)
		assert.NotEqual(t, RoomStateBeforeGame, next)
		state = next
		visited = append(visited, state)
	}

	assert.Equal(t, []RoomState{
		RoomStateDayTime, RoomStateSunSet, RoomStateNight, RoomStateMorning,
	}, visited[:4])
	assert.Equal(t, RoomStateDayTime, visited[4])
}

func TestScheduleFromMinutes(t *testing.T) {
	schedule := ScheduleFromMinutes(map[string]float64{
		"DayTime":     1,
		"Morning":     0.5,
		"NoSuchState": 7,  // 未知階段被忽略
		"Night":       -3, // 非正值被忽略
	})

	assert.Equal(t, time.Minute, schedule.Dwell(RoomStateDayTime))
	assert.Equal(t, 30*time.Second, schedule.Dwell(RoomStateMorning))
	assert.Equal(t, 3*time.Minute, schedule.Dwell(RoomStateNight))
	// 未覆寫的階段使用預設值
	assert.Equal(t, 30*time.Minute, schedule.Dwell(RoomStateBeforeGame))
}

func TestDwellFallsBackForBrokenSchedule(t *testing.T) {
	schedule := StateSchedule{RoomStateDayTime: 0}

	assert.Equal(t, 5*time.Minute, schedule.Dwell(RoomStateDayTime))
	assert.Equal(t, 2*time.Minute, schedule.Dwell(RoomStateSunSet))
	assert.Positive(t, schedule.Dwell(RoomState("NoSuchState")))
}
