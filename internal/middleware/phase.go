package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"werewolf_web/internal/service"
)

// PhaseSync 是一個 Gin 中間件，在處理每個請求之前把所有房間的階段
// 推進到當下時刻應有的狀態。
//
// 系統沒有專用的排程進程，階段的推進完全搭在請求流量上（惰性排程）。
// 任何請求都可能觸發任何房間的轉換，推進本身是冪等的，
// 兩個請求競爭同一個到期轉換時第二次套用會是無操作。
func PhaseSync(roomService *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomService.SyncStates(time.Now())
		c.Next()
	}
}
