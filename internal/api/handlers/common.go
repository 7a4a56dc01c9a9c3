package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"werewolf_web/internal/middleware"
	"werewolf_web/internal/models"
	"werewolf_web/internal/service"
)

// currentUser 從上下文中取出會話中間件解析好的用戶
func currentUser(c *gin.Context) *models.User {
	value, _ := c.Get(middleware.ContextUserKey)
	user, _ := value.(*models.User)
	return user
}

// respondError 把服務層的錯誤種類映射為對應的 HTTP 狀態碼
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrUnknownSession):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyInRoom):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNotInRoom):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrRoomClosed),
		errors.Is(err, service.ErrGameInProgress):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrPreconditionFailed):
		status = http.StatusPreconditionFailed
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseRoomID 解析路徑參數中的房間 ID
func parseRoomID(c *gin.Context) (uint, bool) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "不存在的房間ID"})
		return 0, false
	}
	return uint(roomID), true
}

// parsePage 解析分頁參數，limit 預設 100 且不超過 100
func parsePage(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return offset, limit
}
