package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"werewolf_web/internal/service"
)

// SessionCookieName 是客戶端保存會話憑證的 cookie 名稱
const SessionCookieName = "session_token"

// ContextUserKey 是已解析用戶在 gin 上下文中的鍵
const ContextUserKey = "currentUser"

// SessionAuth 是一個 Gin 中間件，從 cookie 讀取會話憑證並解析為用戶。
// 憑證只是資料庫中的查詢鍵，不涉及簽名驗證。
func SessionAuth(userService *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": service.ErrNotAuthenticated.Error()})
			c.Abort()
			return
		}

		user, resolveErr := userService.ResolveSession(token)
		if resolveErr != nil {
			if errors.Is(resolveErr, service.ErrUnknownSession) {
				c.JSON(http.StatusNotFound, gin.H{"error": resolveErr.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve session"})
			}
			c.Abort()
			return
		}

		// 將用戶信息設置到上下文中
		c.Set(ContextUserKey, user)
		c.Next() // 繼續處理請求
	}
}
