package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"werewolf_web/internal/middleware"
	"werewolf_web/internal/service"
)

// UserHandler 處理與用戶相關的請求
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 創建一個新的 UserHandler 實例
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterInput 定義註冊請求的結構
type RegisterInput struct {
	Name  string `json:"name" binding:"required"`
	Alias string `json:"alias"`
}

// Register 處理用戶註冊，成功時把會話憑證寫入 cookie
func (h *UserHandler) Register(c *gin.Context) {
	// 已經持有會話憑證的客戶端不能重複註冊
	if _, err := c.Cookie(middleware.SessionCookieName); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "you have already created a user"})
		return
	}

	var input RegisterInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.CreateUser(input.Name, input.Alias)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "創建使用者失敗"})
		return
	}

	c.SetCookie(middleware.SessionCookieName, user.SessionToken, 0, "/", "", false, true)
	c.JSON(http.StatusCreated, service.ConvertModelToProfile(user))
}

// Me 回傳呼叫者自己的用戶資料
func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, service.ConvertModelToProfile(currentUser(c)))
}

// ListRoomMates 列出與呼叫者同房間的用戶
func (h *UserHandler) ListRoomMates(c *gin.Context) {
	offset, limit := parsePage(c)

	users, err := h.userService.ListRoomMates(currentUser(c), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
