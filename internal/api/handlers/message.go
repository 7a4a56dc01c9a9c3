package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"werewolf_web/internal/service"
)

// MessageHandler 處理與房間消息相關的請求
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler 創建一個新的 MessageHandler 實例
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// CreateMessage 在呼叫者所在的房間發送一條消息
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var input struct {
		Content     string `json:"content" binding:"required"`
		TargetGroup string `json:"target_group"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.CreateMessage(currentUser(c), input.Content, input.TargetGroup)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages 列出呼叫者所在房間的消息
func (h *MessageHandler) ListMessages(c *gin.Context) {
	offset, limit := parsePage(c)
	targetGroup := c.Query("target_group")

	messages, err := h.messageService.ListMessages(currentUser(c), targetGroup, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
