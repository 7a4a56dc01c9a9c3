package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"werewolf_web/internal/service"
)

// RoomHandler 處理與遊戲房間相關的請求
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler 創建一個新的 RoomHandler 實例
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoom 處理創建新房間的請求
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required"`
		Explanation  string `json:"explanation"`
		DetailOfRole string `json:"detail_of_role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(input.Name, input.Explanation, input.DetailOfRole)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "創建房間失敗"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ListRooms 處理獲取房間列表的請求
func (h *RoomHandler) ListRooms(c *gin.Context) {
	offset, limit := parsePage(c)

	rooms, err := h.roomService.ListRooms(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法搜尋房間列表"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoom 處理獲取房間訊息的請求
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateSettings 處理更新房間設定的請求，不影響階段與排程
func (h *RoomHandler) UpdateSettings(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	var input service.RoomSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.UpdateSettings(currentUser(c), roomID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// EnterRoom 處理加入房間的請求，isWatcher=true 時以觀戰者身份加入
func (h *RoomHandler) EnterRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	asWatcher := c.Query("isWatcher") == "true"

	room, err := h.roomService.EnterRoom(currentUser(c), roomID, asWatcher)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// ExitRoom 處理離開房間的請求
func (h *RoomHandler) ExitRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	caller := currentUser(c)
	if caller.RoomID != nil && *caller.RoomID != roomID {
		respondError(c, service.ErrForbidden)
		return
	}

	if err := h.roomService.ExitRoom(caller); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.ConvertModelToProfile(caller))
}

// StartGame 處理開始遊戲的請求
func (h *RoomHandler) StartGame(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	room, err := h.roomService.StartGame(currentUser(c), roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// EndGame 處理結束遊戲的請求
func (h *RoomHandler) EndGame(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	room, err := h.roomService.EndGame(currentUser(c), roomID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// CloseRoom 處理關閉房間的請求
func (h *RoomHandler) CloseRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	if err := h.roomService.CloseRoom(currentUser(c), roomID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": "ok"})
}
