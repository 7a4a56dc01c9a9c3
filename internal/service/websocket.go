package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"werewolf_web/internal/models"
	"werewolf_web/internal/repository"
)

// Client 代表一個 WebSocket 客戶端連接
type Client struct {
	Conn     *websocket.Conn      // WebSocket 連接
	UserID   uint                 // 用戶 ID
	RoomID   uint                 // 房間 ID
	SendChan chan *models.Message // 消息發送通道，用於異步傳送消息
	done     chan struct{}        // removeClient 關閉此通道，通知 writePump 與廣播停止
}

// WebSocketManager 管理所有的 WebSocket 連接和消息傳遞
type WebSocketManager struct {
	clients     map[uint]map[*Client]bool // 兩層 map: roomID -> client -> bool
	clientsMux  sync.RWMutex              // 用於保護 clients map 的讀寫鎖
	messageRepo repository.MessageRepository
}

// NewWebSocketManager 創建並初始化新的 WebSocket 管理器
func NewWebSocketManager(messageRepo repository.MessageRepository) *WebSocketManager {
	return &WebSocketManager{
		clients:     make(map[uint]map[*Client]bool),
		messageRepo: messageRepo,
	}
}

// HandleClient 處理一個已建立的客戶端連接，阻塞直到連接關閉
func (s *WebSocketManager) HandleClient(client *Client) {
	client.SendChan = make(chan *models.Message, 256)
	client.done = make(chan struct{})
	s.addClient(client)

	// 確保連接關閉時清理資源
	// SendChan 永遠不關閉，廣播端才不會寫入已關閉的通道
	defer func() {
		s.removeClient(client)
		client.Conn.Close()
	}()

	// 啟動讀寫處理
	go s.writePump(client)
	s.readPump(client)
}

// incomingMessage 定義客戶端傳入消息的結構
type incomingMessage struct {
	Content     string `json:"content"`
	TargetGroup string `json:"target_group"`
}

// readPump 持續監聽並處理從客戶端接收的消息
func (s *WebSocketManager) readPump(client *Client) {
	client.Conn.SetReadLimit(4096) // 設置最大消息大小為 4KB
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}

		// 解析接收到的消息
		var in incomingMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			log.Printf("message parse error: %v", err)
			continue
		}

		msg := models.NewRoomMessage(client.RoomID, client.UserID, in.Content, in.TargetGroup)
		if err := s.messageRepo.Create(&msg); err != nil {
			log.Printf("message save error: %v", err)
			continue
		}

		// 廣播消息給房間內所有用戶
		s.BroadcastToRoom(client.RoomID, &msg)
	}
}

// writePump 處理向客戶端發送消息的邏輯
func (s *WebSocketManager) writePump(client *Client) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case message := <-client.SendChan:
			// 設置寫入超時
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			// 獲取寫入器並發送消息
			w, err := client.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}

			// JSON 編碼
			messageBytes, err := json.Marshal(message)
			if err != nil {
				log.Printf("message encoding error: %v", err)
				continue
			}

			if _, err := w.Write(messageBytes); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}

		case <-client.done:
			// 客戶端已被移除，通知對端後結束
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			// 發送心跳包
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// BroadcastToRoom 向房間內的所有客戶端廣播消息
func (s *WebSocketManager) BroadcastToRoom(roomID uint, message *models.Message) {
	// 持鎖期間複製客戶端列表，避免遍歷時與增刪操作衝突
	s.clientsMux.RLock()
	targets := make([]*Client, 0, len(s.clients[roomID]))
	for client := range s.clients[roomID] {
		targets = append(targets, client)
	}
	s.clientsMux.RUnlock()

	for _, client := range targets {
		select {
		case client.SendChan <- message:
			// 消息成功加入發送隊列
		case <-client.done:
			// 客戶端已被移除
		default:
			// 客戶端消息隊列已滿，關閉連接
			s.removeClient(client)
			client.Conn.Close()
		}
	}
}

// BroadcastSystemMessage 發送系統消息到指定房間並存入資料庫
func (s *WebSocketManager) BroadcastSystemMessage(roomID uint, content string) {
	msg := models.NewSystemMessage(roomID, content)
	if err := s.messageRepo.Create(&msg); err != nil {
		log.Printf("system message save error: %v", err)
	}
	s.BroadcastToRoom(roomID, &msg)
}

// addClient 安全地添加新的客戶端連接
func (s *WebSocketManager) addClient(client *Client) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	if s.clients[client.RoomID] == nil {
		s.clients[client.RoomID] = make(map[*Client]bool)
	}
	s.clients[client.RoomID][client] = true
}

// removeClient 安全地移除客戶端連接，重複呼叫不會重複關閉 done
func (s *WebSocketManager) removeClient(client *Client) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	clients, ok := s.clients[client.RoomID]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.done)

	// 如果房間空了，刪除房間
	if len(clients) == 0 {
		delete(s.clients, client.RoomID)
	}
}

// GetRoomClients 獲取指定房間的在線客戶端數量
func (s *WebSocketManager) GetRoomClients(roomID uint) int {
	s.clientsMux.RLock()
	defer s.clientsMux.RUnlock()

	return len(s.clients[roomID])
}
