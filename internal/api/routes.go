package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"werewolf_web/internal/api/handlers"
	"werewolf_web/internal/middleware"
	"werewolf_web/internal/models"
	"werewolf_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	userHandler := handlers.NewUserHandler(services.User)
	roomHandler := handlers.NewRoomHandler(services.Room)
	messageHandler := handlers.NewMessageHandler(services.Message)
	wsHandler := handlers.NewWebSocketHandler(services.WebSocket)

	// API 路由群組
	// PhaseSync 掛在整個群組上：任何請求都會先把所有房間推進到當下應有的階段
	api := r.Group("/api")
	api.Use(middleware.PhaseSync(services.Room))

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 用戶註冊
		api.POST("/users", userHandler.Register)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// 時間查詢，輪詢階段變化的客戶端使用；
		// 副作用是經由 PhaseSync 推進所有房間的階段
		api.GET("/time", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"now": time.Now().Format(models.TimestampLayout),
			})
		})

		// 房間瀏覽不需要登入，讓未註冊的玩家也能挑選房間
		api.GET("/rooms", roomHandler.ListRooms)
		api.GET("/rooms/:id", roomHandler.GetRoom)
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.SessionAuth(services.User))
	{
		// 用戶相關
		authorized.GET("/me", userHandler.Me)
		authorized.GET("/users", userHandler.ListRoomMates)

		// 同房間的消息
		authorized.GET("/messages", messageHandler.ListMessages)
		authorized.POST("/messages", messageHandler.CreateMessage)

		// 遊戲房間相關
		rooms := authorized.Group("/rooms")
		{
			// 基本操作
			rooms.POST("", roomHandler.CreateRoom)                   // 創建房間
			rooms.PATCH("/:id/settings", roomHandler.UpdateSettings) // 更新房間設定

			// 房間參與
			rooms.POST("/:id/enter", roomHandler.EnterRoom) // 加入房間
			rooms.POST("/:id/exit", roomHandler.ExitRoom)   // 離開房間

			// 遊戲進行
			rooms.POST("/:id/game/start", roomHandler.StartGame) // 開始遊戲
			rooms.POST("/:id/game/end", roomHandler.EndGame)     // 結束遊戲
			rooms.POST("/:id/close", roomHandler.CloseRoom)      // 關閉房間

			// WebSocket 連接
			rooms.GET("/:id/ws", wsHandler.HandleWebSocket) // WebSocket 連接點
		}
	}
}
