package service

import "errors"

// 呼叫端可以用 errors.Is 區分的錯誤種類。
// 這些都是呼叫端可以自行修正的前置條件錯誤，不會自動重試。
var (
	// ErrNotAuthenticated 表示請求沒有附上會話憑證
	ErrNotAuthenticated = errors.New("you have not created a user yet")

	// ErrUnknownSession 表示會話憑證無法解析為已存在的用戶
	ErrUnknownSession = errors.New("your session token is invalid")

	// ErrAlreadyInRoom 表示用戶已經在一個房間中
	ErrAlreadyInRoom = errors.New("you have already entered a room")

	// ErrNotInRoom 表示用戶不在任何房間中
	ErrNotInRoom = errors.New("you have not entered a room")

	// ErrForbidden 表示用戶不是目標房間的成員
	ErrForbidden = errors.New("you are not a member of this room")

	// ErrRoomClosed 表示目標房間已經關閉
	ErrRoomClosed = errors.New("this room is closed")

	// ErrGameInProgress 表示遊戲進行中，只能以觀戰者身份進入
	ErrGameInProgress = errors.New("the game has started, you can only enter the room as a watcher")

	// ErrPreconditionFailed 表示房間不在該操作要求的階段
	ErrPreconditionFailed = errors.New("the room is not in the required state")
)
