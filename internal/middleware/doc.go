// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含了各種中間件函數，用於在 HTTP 請求處理過程中執行額外的操作。
// 包括會話解析，以及在每個請求前惰性推進房間階段的 PhaseSync。
package middleware
