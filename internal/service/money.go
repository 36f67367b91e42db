// File: internal/service/money.go
package service

// CentsFromDollars 把以元為單位的金額轉成最小貨幣單位（分）。
// 資料表的 cost_per_night 一律存分，對外的價格條件一律收元，
// 轉換只在這裡發生。
func CentsFromDollars(dollars int) int {
	return dollars * 100
}
