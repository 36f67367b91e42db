// File: internal/model/reservation.go
package model

import "time"

type Reservation struct {
	ID         int       `db:"id" json:"id"`
	GuestID    int       `db:"guest_id" json:"guest_id"`
	PropertyID int       `db:"property_id" json:"property_id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
}

// GuestReservation 是「已完成訂單」查詢的結果列：訂單加上物件與評分平均值。
type GuestReservation struct {
	Reservation
	Property      Property `json:"property"`
	AverageRating float64  `json:"average_rating"`
}
