// File: internal/model/review.go
package model

type Review struct {
	ID            int    `db:"id" json:"id"`
	GuestID       int    `db:"guest_id" json:"guest_id"`
	PropertyID    int    `db:"property_id" json:"property_id"`
	ReservationID int    `db:"reservation_id" json:"reservation_id"`
	Rating        int    `db:"rating" json:"rating"`
	Message       string `db:"message" json:"message"`
}
