// File: internal/api/reservation_response.go
package api

// swagger:model api.ReservationResponse
type ReservationResponse struct {
	ID         int    `json:"id" example:"15"`
	GuestID    int    `json:"guest_id" example:"4"`
	PropertyID int    `json:"property_id" example:"3"`
	StartDate  string `json:"start_date" example:"2026-09-01"`
	EndDate    string `json:"end_date" example:"2026-09-08"`
}

// swagger:model api.GuestReservationResponse
type GuestReservationResponse struct {
	ReservationResponse
	Property      PropertyResponse `json:"property"`
	AverageRating float64          `json:"average_rating" example:"4.2"`
}
