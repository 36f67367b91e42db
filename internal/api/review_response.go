// File: internal/api/review_response.go
package api

// swagger:model api.ReviewResponse
type ReviewResponse struct {
	ID            int    `json:"id" example:"5"`
	GuestID       int    `json:"guest_id" example:"4"`
	PropertyID    int    `json:"property_id" example:"3"`
	ReservationID int    `json:"reservation_id" example:"11"`
	Rating        int    `json:"rating" example:"5"`
	Message       string `json:"message" example:"great stay"`
}
