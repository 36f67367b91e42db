// File: internal/api/create_review_request.go
package api

// swagger:model api.CreateReviewRequest
type CreateReviewRequest struct {
	ReservationID int    `form:"reservation_id" validate:"required,gt=0" example:"11"`
	Rating        int    `form:"rating" validate:"required,min=1,max=5" example:"5"`
	Message       string `form:"message" example:"great stay"`
}
