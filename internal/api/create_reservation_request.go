// File: internal/api/create_reservation_request.go
package api

// 日期格式為 YYYY-MM-DD。
// swagger:model api.CreateReservationRequest
type CreateReservationRequest struct {
	PropertyID int    `form:"property_id" validate:"required,gt=0" example:"3"`
	StartDate  string `form:"start_date" validate:"required,datetime=2006-01-02" example:"2026-09-01"`
	EndDate    string `form:"end_date" validate:"required,datetime=2006-01-02" example:"2026-09-08"`
}
