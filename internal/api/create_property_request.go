// File: internal/api/create_property_request.go
package api

// CostPerNight 以最小貨幣單位（分）傳入，與資料表一致。
// swagger:model api.CreatePropertyRequest
type CreatePropertyRequest struct {
	Title             string `form:"title" validate:"required" example:"Seaside cottage"`
	Description       string `form:"description" example:"Two-bedroom cottage by the water"`
	ThumbnailPhotoURL string `form:"thumbnail_photo_url" validate:"omitempty,url" example:"https://example.com/thumb.jpg"`
	CoverPhotoURL     string `form:"cover_photo_url" validate:"omitempty,url" example:"https://example.com/cover.jpg"`
	CostPerNight      int    `form:"cost_per_night" validate:"required,gt=0" example:"9300"`
	ParkingSpaces     int    `form:"parking_spaces" validate:"gte=0" example:"1"`
	NumberOfBathrooms int    `form:"number_of_bathrooms" validate:"gte=0" example:"1"`
	NumberOfBedrooms  int    `form:"number_of_bedrooms" validate:"gte=0" example:"2"`
	Country           string `form:"country" validate:"required" example:"Canada"`
	Street            string `form:"street" validate:"required" example:"123 Main St"`
	City              string `form:"city" validate:"required" example:"Vancouver"`
	Province          string `form:"province" validate:"required" example:"BC"`
	PostCode          string `form:"post_code" validate:"required" example:"V5K 0A1"`
}
