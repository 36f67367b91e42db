// File: internal/api/property_response.go
package api

// swagger:model api.PropertyResponse
type PropertyResponse struct {
	ID                int    `json:"id" example:"3"`
	OwnerID           int    `json:"owner_id" example:"8"`
	Title             string `json:"title" example:"Seaside cottage"`
	Description       string `json:"description" example:"Two-bedroom cottage by the water"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" example:"https://example.com/thumb.jpg"`
	CoverPhotoURL     string `json:"cover_photo_url" example:"https://example.com/cover.jpg"`
	CostPerNight      int    `json:"cost_per_night" example:"9300"`
	ParkingSpaces     int    `json:"parking_spaces" example:"1"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" example:"1"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" example:"2"`
	Country           string `json:"country" example:"Canada"`
	Street            string `json:"street" example:"123 Main St"`
	City              string `json:"city" example:"Vancouver"`
	Province          string `json:"province" example:"BC"`
	PostCode          string `json:"post_code" example:"V5K 0A1"`
}

// swagger:model api.PropertyListingResponse
type PropertyListingResponse struct {
	PropertyResponse
	AverageRating float64 `json:"average_rating" example:"4.5"`
}
