// File: internal/model/property.go
package model

// Property 的 CostPerNight 一律以最小貨幣單位（分）儲存。
type Property struct {
	ID                int    `db:"id" json:"id"`
	OwnerID           int    `db:"owner_id" json:"owner_id"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int    `db:"cost_per_night" json:"cost_per_night"`
	ParkingSpaces     int    `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int    `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	Country           string `db:"country" json:"country"`
	Street            string `db:"street" json:"street"`
	City              string `db:"city" json:"city"`
	Province          string `db:"province" json:"province"`
	PostCode          string `db:"post_code" json:"post_code"`
}

// PropertyListing 是搜尋結果列：Property 加上評分平均值（無評論時為 0）。
type PropertyListing struct {
	Property
	AverageRating float64 `db:"average_rating" json:"average_rating"`
}

// PropertyFilter 描述搜尋條件，nil / 空字串代表未提供。
// MinCostDollars 與 MaxCostDollars 必須成對出現，否則價格條件整個忽略。
type PropertyFilter struct {
	City           string
	OwnerID        *int
	MinCostDollars *int
	MaxCostDollars *int
	MinRating      *float64
}
