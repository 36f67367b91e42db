// File: internal/api/search_properties_request.go
package api

// SearchPropertiesRequest 綁定搜尋用的 query string。
// 價格以元為單位，最小與最大必須成對出現。
// swagger:model api.SearchPropertiesRequest
type SearchPropertiesRequest struct {
	City          string   `query:"city" example:"Vancouver"`
	OwnerID       *int     `query:"owner_id" validate:"omitempty,gt=0" example:"8"`
	MinimumPrice  *int     `query:"minimum_price_per_night" validate:"omitempty,gte=0" example:"50"`
	MaximumPrice  *int     `query:"maximum_price_per_night" validate:"omitempty,gte=0" example:"100"`
	MinimumRating *float64 `query:"minimum_rating" validate:"omitempty,gte=0,lte=5" example:"4"`
	Limit         int      `query:"limit" validate:"omitempty,gt=0" example:"10"`
}
