// File: internal/handler/properties/property.go
package properties

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lighthouse-bnb/internal/api"
	"lighthouse-bnb/internal/cache"
	"lighthouse-bnb/internal/database"
	"lighthouse-bnb/internal/middleware"
	"lighthouse-bnb/internal/model"
	"lighthouse-bnb/internal/service"
	"lighthouse-bnb/internal/store"
	"lighthouse-bnb/internal/worker"

	"github.com/labstack/echo/v4"
)

// searchCacheTTL 是搜尋結果在 Redis 的存活時間。
const searchCacheTTL = 30 * time.Second

var (
	searchProperties = store.SearchProperties
	createProperty   = store.CreateProperty
)

func toPropertyResponse(p model.Property) api.PropertyResponse {
	return api.PropertyResponse{
		ID:                p.ID,
		OwnerID:           p.OwnerID,
		Title:             p.Title,
		Description:       p.Description,
		ThumbnailPhotoURL: p.ThumbnailPhotoURL,
		CoverPhotoURL:     p.CoverPhotoURL,
		CostPerNight:      p.CostPerNight,
		ParkingSpaces:     p.ParkingSpaces,
		NumberOfBathrooms: p.NumberOfBathrooms,
		NumberOfBedrooms:  p.NumberOfBedrooms,
		Country:           p.Country,
		Street:            p.Street,
		City:              p.City,
		Province:          p.Province,
		PostCode:          p.PostCode,
	}
}

// searchCacheKey 把搜尋條件攤平成穩定的快取鍵。
func searchCacheKey(f model.PropertyFilter, limit int) string {
	var b strings.Builder
	b.WriteString("properties:search:city=")
	b.WriteString(f.City)
	if f.OwnerID != nil {
		fmt.Fprintf(&b, "|owner=%d", *f.OwnerID)
	}
	if f.MinCostDollars != nil && f.MaxCostDollars != nil {
		fmt.Fprintf(&b, "|cost=%d-%d", *f.MinCostDollars, *f.MaxCostDollars)
	}
	if f.MinRating != nil {
		fmt.Fprintf(&b, "|rating=%g", *f.MinRating)
	}
	fmt.Fprintf(&b, "|limit=%d", limit)
	return b.String()
}

// @Summary     Search properties
// @Description 依城市、屋主、價格區間與評分門檻搜尋物件，附上評分平均值
// @Tags        properties
// @Produce     json
// @Param       city                    query string  false "城市（部分比對）"
// @Param       owner_id                query int     false "屋主 ID"
// @Param       minimum_price_per_night query int     false "每晚最低價（元，需與最高價成對）"
// @Param       maximum_price_per_night query int     false "每晚最高價（元，需與最低價成對）"
// @Param       minimum_rating          query number  false "評分平均下限"
// @Param       limit                   query int     false "筆數上限（預設 10）"
// @Success     200 {array}  api.PropertyListingResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /properties [get]
func SearchPropertiesHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SearchPropertiesRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Limit <= 0 {
			req.Limit = store.DefaultSearchLimit
		}

		filter := model.PropertyFilter{
			City:           req.City,
			OwnerID:        req.OwnerID,
			MinCostDollars: req.MinimumPrice,
			MaxCostDollars: req.MaximumPrice,
			MinRating:      req.MinimumRating,
		}

		key := searchCacheKey(filter, req.Limit)
		if data, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
			var cached []api.PropertyListingResponse
			if json.Unmarshal(data, &cached) == nil {
				return c.JSON(http.StatusOK, cached)
			}
		}

		listings, err := searchProperties(c.Request().Context(), db, filter, req.Limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.PropertyListingResponse, 0, len(listings))
		for _, l := range listings {
			resp = append(resp, api.PropertyListingResponse{
				PropertyResponse: toPropertyResponse(l.Property),
				AverageRating:    l.AverageRating,
			})
		}

		// 快取寫入交給 worker pool，不擋住回應。
		if payload, err := json.Marshal(resp); err == nil {
			wp.Submit(func() {
				rdb.Set(context.Background(), key, payload, searchCacheTTL)
			})
		}

		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a new property
// @Description 以當前使用者為屋主建立物件，cost_per_night 以分為單位
// @Tags        properties
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Success     201 {object} api.PropertyResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /properties [post]
func CreatePropertyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreatePropertyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		prop, err := createProperty(c.Request().Context(), db, &model.Property{
			OwnerID:           claims.UserID,
			Title:             req.Title,
			Description:       req.Description,
			ThumbnailPhotoURL: req.ThumbnailPhotoURL,
			CoverPhotoURL:     req.CoverPhotoURL,
			CostPerNight:      req.CostPerNight,
			ParkingSpaces:     req.ParkingSpaces,
			NumberOfBathrooms: req.NumberOfBathrooms,
			NumberOfBedrooms:  req.NumberOfBedrooms,
			Country:           req.Country,
			Street:            req.Street,
			City:              req.City,
			Province:          req.Province,
			PostCode:          req.PostCode,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, toPropertyResponse(*prop))
	}
}
