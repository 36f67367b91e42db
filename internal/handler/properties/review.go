// File: internal/handler/properties/review.go
package properties

import (
	"net/http"
	"strconv"

	"lighthouse-bnb/internal/api"
	"lighthouse-bnb/internal/database"
	"lighthouse-bnb/internal/middleware"
	"lighthouse-bnb/internal/model"
	"lighthouse-bnb/internal/service"
	"lighthouse-bnb/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createReview          = store.CreateReview
	listReviewsByProperty = store.ListReviewsByProperty
)

func toReviewResponse(rv model.Review) api.ReviewResponse {
	return api.ReviewResponse{
		ID:            rv.ID,
		GuestID:       rv.GuestID,
		PropertyID:    rv.PropertyID,
		ReservationID: rv.ReservationID,
		Rating:        rv.Rating,
		Message:       rv.Message,
	}
}

// @Summary     List reviews for a property
// @Description 回傳物件的評論，由新到舊排序
// @Tags        properties
// @Produce     json
// @Param       property_id path  int true  "物件 ID"
// @Param       limit       query int false "筆數上限（預設 10）"
// @Success     200 {array}  api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /properties/{property_id}/reviews [get]
func ListPropertyReviewsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		propertyID, err := strconv.Atoi(c.Param("property_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid property ID"})
		}
		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			limit, err = strconv.Atoi(v)
			if err != nil || limit <= 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid limit"})
			}
		}

		reviews, err := listReviewsByProperty(c.Request().Context(), db, propertyID, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.ReviewResponse, 0, len(reviews))
		for _, rv := range reviews {
			resp = append(resp, toReviewResponse(rv))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a review for a property
// @Description 以當前使用者身分對物件留下評論
// @Tags        properties
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       property_id path int true "物件 ID"
// @Success     201 {object} api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /properties/{property_id}/reviews [post]
func CreatePropertyReviewHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		propertyID, err := strconv.Atoi(c.Param("property_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid property ID"})
		}

		var req api.CreateReviewRequest
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

		review, err := createReview(c.Request().Context(), db, &model.Review{
			GuestID:       claims.UserID,
			PropertyID:    propertyID,
			ReservationID: req.ReservationID,
			Rating:        req.Rating,
			Message:       req.Message,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, toReviewResponse(*review))
	}
}
