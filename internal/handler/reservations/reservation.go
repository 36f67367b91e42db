// File: internal/handler/reservations/reservation.go
package reservations

import (
	"net/http"
	"strconv"
	"time"

	"lighthouse-bnb/internal/api"
	"lighthouse-bnb/internal/database"
	"lighthouse-bnb/internal/middleware"
	"lighthouse-bnb/internal/model"
	"lighthouse-bnb/internal/service"
	"lighthouse-bnb/internal/store"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

var (
	createReservation         = store.CreateReservation
	listCompletedReservations = store.ListCompletedReservations
)

func toReservationResponse(r model.Reservation) api.ReservationResponse {
	return api.ReservationResponse{
		ID:         r.ID,
		GuestID:    r.GuestID,
		PropertyID: r.PropertyID,
		StartDate:  r.StartDate.Format(dateLayout),
		EndDate:    r.EndDate.Format(dateLayout),
	}
}

// @Summary     Create a reservation
// @Description 以當前使用者身分建立訂單，退房日需晚於入住日
// @Tags        reservations
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Success     201 {object} api.ReservationResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reservations [post]
func CreateReservationHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateReservationRequest
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

		startDate, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid start date"})
		}
		endDate, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid end date"})
		}
		if !endDate.After(startDate) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "end date must be after start date"})
		}

		reservation, err := createReservation(c.Request().Context(), db, &model.Reservation{
			GuestID:    claims.UserID,
			PropertyID: req.PropertyID,
			StartDate:  startDate,
			EndDate:    endDate,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, toReservationResponse(*reservation))
	}
}

// @Summary     List my completed reservations
// @Description 回傳當前使用者已完成的訂單，附上物件資料與評分平均值
// @Tags        reservations
// @Produce     json
// @Param       limit query int false "筆數上限（預設 10）"
// @Success     200 {array}  api.GuestReservationResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reservations [get]
func ListMyReservationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			var err error
			limit, err = strconv.Atoi(v)
			if err != nil || limit <= 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid limit"})
			}
		}

		reservations, err := listCompletedReservations(c.Request().Context(), db, claims.UserID, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.GuestReservationResponse, 0, len(reservations))
		for _, r := range reservations {
			resp = append(resp, api.GuestReservationResponse{
				ReservationResponse: toReservationResponse(r.Reservation),
				Property: api.PropertyResponse{
					ID:                r.Property.ID,
					OwnerID:           r.Property.OwnerID,
					Title:             r.Property.Title,
					Description:       r.Property.Description,
					ThumbnailPhotoURL: r.Property.ThumbnailPhotoURL,
					CoverPhotoURL:     r.Property.CoverPhotoURL,
					CostPerNight:      r.Property.CostPerNight,
					ParkingSpaces:     r.Property.ParkingSpaces,
					NumberOfBathrooms: r.Property.NumberOfBathrooms,
					NumberOfBedrooms:  r.Property.NumberOfBedrooms,
					Country:           r.Property.Country,
					Street:            r.Property.Street,
					City:              r.Property.City,
					Province:          r.Property.Province,
					PostCode:          r.Property.PostCode,
				},
				AverageRating: r.AverageRating,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
