// File: internal/store/reservation.go
package store

import (
	"context"
	"fmt"

	"lighthouse-bnb/internal/database"
	"lighthouse-bnb/internal/model"
)

// ListCompletedReservations 回傳 guest 已完成（end_date 早於今天）的訂單，
// 連同物件資料與該物件的評分平均值，依入住日期由舊到新排序。
func ListCompletedReservations(ctx context.Context, db database.DB, guestID int, limit int) ([]model.GuestReservation, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	rows, err := db.Query(ctx,
		`SELECT reservations.id, reservations.guest_id, reservations.property_id,
		   reservations.start_date, reservations.end_date,
		   `+propertyColumns+`,
		   COALESCE(avg(property_reviews.rating), 0) AS average_rating
		 FROM reservations
		 JOIN properties ON properties.id = reservations.property_id
		 LEFT JOIN property_reviews ON property_reviews.property_id = properties.id
		 WHERE reservations.guest_id = $1
		   AND reservations.end_date < now()::date
		 GROUP BY properties.id, reservations.id
		 ORDER BY reservations.start_date
		 LIMIT $2`,
		guestID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCompletedReservations: %w", err)
	}
	defer rows.Close()

	var reservations []model.GuestReservation
	for rows.Next() {
		var r model.GuestReservation
		dest := []any{
			&r.ID,
			&r.GuestID,
			&r.PropertyID,
			&r.StartDate,
			&r.EndDate,
		}
		dest = append(dest, scanProperty(&r.Property)...)
		dest = append(dest, &r.AverageRating)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("ListCompletedReservations: %w", err)
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCompletedReservations: %w", err)
	}
	return reservations, nil
}

func CreateReservation(ctx context.Context, db database.DB, r *model.Reservation) (*model.Reservation, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reservations (guest_id, property_id, start_date, end_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		r.GuestID,
		r.PropertyID,
		r.StartDate,
		r.EndDate,
	)
	if err := row.Scan(&r.ID); err != nil {
		return nil, fmt.Errorf("CreateReservation: %w", err)
	}
	return r, nil
}
