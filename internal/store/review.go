// File: internal/store/review.go
package store

import (
	"context"
	"fmt"

	"lighthouse-bnb/internal/database"
	"lighthouse-bnb/internal/model"
)

func CreateReview(ctx context.Context, db database.DB, rv *model.Review) (*model.Review, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO property_reviews (guest_id, property_id, reservation_id, rating, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		rv.GuestID,
		rv.PropertyID,
		rv.ReservationID,
		rv.Rating,
		rv.Message,
	)
	if err := row.Scan(&rv.ID); err != nil {
		return nil, fmt.Errorf("CreateReview: %w", err)
	}
	return rv, nil
}

func ListReviewsByProperty(ctx context.Context, db database.DB, propertyID int, limit int) ([]model.Review, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	rows, err := db.Query(ctx,
		`SELECT id, guest_id, property_id, reservation_id, rating, message
		 FROM property_reviews
		 WHERE property_id = $1
		 ORDER BY id DESC
		 LIMIT $2`,
		propertyID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReviewsByProperty: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(
			&rv.ID,
			&rv.GuestID,
			&rv.PropertyID,
			&rv.ReservationID,
			&rv.Rating,
			&rv.Message,
		); err != nil {
			return nil, fmt.Errorf("ListReviewsByProperty: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReviewsByProperty: %w", err)
	}
	return reviews, nil
}
