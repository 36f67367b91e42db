// File: internal/store/property.go
package store

import (
	"context"
	"fmt"
	"strings"

	"lighthouse-bnb/internal/database"
	"lighthouse-bnb/internal/model"
	"lighthouse-bnb/internal/service"
)

// DefaultSearchLimit 是查詢未指定筆數上限時的預設值。
const DefaultSearchLimit = 10

const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
		 properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
		 properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
		 properties.country, properties.street, properties.city, properties.province, properties.post_code`

func scanProperty(dest *model.Property) []any {
	return []any{
		&dest.ID,
		&dest.OwnerID,
		&dest.Title,
		&dest.Description,
		&dest.ThumbnailPhotoURL,
		&dest.CoverPhotoURL,
		&dest.CostPerNight,
		&dest.ParkingSpaces,
		&dest.NumberOfBathrooms,
		&dest.NumberOfBedrooms,
		&dest.Country,
		&dest.Street,
		&dest.City,
		&dest.Province,
		&dest.PostCode,
	}
}

// SearchProperties 依條件搜尋物件並附上評分平均值。
// WHERE / AND 的接法由 hasWhere 旗標決定，與參數個數無關，
// 條件順序調整或新增條件時不會產生斷裂的述詞串。
func SearchProperties(ctx context.Context, db database.DB, filter model.PropertyFilter, limit int) ([]model.PropertyListing, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var (
		b        strings.Builder
		args     []any
		hasWhere bool
	)
	b.WriteString(`SELECT ` + propertyColumns + `, COALESCE(avg(property_reviews.rating), 0) AS average_rating
		 FROM properties
		 LEFT JOIN property_reviews ON property_reviews.property_id = properties.id`)

	predicate := func(clause string) {
		if hasWhere {
			b.WriteString(" AND ")
		} else {
			b.WriteString(" WHERE ")
			hasWhere = true
		}
		b.WriteString(clause)
	}

	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		predicate(fmt.Sprintf("properties.city ILIKE $%d", len(args)))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		predicate(fmt.Sprintf("properties.owner_id = $%d", len(args)))
	}
	// 價格區間必須成對，只給一邊時整個忽略。
	if filter.MinCostDollars != nil && filter.MaxCostDollars != nil {
		args = append(args,
			service.CentsFromDollars(*filter.MinCostDollars),
			service.CentsFromDollars(*filter.MaxCostDollars),
		)
		predicate(fmt.Sprintf("properties.cost_per_night BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	b.WriteString(" GROUP BY properties.id")

	// 評分門檻作用在聚合之後，掛在 HAVING 而非 WHERE。
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		b.WriteString(fmt.Sprintf(" HAVING avg(property_reviews.rating) >= $%d", len(args)))
	}

	args = append(args, limit)
	b.WriteString(fmt.Sprintf(" ORDER BY properties.cost_per_night LIMIT $%d", len(args)))

	rows, err := db.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("SearchProperties: %w", err)
	}
	defer rows.Close()

	var listings []model.PropertyListing
	for rows.Next() {
		var l model.PropertyListing
		dest := append(scanProperty(&l.Property), &l.AverageRating)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("SearchProperties: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchProperties: %w", err)
	}
	return listings, nil
}

func CreateProperty(ctx context.Context, db database.DB, p *model.Property) (*model.Property, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url,
		   cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
		   country, street, city, province, post_code)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id`,
		p.OwnerID,
		p.Title,
		p.Description,
		p.ThumbnailPhotoURL,
		p.CoverPhotoURL,
		p.CostPerNight,
		p.ParkingSpaces,
		p.NumberOfBathrooms,
		p.NumberOfBedrooms,
		p.Country,
		p.Street,
		p.City,
		p.Province,
		p.PostCode,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreateProperty: %w", err)
	}
	return p, nil
}
