// File: internal/database/postgres.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpoolNew 供測試覆寫。
var pgxpoolNew = pgxpool.New

// NewPgxPool 建立資料庫連線池，*pgxpool.Pool 直接滿足 DB 介面。
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
