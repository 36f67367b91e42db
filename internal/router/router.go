// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"lighthouse-bnb/internal/cache"
	"lighthouse-bnb/internal/database"
	"lighthouse-bnb/internal/handler"
	"lighthouse-bnb/internal/handler/auth"
	"lighthouse-bnb/internal/handler/properties"
	"lighthouse-bnb/internal/handler/reservations"
	"lighthouse-bnb/internal/handler/users"
	"lighthouse-bnb/internal/middleware"
	"lighthouse-bnb/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 使用者登入
	api.POST("/auth/login", auth.LoginHandler(db))

	// 使用者
	api.POST("/users", users.CreateUserHandler(db))
	api.GET("/users", users.FindUserHandler(db), middleware.RequireAuth)
	api.GET("/users/me", users.GetMyUserHandler(db), middleware.RequireAuth)
	api.GET("/users/:user_id", users.GetUserHandler(db), middleware.RequireAuth)

	// 物件搜尋與刊登
	api.GET("/properties", properties.SearchPropertiesHandler(db, rdb, wp))
	api.POST("/properties", properties.CreatePropertyHandler(db), middleware.RequireAuth)

	// 物件評論
	api.GET("/properties/:property_id/reviews", properties.ListPropertyReviewsHandler(db))
	api.POST("/properties/:property_id/reviews", properties.CreatePropertyReviewHandler(db), middleware.RequireAuth)

	// 訂單
	api.GET("/reservations", reservations.ListMyReservationsHandler(db), middleware.RequireAuth)
	api.POST("/reservations", reservations.CreateReservationHandler(db), middleware.RequireAuth)
}
