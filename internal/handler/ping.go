// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"user-directory/internal/api"
	"user-directory/internal/cache"
	"user-directory/internal/database"
	"user-directory/internal/model"

	"github.com/labstack/echo/v4"
)

// DirectoryState 健康檢查需要的目錄狀態
type DirectoryState interface {
	Loading() bool
	Users() []model.User
}

// PingHandler 健康檢查
// db 與 cch 可為 nil，代表未啟用
// @Summary     Health Check
// @Description 回傳 pong、目錄是否已載入，並檢查資料庫與快取連線
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(dir DirectoryState, db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
			}
		}
		if cch != nil {
			if err := cch.Set(ctx, "ping", "pong", time.Second).Err(); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
			}
		}
		loading := dir.Loading()
		return c.JSON(http.StatusOK, api.PingResponse{
			Message: "pong",
			Loaded:  !loading,
			Users:   len(dir.Users()),
		})
	}
}
