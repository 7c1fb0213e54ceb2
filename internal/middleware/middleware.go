package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const ContextUserIDKey = "user_id"

// LoadingState 回報初始載入是否仍在進行
type LoadingState interface {
	Loading() bool
}

// RequireLoaded 初始資料載入完成前拒絕變更請求
func RequireLoaded(s LoadingState) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s.Loading() {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "users are still loading")
			}
			return next(c)
		}
	}
}

// RequireUserID 解析路徑參數 :id 為 UUID 並放入 context
func RequireUserID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
		}
		c.Set(ContextUserIDKey, id)
		return next(c)
	}
}

// UserID 取出 RequireUserID 設定的 ID
func UserID(c echo.Context) uuid.UUID {
	id, _ := c.Get(ContextUserIDKey).(uuid.UUID)
	return id
}
