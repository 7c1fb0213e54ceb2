// File: internal/router/router.go
package router

import (
	"user-directory/internal/cache"
	"user-directory/internal/database"
	"user-directory/internal/directory"
	"user-directory/internal/handler"
	"user-directory/internal/handler/page"
	"user-directory/internal/handler/users"
	"user-directory/internal/middleware"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Setup 註冊所有路由與中介層
// db 與 cch 可為 nil
func Setup(e *echo.Echo, dir *directory.Directory, db database.DB, cch cache.Cache) {
	loaded := middleware.RequireLoaded(dir)

	// 目錄頁與表單
	e.GET("/", page.IndexHandler(dir))
	e.POST("/users", page.CreateHandler(dir), loaded)
	pageUsers := e.Group("/users/:id", loaded, middleware.RequireUserID)
	pageUsers.POST("/edit", page.EditHandler(dir))
	pageUsers.POST("/save", page.SaveHandler(dir))
	pageUsers.POST("/cancel", page.CancelHandler(dir))
	pageUsers.POST("/delete", page.DeleteHandler(dir))

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(dir, db, cch))

	api.GET("/users", users.ListUsersHandler(dir), loaded)
	apiUsers := api.Group("/users/:id", loaded, middleware.RequireUserID)
	apiUsers.DELETE("", users.DeleteUserHandler(dir))
	apiUsers.PATCH("", users.UpdateFieldHandler(dir))
	apiUsers.POST("/edit", users.BeginEditHandler(dir))
	apiUsers.DELETE("/edit", users.CancelEditHandler(dir))
	apiUsers.POST("/commit", users.CommitEditHandler(dir))

	// 新增表單草稿
	apiDraft := api.Group("/draft", loaded)
	apiDraft.GET("", users.GetDraftHandler(dir))
	apiDraft.PATCH("", users.UpdateDraftFieldHandler(dir))
	apiDraft.POST("/submit", users.SubmitDraftHandler(dir))

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
