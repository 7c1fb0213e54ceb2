package users

import (
	"net/http"

	"user-directory/internal/api"
	"user-directory/internal/handler"
	"user-directory/internal/middleware"
	"user-directory/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Directory 是 JSON API 需要的目錄操作
type Directory interface {
	Users() []model.User
	Delete(id uuid.UUID) error
	BeginEdit(id uuid.UUID) (model.User, error)
	UpdateField(id uuid.UUID, field, raw string) (model.User, error)
	CommitEdit(id uuid.UUID) (model.User, error)
	CancelEditFor(id uuid.UUID) error
	Draft() model.User
	UpdateDraftField(field, raw string) (model.User, error)
	Submit() model.User
}

func errorJSON(c echo.Context, err error) error {
	return c.JSON(handler.StatusFor(err), api.ErrorResponse{Message: err.Error()})
}

// @Summary     List users
// @Description 依顯示順序回傳目前記憶體中的所有使用者
// @Tags        users
// @Produce     json
// @Success     200  {array}   api.UserResponse
// @Failure     503  {object}  api.ErrorResponse  "資料載入中"
// @Router      /users [get]
func ListUsersHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.NewUserListResponse(d.Users()))
	}
}

// @Summary     Delete a user
// @Description 從清單移除使用者；若該使用者正在編輯則一併結束編輯
// @Tags        users
// @Param       id   path  string  true  "使用者 ID"
// @Success     204  "No Content"
// @Failure     400  {object}  api.ErrorResponse
// @Failure     404  {object}  api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := d.Delete(middleware.UserID(c)); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Begin editing a user
// @Description 進入編輯模式並回傳編輯草稿，先前未儲存的編輯會被丟棄
// @Tags        users
// @Produce     json
// @Param       id   path  string  true  "使用者 ID"
// @Success     200  {object}  api.UserResponse
// @Failure     404  {object}  api.ErrorResponse
// @Router      /users/{id}/edit [post]
func BeginEditHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		draft, err := d.BeginEdit(middleware.UserID(c))
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(draft))
	}
}

// @Summary     Cancel editing a user
// @Description 放棄編輯草稿，清單不變
// @Tags        users
// @Param       id   path  string  true  "使用者 ID"
// @Success     204  "No Content"
// @Failure     409  {object}  api.ErrorResponse  "該使用者不在編輯中"
// @Router      /users/{id}/edit [delete]
func CancelEditHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := d.CancelEditFor(middleware.UserID(c)); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Update one field of the edit draft
// @Description 依欄位規則轉型後寫入編輯草稿 (is_employed / is_founder 接受 "true" / "false")
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id     path      string  true   "使用者 ID"
// @Param       field  formData  string  true   "欄位名稱"
// @Param       value  formData  string  false  "欄位值"
// @Success     200    {object}  api.UserResponse
// @Failure     400    {object}  api.ErrorResponse
// @Failure     409    {object}  api.ErrorResponse
// @Router      /users/{id} [patch]
func UpdateFieldHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateFieldRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		draft, err := d.UpdateField(middleware.UserID(c), req.Field, req.Value)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(draft))
	}
}

// @Summary     Save the edit draft
// @Description 將編輯草稿寫回清單並結束編輯模式
// @Tags        users
// @Produce     json
// @Param       id   path  string  true  "使用者 ID"
// @Success     200  {object}  api.UserResponse
// @Failure     404  {object}  api.ErrorResponse
// @Failure     409  {object}  api.ErrorResponse
// @Router      /users/{id}/commit [post]
func CommitEditHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, err := d.CommitEdit(middleware.UserID(c))
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(u))
	}
}
