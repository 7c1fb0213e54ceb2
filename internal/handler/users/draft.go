package users

import (
	"net/http"

	"user-directory/internal/api"

	"github.com/labstack/echo/v4"
)

// @Summary     Get the create draft
// @Tags        draft
// @Produce     json
// @Success     200  {object}  api.UserResponse
// @Router      /draft [get]
func GetDraftHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.NewUserResponse(d.Draft()))
	}
}

// @Summary     Update one field of the create draft
// @Tags        draft
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       field  formData  string  true   "欄位名稱"
// @Param       value  formData  string  false  "欄位值"
// @Success     200    {object}  api.UserResponse
// @Failure     400    {object}  api.ErrorResponse
// @Router      /draft [patch]
func UpdateDraftFieldHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateFieldRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		draft, err := d.UpdateDraftField(req.Field, req.Value)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(draft))
	}
}

// @Summary     Submit the create draft
// @Description 將草稿附加到清單尾端並重設草稿；不檢查必填欄位
// @Tags        draft
// @Produce     json
// @Success     201  {object}  api.UserResponse
// @Failure     503  {object}  api.ErrorResponse  "資料載入中"
// @Router      /draft/submit [post]
func SubmitDraftHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusCreated, api.NewUserResponse(d.Submit()))
	}
}
