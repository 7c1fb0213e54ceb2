// Package page 處理瀏覽器表單：所有 POST 成功後 303 導回目錄頁，
// 欄位轉型失敗則以錯誤訊息重新渲染頁面。
package page

import (
	"net/http"
	"net/url"

	"user-directory/internal/directory"
	"user-directory/internal/handler"
	"user-directory/internal/middleware"
	"user-directory/internal/model"
	"user-directory/internal/schema"
	"user-directory/internal/view"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Directory 是頁面處理需要的目錄操作
type Directory interface {
	Snapshot() directory.Snapshot
	Delete(id uuid.UUID) error
	BeginEdit(id uuid.UUID) (model.User, error)
	UpdateField(id uuid.UUID, field, raw string) (model.User, error)
	CommitEdit(id uuid.UUID) (model.User, error)
	CancelEditFor(id uuid.UUID) error
	UpdateDraftField(field, raw string) (model.User, error)
	Submit() model.User
}

func redirectHome(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

// renderError 以錯誤訊息重新渲染整頁
func renderError(c echo.Context, d Directory, err error) error {
	status := handler.StatusFor(err)
	log.Warn().Err(err).Int("status", status).Str("path", c.Path()).Msg("form rejected")
	p := view.NewPage(d.Snapshot())
	p.Error = err.Error()
	return c.Render(status, view.PageTemplate, p)
}

// applyForm 依欄位順序套用表單中有出現的欄位；未出現的欄位保持原值
func applyForm(form url.Values, apply func(field, raw string) (model.User, error)) error {
	for _, name := range schema.Names() {
		values, ok := form[name]
		if !ok || len(values) == 0 {
			continue
		}
		if _, err := apply(name, values[0]); err != nil {
			return err
		}
	}
	return nil
}

// IndexHandler 渲染目錄頁
func IndexHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, view.PageTemplate, view.NewPage(d.Snapshot()))
	}
}

// CreateHandler 把表單寫入新增草稿後送出
func CreateHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		form, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		if err := applyForm(form, d.UpdateDraftField); err != nil {
			return renderError(c, d, err)
		}
		u := d.Submit()
		log.Info().Str("id", u.ID.String()).Msg("user created")
		return redirectHome(c)
	}
}

// EditHandler 進入編輯模式
func EditHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := d.BeginEdit(middleware.UserID(c)); err != nil {
			return renderError(c, d, err)
		}
		return redirectHome(c)
	}
}

// SaveHandler 套用表單到編輯草稿並儲存
func SaveHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := middleware.UserID(c)
		form, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		apply := func(field, raw string) (model.User, error) {
			return d.UpdateField(id, field, raw)
		}
		if err := applyForm(form, apply); err != nil {
			return renderError(c, d, err)
		}
		if _, err := d.CommitEdit(id); err != nil {
			return renderError(c, d, err)
		}
		return redirectHome(c)
	}
}

// CancelHandler 放棄編輯；:id 必須是編輯中的紀錄
func CancelHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := d.CancelEditFor(middleware.UserID(c)); err != nil {
			return renderError(c, d, err)
		}
		return redirectHome(c)
	}
}

// DeleteHandler 刪除紀錄
func DeleteHandler(d Directory) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := d.Delete(middleware.UserID(c)); err != nil {
			return renderError(c, d, err)
		}
		return redirectHome(c)
	}
}
