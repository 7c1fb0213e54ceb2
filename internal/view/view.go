// Package view 把目錄狀態轉成頁面模型，並以 html/template 輸出
package view

import (
	"embed"
	"html/template"
	"io"

	"user-directory/internal/directory"
	"user-directory/internal/model"
	"user-directory/internal/schema"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageTemplate 目錄頁的模板名稱
const PageTemplate = "index.html"

// Form 一張可送出的表單：編輯卡片或新增表單
type Form struct {
	// ID 欄位元素 id 的前綴，同一頁的每張表單都不同
	ID     string
	Action string
	Submit string
	// Cancel 為空時不顯示取消按鈕
	Cancel string
	User   model.User
	Fields []schema.Field
}

// Card 一筆紀錄的卡片；Form 不為 nil 時為編輯模式
type Card struct {
	User   model.User
	Fields []schema.Field
	Form   *Form
}

// Page 整個目錄頁
type Page struct {
	Loading bool
	Error   string
	Cards   []Card
	Create  Form
}

// NewPage 由狀態快照產生頁面模型，不做任何副作用
func NewPage(s directory.Snapshot) Page {
	fields := schema.Fields()
	p := Page{
		Loading: s.Loading,
		Create: Form{
			ID:     "create",
			Action: "/users",
			Submit: "Add",
			User:   s.Draft,
			Fields: fields,
		},
	}
	if s.Loading {
		return p
	}

	p.Cards = make([]Card, 0, len(s.Users))
	for _, u := range s.Users {
		card := Card{User: u, Fields: fields}
		if s.Editing != nil && s.Editing.ID == u.ID {
			base := "/users/" + u.ID.String()
			card.User = *s.Editing
			card.Form = &Form{
				ID:     "edit-" + u.ID.String(),
				Action: base + "/save",
				Submit: "Save",
				Cancel: base + "/cancel",
				User:   *s.Editing,
				Fields: fields,
			}
		}
		p.Cards = append(p.Cards, card)
	}
	return p
}

// Renderer 實作 echo.Renderer
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
