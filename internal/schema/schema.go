// Package schema 定義使用者紀錄可編輯欄位的固定表格。
// 編輯表單與新增表單都透過同一張表做型別轉換。
package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"user-directory/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ErrUnknownField 欄位名稱不在表格中。這是 Apply 唯一會回傳的錯誤。
var ErrUnknownField = errors.New("unknown field")

// Kind 決定欄位的輸入控制項與轉換方式
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindChoice
	KindBoolean
)

// Option 單選欄位的一個選項
type Option struct {
	Value string
	Label string
}

// Field 描述一個欄位：名稱、標籤、種類，以及讀寫紀錄的方法。
// set 永遠成功，格式不對的輸入也照樣寫入（age 例外，見 setAge）。
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Options  []Option

	get func(u model.User) string
	set func(u *model.User, raw string)
}

var yesNo = []Option{{Value: "true", Label: "Yes"}, {Value: "false", Label: "No"}}

var fields = []Field{
	{
		Name: "first_name", Label: "First Name", Kind: KindText, Required: true,
		get: func(u model.User) string { return u.FirstName },
		set: func(u *model.User, raw string) { u.FirstName = raw },
	},
	{
		Name: "last_name", Label: "Last Name", Kind: KindText, Required: true,
		get: func(u model.User) string { return u.LastName },
		set: func(u *model.User, raw string) { u.LastName = raw },
	},
	{
		Name: "username", Label: "Username", Kind: KindText, Required: true,
		get: func(u model.User) string { return u.Username },
		set: func(u *model.User, raw string) { u.Username = raw },
	},
	{
		Name: "age", Label: "Age", Kind: KindNumber, Required: true,
		get: func(u model.User) string { return strconv.Itoa(u.Age) },
		set: setAge,
	},
	{
		Name: "marital_status", Label: "Marital Status", Kind: KindChoice,
		Options: []Option{
			{Value: string(model.Married), Label: "Married"},
			{Value: string(model.Unmarried), Label: "Unmarried"},
		},
		get: func(u model.User) string { return string(u.MaritalStatus) },
		// 遠端資料也可能帶其他值，照原樣保存
		set: func(u *model.User, raw string) { u.MaritalStatus = model.MaritalStatus(raw) },
	},
	{
		Name: "is_employed", Label: "Employed", Kind: KindBoolean, Options: yesNo,
		get: func(u model.User) string { return strconv.FormatBool(u.IsEmployed) },
		set: func(u *model.User, raw string) { u.IsEmployed = parseBool(raw) },
	},
	{
		Name: "is_founder", Label: "Founder", Kind: KindBoolean, Options: yesNo,
		get: func(u model.User) string { return strconv.FormatBool(u.IsFounder) },
		set: func(u *model.User, raw string) { u.IsFounder = parseBool(raw) },
	},
}

var byName = func() map[string]*Field {
	m := make(map[string]*Field, len(fields))
	for i := range fields {
		m[fields[i].Name] = &fields[i]
	}
	return m
}()

// Fields 依顯示順序回傳所有欄位
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Names 依顯示順序回傳欄位名稱
func Names() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Lookup 依名稱找欄位
func Lookup(name string) (Field, bool) {
	f, ok := byName[name]
	if !ok {
		return Field{}, false
	}
	return *f, true
}

// Apply 將 raw 依欄位規則轉型後寫入 u，其他欄位不變。
// 只有未知欄位會失敗，此時 u 保持原樣。
func Apply(u *model.User, name, raw string) error {
	f, ok := byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	f.set(u, raw)
	return nil
}

// Value 回傳欄位目前值的表單字串
func (f Field) Value(u model.User) string {
	return f.get(u)
}

// Display 回傳唯讀卡片上顯示的文字
func (f Field) Display(u model.User) string {
	if f.Kind == KindBoolean {
		if f.get(u) == "true" {
			return "Yes"
		}
		return "No"
	}
	return f.get(u)
}

// Checked 判斷單選選項是否為目前值
func (f Field) Checked(u model.User, option string) bool {
	return f.get(u) == option
}

// InputType 對應 HTML input 的 type
func (f Field) InputType() string {
	switch f.Kind {
	case KindNumber:
		return "number"
	case KindChoice, KindBoolean:
		return "radio"
	default:
		return "text"
	}
}

// setAge 空字串為 0；int 存不下非數字文字，因此保留原值並記 warn
func setAge(u *model.User, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		u.Age = 0
		return
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("value", raw).Int("kept", u.Age).Msg("age is not a number")
		return
	}
	u.Age = n
}

// parseBool radio 送 "true"/"false"，checkbox 勾選送 "on"；其餘一律為 false
func parseBool(raw string) bool {
	return raw == "true" || raw == "on"
}

// FieldTag 驗證欄位名稱的 validator tag
const FieldTag = "user_field"

// RegisterValidation 在 v 上註冊 FieldTag，以欄位表判斷名稱是否存在
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(FieldTag, func(fl validator.FieldLevel) bool {
		_, ok := byName[fl.Field().String()]
		return ok
	})
}
