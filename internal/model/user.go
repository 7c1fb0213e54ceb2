// File: internal/model/user.go
package model

import "github.com/google/uuid"

// MaritalStatus 婚姻狀態，空字串代表未設定
type MaritalStatus string

const (
	Married   MaritalStatus = "married"
	Unmarried MaritalStatus = "unmarried"
)

// User 目錄中的一筆使用者紀錄。
// ID 不在遠端資料中，於載入或新增時產生。
type User struct {
	ID            uuid.UUID     `db:"-" json:"id"`
	FirstName     string        `db:"first_name" json:"first_name"`
	LastName      string        `db:"last_name" json:"last_name"`
	Username      string        `db:"username" json:"username"`
	Age           int           `db:"age" json:"age"`
	MaritalStatus MaritalStatus `db:"marital_status" json:"marital_status"`
	IsEmployed    bool          `db:"is_employed" json:"is_employed"`
	IsFounder     bool          `db:"is_founder" json:"is_founder"`
}
