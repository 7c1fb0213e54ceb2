// Package source 提供目錄初始資料的來源：HTTP JSON、Postgres 唯讀表，
// 以及包在外層的 Redis 讀取快取。
package source

import (
	"context"

	"user-directory/internal/model"
)

// Source 取得一次完整的紀錄清單
type Source interface {
	Fetch(ctx context.Context) ([]model.User, error)
}
