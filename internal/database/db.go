package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB 目錄只讀取資料庫，因此只需要 pgxpool.Pool 的查詢與健康檢查部分
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

// FakeDB 測試用，未設定的查詢會 panic
type FakeDB struct {
	QueryFn func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	PingFn  func(ctx context.Context) error
	CloseFn func()
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic("FakeDB: Query not configured")
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: Ping not configured")
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
