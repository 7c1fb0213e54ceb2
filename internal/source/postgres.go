package source

import (
	"context"

	"user-directory/internal/database"
	"user-directory/internal/model"
	"user-directory/internal/store"
)

var listUsers = store.ListUsers

// PostgresSource 從 directory_users 讀取初始資料
type PostgresSource struct {
	db database.DB
}

func NewPostgresSource(db database.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Fetch(ctx context.Context) ([]model.User, error) {
	return listUsers(ctx, s.db)
}
