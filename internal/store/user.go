package store

import (
	"context"
	"fmt"

	"user-directory/internal/database"
	"user-directory/internal/model"
)

// ListUsers 依 position 順序讀出目錄種子資料，只讀不寫
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT first_name, last_name, username, age, marital_status, is_employed, is_founder
		 FROM directory_users ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		var status string
		if err := rows.Scan(
			&u.FirstName,
			&u.LastName,
			&u.Username,
			&u.Age,
			&status,
			&u.IsEmployed,
			&u.IsFounder,
		); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		u.MaritalStatus = model.MaritalStatus(status)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}
