package handler

import (
	"errors"
	"net/http"

	"user-directory/internal/directory"
	"user-directory/internal/schema"
)

// StatusFor 將目錄操作錯誤對應到 HTTP 狀態碼
func StatusFor(err error) int {
	switch {
	case errors.Is(err, directory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, directory.ErrNotEditing):
		return http.StatusConflict
	case errors.Is(err, schema.ErrUnknownField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
