package api

import (
	"user-directory/internal/model"

	"github.com/google/uuid"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID            string `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	FirstName     string `json:"first_name" example:"Ada"`
	LastName      string `json:"last_name" example:"Lovelace"`
	Username      string `json:"username" example:"ada"`
	Age           int    `json:"age" example:"30"`
	MaritalStatus string `json:"marital_status" example:"unmarried"`
	IsEmployed    bool   `json:"is_employed" example:"true"`
	IsFounder     bool   `json:"is_founder" example:"false"`
}

// NewUserResponse 將 model 轉為回應格式。草稿沒有 ID 時 id 為空字串。
func NewUserResponse(u model.User) UserResponse {
	resp := UserResponse{
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Username:      u.Username,
		Age:           u.Age,
		MaritalStatus: string(u.MaritalStatus),
		IsEmployed:    u.IsEmployed,
		IsFounder:     u.IsFounder,
	}
	if u.ID != uuid.Nil {
		resp.ID = u.ID.String()
	}
	return resp
}

func NewUserListResponse(users []model.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = NewUserResponse(u)
	}
	return out
}

// swagger:model api.UpdateFieldRequest
// user_field 由 schema.RegisterValidation 註冊
type UpdateFieldRequest struct {
	Field string `form:"field" json:"field" validate:"required,user_field" example:"first_name"`
	Value string `form:"value" json:"value" example:"Ada"`
}
