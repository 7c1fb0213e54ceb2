package api

import (
	"testing"

	"user-directory/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewUserResponse(t *testing.T) {
	id := uuid.New()
	resp := NewUserResponse(model.User{
		ID: id, FirstName: "Ada", Age: 30, MaritalStatus: model.Unmarried, IsEmployed: true,
	})
	require.Equal(t, id.String(), resp.ID)
	require.Equal(t, "unmarried", resp.MaritalStatus)
	require.True(t, resp.IsEmployed)

	require.Empty(t, NewUserResponse(model.User{Username: "draft"}).ID)

	list := NewUserListResponse(nil)
	require.NotNil(t, list)
	require.Empty(t, list)
}
