package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-directory/internal/directory"
	"user-directory/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubSource struct{ users []model.User }

func (s stubSource) Fetch(context.Context) ([]model.User, error) { return s.users, nil }

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, directory.New(), nil, nil)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodPost + " /users",
		http.MethodPost + " /users/:id/edit",
		http.MethodPost + " /users/:id/save",
		http.MethodPost + " /users/:id/cancel",
		http.MethodPost + " /users/:id/delete",
		http.MethodGet + " /api/ping",
		http.MethodGet + " /api/users",
		http.MethodDelete + " /api/users/:id",
		http.MethodPatch + " /api/users/:id",
		http.MethodPost + " /api/users/:id/edit",
		http.MethodDelete + " /api/users/:id/edit",
		http.MethodPost + " /api/users/:id/commit",
		http.MethodGet + " /api/draft",
		http.MethodPatch + " /api/draft",
		http.MethodPost + " /api/draft/submit",
		http.MethodGet + " /swagger/*",
	}

	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestMutationsWaitForLoad(t *testing.T) {
	e := echo.New()
	dir := directory.New()
	Setup(e, dir, nil, nil)

	serve := func(method, path string) int {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec.Code
	}

	require.Equal(t, http.StatusServiceUnavailable, serve(http.MethodGet, "/api/users"))
	require.Equal(t, http.StatusServiceUnavailable, serve(http.MethodPost, "/api/draft/submit"))
	require.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/ping"))

	dir.Load(context.Background(), stubSource{users: []model.User{{Username: "ada"}}})
	require.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/users"))
	require.Equal(t, http.StatusBadRequest, serve(http.MethodDelete, "/api/users/not-a-uuid"))
	require.Equal(t, http.StatusNotFound, serve(http.MethodDelete, "/api/users/"+uuid.NewString()))

	id := dir.Users()[0].ID.String()
	require.Equal(t, http.StatusNoContent, serve(http.MethodDelete, "/api/users/"+id))
	require.Empty(t, dir.Users())
}
