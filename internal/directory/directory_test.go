package directory

import (
	"context"
	"errors"
	"testing"

	"user-directory/internal/model"
	"user-directory/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	users []model.User
	err   error
	calls int
}

func (s *stubSource) Fetch(context.Context) ([]model.User, error) {
	s.calls++
	return s.users, s.err
}

var (
	userA = model.User{FirstName: "Ada", LastName: "Lovelace", Username: "ada", Age: 30, MaritalStatus: model.Unmarried, IsEmployed: true}
	userB = model.User{FirstName: "Bob", LastName: "Builder", Username: "bob", Age: 41, MaritalStatus: model.Married}
	userC = model.User{FirstName: "Cy", LastName: "Young", Username: "cy", Age: 22, IsFounder: true}
)

func loaded(t *testing.T, users ...model.User) *Directory {
	t.Helper()
	d := New()
	d.Load(context.Background(), &stubSource{users: users})
	require.False(t, d.Loading())
	return d
}

func withoutIDs(users []model.User) []model.User {
	out := make([]model.User, len(users))
	for i, u := range users {
		u.ID = uuid.Nil
		out[i] = u
	}
	return out
}

func TestLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := New()
		require.True(t, d.Loading())
		src := &stubSource{users: []model.User{userA}}
		d.Load(context.Background(), src)

		require.Equal(t, 1, src.calls)
		require.False(t, d.Loading())
		users := d.Users()
		require.Len(t, users, 1)
		require.NotEqual(t, uuid.Nil, users[0].ID)
		require.Equal(t, []model.User{userA}, withoutIDs(users))
	})

	t.Run("failure keeps collection empty", func(t *testing.T) {
		d := New()
		require.NotPanics(t, func() {
			d.Load(context.Background(), &stubSource{err: errors.New("network down")})
		})
		require.False(t, d.Loading())
		require.Empty(t, d.Users())
	})

	t.Run("ids are unique", func(t *testing.T) {
		d := loaded(t, userA, userA, userA)
		seen := map[uuid.UUID]bool{}
		for _, u := range d.Users() {
			require.False(t, seen[u.ID])
			seen[u.ID] = true
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("first of three", func(t *testing.T) {
		d := loaded(t, userA, userB, userC)
		require.NoError(t, d.Delete(d.Users()[0].ID))
		require.Equal(t, []model.User{userB, userC}, withoutIDs(d.Users()))
	})

	t.Run("every position preserves order", func(t *testing.T) {
		all := []model.User{userA, userB, userC}
		for i := range all {
			d := loaded(t, all...)
			before := d.Users()
			require.NoError(t, d.Delete(before[i].ID))

			want := append(append([]model.User{}, before[:i]...), before[i+1:]...)
			require.Len(t, d.Users(), len(all)-1)
			require.Equal(t, want, d.Users())
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		d := loaded(t, userA)
		require.ErrorIs(t, d.Delete(uuid.New()), ErrNotFound)
		require.Len(t, d.Users(), 1)
	})

	t.Run("deleting the edited record clears edit mode", func(t *testing.T) {
		d := loaded(t, userA, userB)
		id := d.Users()[0].ID
		_, err := d.BeginEdit(id)
		require.NoError(t, err)
		require.NoError(t, d.Delete(id))

		_, editing := d.EditingID()
		require.False(t, editing)
		require.Nil(t, d.Snapshot().Editing)
	})

	t.Run("deleting another record keeps edit target", func(t *testing.T) {
		d := loaded(t, userA, userB, userC)
		users := d.Users()
		_, err := d.BeginEdit(users[2].ID)
		require.NoError(t, err)
		require.NoError(t, d.Delete(users[0].ID))

		id, editing := d.EditingID()
		require.True(t, editing)
		require.Equal(t, users[2].ID, id)
		_, err = d.UpdateField(id, "first_name", "Cyrus")
		require.NoError(t, err)
		got, err := d.CommitEdit(id)
		require.NoError(t, err)
		require.Equal(t, "Cyrus", got.FirstName)
		require.Equal(t, "Cyrus", d.Users()[1].FirstName)
	})
}

func TestEdit(t *testing.T) {
	t.Run("begin update commit", func(t *testing.T) {
		d := loaded(t, userA, userB)
		id := d.Users()[1].ID

		draft, err := d.BeginEdit(id)
		require.NoError(t, err)
		require.Equal(t, "Bob", draft.FirstName)

		_, err = d.UpdateField(id, "first_name", "Robert")
		require.NoError(t, err)
		_, err = d.UpdateField(id, "is_employed", "true")
		require.NoError(t, err)
		_, err = d.UpdateField(id, "is_founder", "false")
		require.NoError(t, err)
		_, err = d.UpdateField(id, "age", "42")
		require.NoError(t, err)

		// 尚未儲存前清單不變
		require.Equal(t, "Bob", d.Users()[1].FirstName)

		saved, err := d.CommitEdit(id)
		require.NoError(t, err)
		_, editing := d.EditingID()
		require.False(t, editing)

		got := d.Users()[1]
		require.Equal(t, saved, got)
		require.Equal(t, id, got.ID)
		require.Equal(t, "Robert", got.FirstName)
		require.Equal(t, 42, got.Age)
		require.True(t, got.IsEmployed)
		require.False(t, got.IsFounder)
		require.Equal(t, userB.LastName, got.LastName)
		require.Equal(t, userA, withoutIDs(d.Users())[0])
	})

	t.Run("commit without changes", func(t *testing.T) {
		d := loaded(t, userA)
		id := d.Users()[0].ID
		_, err := d.BeginEdit(id)
		require.NoError(t, err)
		_, err = d.CommitEdit(id)
		require.NoError(t, err)
		require.Equal(t, []model.User{userA}, withoutIDs(d.Users()))
	})

	t.Run("cancel discards draft", func(t *testing.T) {
		d := loaded(t, userA)
		id := d.Users()[0].ID
		_, err := d.BeginEdit(id)
		require.NoError(t, err)
		_, err = d.UpdateField(id, "username", "countess")
		require.NoError(t, err)
		d.CancelEdit()

		require.Equal(t, "ada", d.Users()[0].Username)
		_, err = d.CommitEdit(id)
		require.ErrorIs(t, err, ErrNotEditing)
	})

	t.Run("cancel only for the edited record", func(t *testing.T) {
		d := loaded(t, userA, userB)
		users := d.Users()
		_, err := d.BeginEdit(users[0].ID)
		require.NoError(t, err)

		require.ErrorIs(t, d.CancelEditFor(users[1].ID), ErrNotEditing)
		id, editing := d.EditingID()
		require.True(t, editing)
		require.Equal(t, users[0].ID, id)

		require.NoError(t, d.CancelEditFor(users[0].ID))
		_, editing = d.EditingID()
		require.False(t, editing)
		require.ErrorIs(t, d.CancelEditFor(users[0].ID), ErrNotEditing)
	})

	t.Run("switching target abandons previous draft", func(t *testing.T) {
		d := loaded(t, userA, userB)
		users := d.Users()
		_, err := d.BeginEdit(users[0].ID)
		require.NoError(t, err)
		_, err = d.UpdateField(users[0].ID, "username", "changed")
		require.NoError(t, err)

		_, err = d.BeginEdit(users[1].ID)
		require.NoError(t, err)
		_, err = d.UpdateField(users[0].ID, "username", "again")
		require.ErrorIs(t, err, ErrNotEditing)
		require.Equal(t, "ada", d.Users()[0].Username)
	})

	t.Run("errors", func(t *testing.T) {
		d := loaded(t, userA)
		id := d.Users()[0].ID

		_, err := d.BeginEdit(uuid.New())
		require.ErrorIs(t, err, ErrNotFound)

		_, err = d.UpdateField(id, "first_name", "x")
		require.ErrorIs(t, err, ErrNotEditing)

		_, err = d.BeginEdit(id)
		require.NoError(t, err)
		_, err = d.UpdateField(id, "nickname", "x")
		require.ErrorIs(t, err, schema.ErrUnknownField)
		// 格式不對的值不算錯誤
		draft, err := d.UpdateField(id, "age", "old")
		require.NoError(t, err)
		require.Equal(t, userA.Age, draft.Age)
	})

	t.Run("snapshot exposes edit draft", func(t *testing.T) {
		d := loaded(t, userA)
		id := d.Users()[0].ID
		_, err := d.BeginEdit(id)
		require.NoError(t, err)
		_, err = d.UpdateField(id, "first_name", "Augusta")
		require.NoError(t, err)

		s := d.Snapshot()
		require.NotNil(t, s.Editing)
		require.Equal(t, id, s.Editing.ID)
		require.Equal(t, "Augusta", s.Editing.FirstName)
		require.Equal(t, "Ada", s.Users[0].FirstName)

		s.Editing.FirstName = "mutated"
		require.Equal(t, "Augusta", d.Snapshot().Editing.FirstName)
	})
}

func TestDraft(t *testing.T) {
	t.Run("submit appends and resets", func(t *testing.T) {
		d := loaded(t, userA)
		for field, raw := range map[string]string{
			"first_name":     "Grace",
			"last_name":      "Hopper",
			"username":       "grace",
			"age":            "85",
			"marital_status": "married",
			"is_employed":    "true",
			"is_founder":     "true",
		} {
			_, err := d.UpdateDraftField(field, raw)
			require.NoError(t, err)
		}
		want := model.User{
			FirstName: "Grace", LastName: "Hopper", Username: "grace", Age: 85,
			MaritalStatus: model.Married, IsEmployed: true, IsFounder: true,
		}
		require.Equal(t, want, d.Draft())

		added := d.Submit()
		require.NotEqual(t, uuid.Nil, added.ID)

		users := d.Users()
		require.Len(t, users, 2)
		require.Equal(t, added, users[1])
		require.Equal(t, want, withoutIDs(users)[1])
		require.Equal(t, model.User{}, d.Draft())
	})

	t.Run("empty draft is still appended", func(t *testing.T) {
		d := loaded(t)
		added := d.Submit()
		require.Len(t, d.Users(), 1)
		require.Equal(t, "", added.FirstName)
		require.Equal(t, 0, added.Age)
	})

	t.Run("submitted records are independent", func(t *testing.T) {
		d := loaded(t)
		_, err := d.UpdateDraftField("username", "one")
		require.NoError(t, err)
		first := d.Submit()
		_, err = d.UpdateDraftField("username", "two")
		require.NoError(t, err)
		second := d.Submit()
		require.NotEqual(t, first.ID, second.ID)
		require.Equal(t, "one", d.Users()[0].Username)
		require.Equal(t, "two", d.Users()[1].Username)
	})

	t.Run("malformed values are stored", func(t *testing.T) {
		d := New()
		_, err := d.UpdateDraftField("is_employed", "on")
		require.NoError(t, err)
		_, err = d.UpdateDraftField("is_founder", "maybe")
		require.NoError(t, err)
		_, err = d.UpdateDraftField("marital_status", "divorced")
		require.NoError(t, err)
		_, err = d.UpdateDraftField("age", "abc")
		require.NoError(t, err)
		want := model.User{IsEmployed: true, MaritalStatus: "divorced"}
		require.Equal(t, want, d.Draft())

		_, err = d.UpdateDraftField("email", "a@b.c")
		require.ErrorIs(t, err, schema.ErrUnknownField)
		require.Equal(t, want, d.Draft())
	})
}

func TestGet(t *testing.T) {
	d := loaded(t, userA)
	id := d.Users()[0].ID
	u, err := d.Get(id)
	require.NoError(t, err)
	require.Equal(t, "ada", u.Username)

	_, err = d.Get(uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
