// Package directory 持有使用者目錄的全部畫面狀態：紀錄清單、載入旗標、
// 編輯中的草稿與新增表單的草稿。所有變更都只存在記憶體中。
package directory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"user-directory/internal/model"
	"user-directory/internal/schema"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrNotEditing = errors.New("user is not being edited")
)

// Source 提供初始紀錄清單
type Source interface {
	Fetch(ctx context.Context) ([]model.User, error)
}

// editSession 編輯模式：目標 ID 與其草稿副本
type editSession struct {
	id    uuid.UUID
	draft model.User
}

// Snapshot 某一時刻的完整狀態副本，供畫面渲染使用
type Snapshot struct {
	Loading bool
	Users   []model.User
	// Editing 為 nil 表示沒有紀錄在編輯中
	Editing *model.User
	Draft   model.User
}

// Directory 目錄狀態持有者
type Directory struct {
	mu      sync.RWMutex
	users   []model.User
	loading bool
	editing *editSession
	draft   model.User
	newID   func() uuid.UUID
}

// New 建立空的目錄，載入旗標為 true 直到 Load 完成
func New() *Directory {
	return &Directory{loading: true, newID: uuid.New}
}

// Load 從 src 取得紀錄並整批取代清單。
// 失敗時只記錄 log 並結束載入狀態，清單保持不變。
func (d *Directory) Load(ctx context.Context, src Source) {
	users, err := src.Fetch(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false
	if err != nil {
		log.Error().Err(err).Msg("Error fetching users")
		return
	}
	d.users = make([]model.User, len(users))
	for i, u := range users {
		u.ID = d.newID()
		d.users[i] = u
	}
	log.Info().Int("count", len(users)).Msg("users loaded")
}

// Loading 初始載入是否仍在進行
func (d *Directory) Loading() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loading
}

// Users 回傳清單副本
func (d *Directory) Users() []model.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.User, len(d.users))
	copy(out, d.users)
	return out
}

// Get 依 ID 取得紀錄
func (d *Directory) Get(id uuid.UUID) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i := d.indexOf(id)
	if i < 0 {
		return model.User{}, fmt.Errorf("Get %s: %w", id, ErrNotFound)
	}
	return d.users[i], nil
}

// Snapshot 回傳目前狀態的副本
func (d *Directory) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s := Snapshot{
		Loading: d.loading,
		Users:   make([]model.User, len(d.users)),
		Draft:   d.draft,
	}
	copy(s.Users, d.users)
	if d.editing != nil {
		draft := d.editing.draft
		s.Editing = &draft
	}
	return s
}

// Delete 移除指定紀錄，其餘順序不變。
// 若刪除的是編輯中的紀錄，一併結束編輯模式。
func (d *Directory) Delete(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.indexOf(id)
	if i < 0 {
		return fmt.Errorf("Delete %s: %w", id, ErrNotFound)
	}
	next := make([]model.User, 0, len(d.users)-1)
	next = append(next, d.users[:i]...)
	next = append(next, d.users[i+1:]...)
	d.users = next
	if d.editing != nil && d.editing.id == id {
		d.editing = nil
	}
	return nil
}

// BeginEdit 進入編輯模式，草稿是紀錄的副本，儲存前清單不變。
// 同一時間只有一個編輯對象：換編輯對象時，前一筆尚未儲存的修改會被丟棄，
// 不會像直接修改清單那樣保留下來。
func (d *Directory) BeginEdit(id uuid.UUID) (model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.indexOf(id)
	if i < 0 {
		return model.User{}, fmt.Errorf("BeginEdit %s: %w", id, ErrNotFound)
	}
	d.editing = &editSession{id: id, draft: d.users[i]}
	return d.editing.draft, nil
}

// EditingID 回傳編輯中的紀錄 ID
func (d *Directory) EditingID() (uuid.UUID, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.editing == nil {
		return uuid.Nil, false
	}
	return d.editing.id, true
}

// UpdateField 修改編輯草稿的單一欄位
func (d *Directory) UpdateField(id uuid.UUID, field, raw string) (model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.editing == nil || d.editing.id != id {
		return model.User{}, fmt.Errorf("UpdateField %s: %w", id, ErrNotEditing)
	}
	if err := schema.Apply(&d.editing.draft, field, raw); err != nil {
		return model.User{}, fmt.Errorf("UpdateField %s: %w", id, err)
	}
	return d.editing.draft, nil
}

// CommitEdit 將草稿寫回清單並結束編輯模式，不做任何驗證
func (d *Directory) CommitEdit(id uuid.UUID) (model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.editing == nil || d.editing.id != id {
		return model.User{}, fmt.Errorf("CommitEdit %s: %w", id, ErrNotEditing)
	}
	i := d.indexOf(id)
	if i < 0 {
		d.editing = nil
		return model.User{}, fmt.Errorf("CommitEdit %s: %w", id, ErrNotFound)
	}
	next := make([]model.User, len(d.users))
	copy(next, d.users)
	next[i] = d.editing.draft
	d.users = next
	d.editing = nil
	return next[i], nil
}

// CancelEdit 放棄編輯草稿
func (d *Directory) CancelEdit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editing = nil
}

// CancelEditFor 只有在 id 正是編輯中的紀錄時才放棄草稿，
// 避免過期的頁面取消到別筆紀錄的編輯。
func (d *Directory) CancelEditFor(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.editing == nil || d.editing.id != id {
		return fmt.Errorf("CancelEdit %s: %w", id, ErrNotEditing)
	}
	d.editing = nil
	return nil
}

// Draft 回傳新增表單草稿
func (d *Directory) Draft() model.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.draft
}

// UpdateDraftField 修改新增表單草稿的單一欄位
func (d *Directory) UpdateDraftField(field, raw string) (model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := schema.Apply(&d.draft, field, raw); err != nil {
		return model.User{}, fmt.Errorf("UpdateDraftField: %w", err)
	}
	return d.draft, nil
}

// Submit 把草稿複本附加到清單尾端，並重設草稿
func (d *Directory) Submit() model.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	u := d.draft
	u.ID = d.newID()
	next := make([]model.User, len(d.users), len(d.users)+1)
	copy(next, d.users)
	d.users = append(next, u)
	d.draft = model.User{}
	return u
}

func (d *Directory) indexOf(id uuid.UUID) int {
	for i := range d.users {
		if d.users[i].ID == id {
			return i
		}
	}
	return -1
}
