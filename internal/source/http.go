package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"user-directory/internal/model"
)

// HTTPSource 以單一 GET 取得 JSON 陣列
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource client 為 nil 時使用 http.DefaultClient
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("HTTPSource: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTPSource: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTPSource: unexpected status %d", resp.StatusCode)
	}

	var users []model.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("HTTPSource: decode: %w", err)
	}
	return users, nil
}
