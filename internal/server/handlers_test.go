package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestwall/internal/shared"
)

// errStore fails every operation; exercises the generic 500 path.
type errStore struct{}

func (errStore) Insert(ctx context.Context, e *shared.Entry) (string, error) {
	return "", errors.New("connection refused")
}

func (errStore) ListAll(ctx context.Context) ([]shared.Entry, error) {
	return nil, errors.New("connection refused")
}

func doAdd(t *testing.T, api *API, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.RequireIdentity(api.AddEntry)(rec, req)
	return rec
}

func TestAddEntry_TrimsAndPersists(t *testing.T) {
	store := NewMemoryStore()
	api := &API{Store: store}

	start := time.Now().UTC()
	rec := doAdd(t, api, `{"text": "  hello  "}`)

	require.Equal(t, 201, rec.Code)

	var got shared.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "hello", got.Text)
	assert.NotEmpty(t, got.ID)
	assert.Len(t, got.UserID, 8)
	assert.False(t, got.CreatedAt.Before(start), "createdAt must not predate the request")

	entries, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Text)
	assert.Equal(t, got.UserID, entries[0].UserID)
}

func TestAddEntry_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty text", `{"text": ""}`},
		{"whitespace only", `{"text": "   \t "}`},
		{"missing text", `{}`},
		{"malformed json", `{"text": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			api := &API{Store: store}

			rec := doAdd(t, api, tt.body)
			assert.Equal(t, 400, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp, "error")

			entries, err := store.ListAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, entries, "nothing may be persisted on rejection")
		})
	}
}

func TestAddEntry_MethodNotAllowed(t *testing.T) {
	api := &API{Store: NewMemoryStore()}
	req := httptest.NewRequest(http.MethodGet, "/add", nil)
	rec := httptest.NewRecorder()
	api.RequireIdentity(api.AddEntry)(rec, req)
	assert.Equal(t, 405, rec.Code)
}

func TestListEntries_NewestFirst(t *testing.T) {
	store := NewMemoryStore()
	api := &API{Store: store}

	base := time.Now().UTC()
	_, err := store.Insert(context.Background(), &shared.Entry{
		Text: "older", CreatedAt: base.Add(-time.Minute), UserID: "stampAAA",
	})
	require.NoError(t, err)
	_, err = store.Insert(context.Background(), &shared.Entry{
		Text: "newer", CreatedAt: base, UserID: "stampBBB",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/all", nil)
	rec := httptest.NewRecorder()
	api.RequireIdentity(api.ListEntries)(rec, req)

	require.Equal(t, 200, rec.Code)

	var got []shared.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Text)
	assert.Equal(t, "older", got[1].Text)
}

func TestListEntries_EmptyIsArray(t *testing.T) {
	api := &API{Store: NewMemoryStore()}

	req := httptest.NewRequest(http.MethodGet, "/all", nil)
	rec := httptest.NewRecorder()
	api.RequireIdentity(api.ListEntries)(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestWhoAmI_ReflectsCookie(t *testing.T) {
	api := &API{Store: NewMemoryStore()}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Cookie", "userId=stampXYZ")
	rec := httptest.NewRecorder()
	api.RequireIdentity(api.WhoAmI)(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.JSONEq(t, `{"userId": "stampXYZ"}`, rec.Body.String())
}

func TestHandlers_StoreFailureIs500(t *testing.T) {
	api := &API{Store: errStore{}}

	rec := doAdd(t, api, `{"text": "hello"}`)
	assert.Equal(t, 500, rec.Code)
	assert.JSONEq(t, `{"error": "db error"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/all", nil)
	rec = httptest.NewRecorder()
	api.RequireIdentity(api.ListEntries)(rec, req)
	assert.Equal(t, 500, rec.Code)
	assert.JSONEq(t, `{"error": "db error"}`, rec.Body.String())
}
