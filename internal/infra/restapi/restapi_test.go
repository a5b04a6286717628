package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"rxconsole/config"
	"rxconsole/internal/domain/entity"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	mockSvc "rxconsole/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := mockSvc.NewMockTokenSource(t)
	tokens.EXPECT().Token(mock.Anything).Return("test-token", nil).Maybe()

	cfg := &config.Config{API: &config.APIConfig{BaseURL: server.URL + "/api/v1/", Timeout: 5 * time.Second, PageLimit: 10}}

	return NewClient(cfg, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := io.WriteString(w, body)
	require.NoError(t, err)
}

func TestResourceRepository_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/drivers", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		items := make([]map[string]any, 0, 5)
		for i := 21; i <= 25; i++ {
			items = append(items, map[string]any{"id": fmt.Sprintf("d%d", i), "name": fmt.Sprintf("Driver %d", i), "status": "active"})
		}
		raw, err := json.Marshal(map[string]any{
			"success": true,
			"data":    items,
			"meta":    map[string]any{"page": 3, "limit": 10, "total": 25, "totalPage": 3},
		})
		require.NoError(t, err)
		writeJSON(t, w, http.StatusOK, string(raw))
	})
	repo := NewResourceRepository[entity.Driver](client, "/drivers/")

	window, err := repo.List(context.Background(), 3)

	require.NoError(t, err)
	assert.Len(t, window.Items, 5)
	assert.Equal(t, 3, window.Page)
	assert.Equal(t, 25, window.Total)
	assert.Equal(t, 3, window.TotalPages)
	assert.Equal(t, "d21", window.Items[0].GetID())
	assert.Equal(t, "Driver 21", window.Items[0].Name)
	assert.Equal(t, entity.StatusActive, window.Items[0].Status)
}

func TestResourceRepository_ListDerivesTotalPages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		// totalPage disagrees with total/limit; the derived value wins.
		writeJSON(t, w, http.StatusOK, `{"success":true,"data":[{"id":"z1","zipCode":"10001"}],"meta":{"page":1,"limit":10,"total":11,"totalPage":1}}`)
	})
	repo := NewResourceRepository[entity.ZipCode](client, "zip-codes")

	window, err := repo.List(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, window.TotalPages)
	assert.Equal(t, "10001", window.Items[0].Code)
}

func TestResourceRepository_ListWithoutMeta(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"success":true,"data":[{"id":"b1"},{"id":"b2"}]}`)
	})
	repo := NewResourceRepository[entity.Blog](client, "blogs")

	window, err := repo.List(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, window.Items, 2)
	assert.Equal(t, 2, window.Total)
	assert.Equal(t, 1, window.TotalPages)
}

func TestResourceRepository_ListFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, `{"success":false,"message":"Database unavailable"}`)
	})
	repo := NewResourceRepository[entity.Driver](client, "drivers")

	_, err := repo.List(context.Background(), 1)

	var apiErr *repository.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Database unavailable", repository.ServerMessage(err))
}

func TestResourceRepository_UnauthorizedIsSessionExpired(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, `{"success":false,"message":"jwt expired"}`)
	})
	repo := NewResourceRepository[entity.Driver](client, "drivers")

	_, err := repo.List(context.Background(), 1)

	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestResourceRepository_MissingSessionSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	tokens := mockSvc.NewMockTokenSource(t)
	tokens.EXPECT().Token(mock.Anything).Return("", domainerrors.ErrSessionMissing).Once()
	cfg := &config.Config{API: &config.APIConfig{BaseURL: server.URL, Timeout: time.Second, PageLimit: 10}}
	client := NewClient(cfg, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := NewResourceRepository[entity.Driver](client, "drivers").List(context.Background(), 1)

	assert.ErrorIs(t, err, domainerrors.ErrSessionMissing)
	assert.Zero(t, calls.Load())
}

func TestResourceRepository_CreateJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/zip-codes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "10001", body["zipCode"])

		writeJSON(t, w, http.StatusCreated, `{"success":true,"message":"Zip code created"}`)
	})
	repo := NewResourceRepository[entity.ZipCode](client, "zip-codes")

	message, err := repo.Create(context.Background(), repository.Payload{Values: map[string]any{"zipCode": "10001"}})

	require.NoError(t, err)
	assert.Equal(t, "Zip code created", message)
}

func TestResourceRepository_UpdateMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/pharmacies/p%201", r.URL.EscapedPath())

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Corner Pharmacy", r.FormValue("name"))
		assert.Equal(t, []string{"10001", "10002"}, r.MultipartForm.Value["zipCodes"])
		assert.Equal(t, "4.5", r.FormValue("fee"))

		file, header, err := r.FormFile("logo")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "logo.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte("png-bytes"), data)

		writeJSON(t, w, http.StatusOK, `{"success":true,"message":"Pharmacy updated"}`)
	})
	repo := NewResourceRepository[entity.Pharmacy](client, "pharmacies")

	message, err := repo.Update(context.Background(), "p 1", repository.Payload{
		Values: map[string]any{"name": "Corner Pharmacy", "zipCodes": []string{"10001", "10002"}, "fee": 4.5},
		Attachment: &repository.Attachment{
			Field:       "logo",
			Filename:    "logo.png",
			ContentType: "image/png",
			Data:        []byte("png-bytes"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Pharmacy updated", message)
}

func TestResourceRepository_DeleteSuccessFalse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/drivers/d1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"success":false,"message":"Driver has active orders"}`)
	})
	repo := NewResourceRepository[entity.Driver](client, "drivers")

	_, err := repo.Delete(context.Background(), "d1")

	assert.Equal(t, "Driver has active orders", repository.ServerMessage(err))
}

func TestNotificationRepository_ListUnreadCount(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "meta", body: `{"success":true,"data":[{"id":"n1","message":"hi","isRead":false}],"meta":{"page":1,"limit":10,"total":1,"totalPage":1,"unReadCount":4}}`, want: 4},
		{name: "top level", body: `{"success":true,"data":[],"meta":{"page":1,"limit":10,"total":0},"unReadCount":2}`, want: 2},
		{name: "absent", body: `{"success":true,"data":[]}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/notifications", r.URL.Path)
				writeJSON(t, w, http.StatusOK, tt.body)
			})

			page, err := NewNotificationRepository(client).List(context.Background(), 1)

			require.NoError(t, err)
			assert.Equal(t, tt.want, page.UnreadCount)
		})
	}
}

func TestNotificationRepository_BulkEndpoints(t *testing.T) {
	type call struct {
		method string
		path   string
		ids    []string
	}
	var calls []call

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body idsBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		calls = append(calls, call{method: r.Method, path: r.URL.Path, ids: body.IDs})
		writeJSON(t, w, http.StatusOK, `{"success":true,"message":"ok"}`)
	})
	repo := NewNotificationRepository(client)
	ctx := context.Background()

	_, err := repo.MarkRead(ctx, []string{"n1", "n2"})
	require.NoError(t, err)
	_, err = repo.MarkUnread(ctx, []string{"n3"})
	require.NoError(t, err)
	_, err = repo.Delete(ctx, []string{"n4"})
	require.NoError(t, err)

	assert.Equal(t, []call{
		{method: http.MethodPatch, path: "/api/v1/notifications/mark-read", ids: []string{"n1", "n2"}},
		{method: http.MethodPatch, path: "/api/v1/notifications/mark-unread", ids: []string{"n3"}},
		{method: http.MethodDelete, path: "/api/v1/notifications", ids: []string{"n4"}},
	}, calls)
}
