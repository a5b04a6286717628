package restapi

import (
	"context"
	"encoding/json"
	"net/http"

	"rxconsole/internal/domain/entity"
	"rxconsole/internal/domain/repository"

	"github.com/pkg/errors"
)

const notificationsPath = "notifications"

type idsBody struct {
	IDs []string `json:"ids"`
}

type notificationRepository struct {
	client *Client
}

// NewNotificationRepository creates the notification API repository.
func NewNotificationRepository(client *Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

// List fetches one page together with the server's unread count.
func (r *notificationRepository) List(ctx context.Context, page int) (*entity.NotificationPage, error) {
	env, err := r.client.do(ctx, request{
		resource: notificationsPath,
		method:   http.MethodGet,
		path:     notificationsPath,
		query:    pageQuery(page, r.client.PageLimit()),
	})
	if err != nil {
		return nil, err
	}

	var items []entity.Notification
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, errors.Wrap(err, "decode notification list")
		}
	}

	return &entity.NotificationPage{
		Window:      window(items, env.Meta, page, r.client.PageLimit()),
		UnreadCount: env.unreadCount(),
	}, nil
}

// MarkRead flags notifications as read.
func (r *notificationRepository) MarkRead(ctx context.Context, ids []string) (string, error) {
	return r.bulk(ctx, http.MethodPatch, notificationsPath+"/mark-read", ids)
}

// MarkUnread flags notifications as unread.
func (r *notificationRepository) MarkUnread(ctx context.Context, ids []string) (string, error) {
	return r.bulk(ctx, http.MethodPatch, notificationsPath+"/mark-unread", ids)
}

// Delete removes notifications.
func (r *notificationRepository) Delete(ctx context.Context, ids []string) (string, error) {
	return r.bulk(ctx, http.MethodDelete, notificationsPath, ids)
}

func (r *notificationRepository) bulk(ctx context.Context, method, path string, ids []string) (string, error) {
	body, err := jsonBody(idsBody{IDs: ids})
	if err != nil {
		return "", err
	}

	env, err := r.client.do(ctx, request{
		resource:    notificationsPath,
		method:      method,
		path:        path,
		body:        body,
		contentType: "application/json",
	})
	if err != nil {
		return "", err
	}

	return env.Message, nil
}
