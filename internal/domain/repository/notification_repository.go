package repository

import (
	"context"

	"rxconsole/internal/domain/entity"
)

// NotificationRepository is the REST contract of the notification API.
type NotificationRepository interface {
	// List fetches one page together with the server-side unread count.
	List(ctx context.Context, page int) (*entity.NotificationPage, error)

	// MarkRead flags the given notifications as read.
	MarkRead(ctx context.Context, ids []string) (string, error)

	// MarkUnread flags the given notifications as unread.
	MarkUnread(ctx context.Context, ids []string) (string, error)

	// Delete removes the given notifications.
	Delete(ctx context.Context, ids []string) (string, error)
}
