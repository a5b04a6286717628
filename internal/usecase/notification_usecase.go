package usecase

import (
	"context"

	"rxconsole/internal/domain/entity"
	"rxconsole/internal/domain/service"
)

// NotificationState is the lifecycle of the notification list view.
type NotificationState string

const (
	NotificationIdle    NotificationState = "idle"
	NotificationLoading NotificationState = "loading"
	NotificationLoaded  NotificationState = "loaded"
	NotificationError   NotificationState = "error"
)

// NotificationFilter is the page-local filter of the notification list.
type NotificationFilter struct {
	Search    string            `json:"search"`
	Read      entity.ReadFilter `json:"read"`
	DateRange entity.DateRange  `json:"dateRange"`
}

// DeleteConfirmation is a bulk delete waiting for the operator to confirm or cancel.
type DeleteConfirmation struct {
	Token string   `json:"token"`
	IDs   []string `json:"ids"`
}

// NotificationView is a snapshot of the notification page.
type NotificationView struct {
	State       NotificationState     `json:"state"`
	Items       []entity.Notification `json:"items"`
	Page        PageInfo              `json:"page"`
	Buttons     []PageButton          `json:"buttons"`
	UnreadCount int                   `json:"unreadCount"`
	Filter      NotificationFilter    `json:"filter"`
	Selected    []string              `json:"selected"`
	Pending     *DeleteConfirmation   `json:"pending,omitempty"`
	Error       string                `json:"error,omitempty"`
	Retryable   bool                  `json:"retryable,omitempty"`
}

// NotificationCenter keeps the notification list reconciled with the server.
type NotificationCenter interface {
	// Mount subscribes to push events until Unmount; mounting twice is a no-op.
	Mount(ctx context.Context, stream service.EventStream)
	Unmount()

	// Load fetches a page with the loading indicator shown.
	Load(ctx context.Context, page int) (*NotificationView, error)
	View() *NotificationView
	SetFilter(filter NotificationFilter) (*NotificationView, error)

	// Open returns a notification and marks it read when it was unread.
	Open(ctx context.Context, id string) (*entity.Notification, error)

	MarkRead(ctx context.Context, ids []string) (string, error)
	MarkUnread(ctx context.Context, ids []string) (string, error)

	RequestDelete(ids []string) (*DeleteConfirmation, error)
	ConfirmDelete(ctx context.Context, token string) (string, error)
	CancelDelete(token string) error

	Toggle(id string) []string
	SelectAll() []string
	ClearSelection()
}

// Badge is the header unread counter. It only reads.
type Badge interface {
	Mount(ctx context.Context, stream service.EventStream)
	Unmount()
	Refresh(ctx context.Context) (int, error)
	Count() int
}
