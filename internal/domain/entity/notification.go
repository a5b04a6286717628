package entity

import (
	"strings"
	"time"
)

// Notification is a message addressed to a role or a specific user.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Role      string    `json:"role"`
	UserID    *string   `json:"userId"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetID returns the notification identifier.
func (n Notification) GetID() string {
	return n.ID
}

// GetCreatedAt returns the creation timestamp.
func (n Notification) GetCreatedAt() time.Time {
	return n.CreatedAt
}

// NotificationPage is one page of notifications plus the server's unread total.
type NotificationPage struct {
	Window      PageWindow[Notification] `json:"window"`
	UnreadCount int                      `json:"unreadCount"`
}

// ReadFilter selects notifications by read state.
type ReadFilter string

const (
	ReadFilterAll    ReadFilter = "all"
	ReadFilterRead   ReadFilter = "read"
	ReadFilterUnread ReadFilter = "unread"
)

// ParseReadFilter accepts the dropdown values; empty means all.
func ParseReadFilter(raw string) (ReadFilter, bool) {
	switch ReadFilter(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ReadFilterAll:
		return ReadFilterAll, true
	case ReadFilterRead:
		return ReadFilterRead, true
	case ReadFilterUnread:
		return ReadFilterUnread, true
	default:
		return "", false
	}
}

// Matches reports whether the notification passes the filter.
func (f ReadFilter) Matches(n Notification) bool {
	switch f {
	case ReadFilterRead:
		return n.IsRead
	case ReadFilterUnread:
		return !n.IsRead
	default:
		return true
	}
}
