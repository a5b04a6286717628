package impl

import (
	"context"
	"log/slog"
	"sync"

	"rxconsole/internal/domain/lifecycle"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/domain/service"
	"rxconsole/internal/usecase"
)

// unreadBadge is the header counter. It holds the server's unReadCount and never mutates notifications.
type unreadBadge struct {
	repo   repository.NotificationRepository
	logger *slog.Logger

	mu      sync.Mutex
	count   int
	issued  uint64
	applied uint64

	mountMu sync.Mutex
	sub     service.Subscription
	cancel  context.CancelFunc
}

// NewBadge creates the unread counter.
func NewBadge(repo repository.NotificationRepository, logger *slog.Logger) usecase.Badge {
	return &unreadBadge{repo: repo, logger: logger}
}

// Mount subscribes to the stream and fetches the initial count. A second Mount is a no-op.
func (b *unreadBadge) Mount(ctx context.Context, stream service.EventStream) {
	b.mountMu.Lock()
	defer b.mountMu.Unlock()

	if b.sub != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.sub = stream.Subscribe(func(event service.Event) {
		if event.IsNotification() || event.IsConnect() {
			go b.refreshInBackground(ctx, event.Name)
		}
	})

	go b.refreshInBackground(ctx, "mount")
}

// Unmount releases the subscription exactly once.
func (b *unreadBadge) Unmount() {
	b.mountMu.Lock()
	defer b.mountMu.Unlock()

	if b.sub == nil {
		return
	}
	b.sub.Unsubscribe()
	b.cancel()
	b.sub = nil
	b.cancel = nil
}

func (b *unreadBadge) refreshInBackground(ctx context.Context, trigger string) {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := b.Refresh(ctx); err != nil {
		b.logger.Warn("Unread count refresh failed", slog.String("trigger", trigger), slog.Any("error", err))
	}
}

// Refresh fetches the first page for its unread count. Older responses never overwrite newer ones.
func (b *unreadBadge) Refresh(ctx context.Context) (int, error) {
	b.mu.Lock()
	b.issued++
	gen := b.issued
	b.mu.Unlock()

	page, err := b.repo.List(ctx, 1)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		return b.count, err
	}
	if gen > b.applied {
		b.applied = gen
		b.count = page.UnreadCount
	}

	return b.count, nil
}

// Count returns the last applied server count.
func (b *unreadBadge) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.count
}

// RefreshBadge returns a hook that refetches the badge count after a mutation.
func RefreshBadge(badge usecase.Badge, logger *slog.Logger) MutationHook {
	return func(ctx context.Context) {
		if _, err := badge.Refresh(ctx); err != nil {
			logger.Warn("Unread count refresh after mutation failed", slog.Any("error", err))
		}
	}
}
