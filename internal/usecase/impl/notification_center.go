package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "rxconsole/internal/delivery/context"
	"rxconsole/internal/domain/entity"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/lifecycle"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/domain/service"
	"rxconsole/internal/errors"
	"rxconsole/internal/usecase"

	"github.com/google/uuid"
)

const notificationsLabel = "notifications"

// MutationHook runs after the server accepted a notification mutation.
type MutationHook func(ctx context.Context)

// notificationCenter reconciles the notification page with the server.
// Push events only trigger refetches; their payloads are never applied.
type notificationCenter struct {
	repo     repository.NotificationRepository
	logger   *slog.Logger
	now      func() time.Time
	onMutate []MutationHook

	mu       sync.Mutex
	state    usecase.NotificationState
	window   entity.PageWindow[entity.Notification]
	unread   int
	page     int
	filter   usecase.NotificationFilter
	selected map[string]struct{}
	pending  *usecase.DeleteConfirmation
	issued   uint64
	applied  uint64
	fetchErr error
	// requested is the page of the latest user-initiated load.
	requested int

	mountMu sync.Mutex
	sub     service.Subscription
	cancel  context.CancelFunc
}

// NewNotificationCenter creates the notification page controller. The hooks
// run in order after every successful read-state change or delete.
func NewNotificationCenter(
	repo repository.NotificationRepository,
	logger *slog.Logger,
	now func() time.Time,
	hooks ...MutationHook,
) usecase.NotificationCenter {
	if now == nil {
		now = time.Now
	}

	return &notificationCenter{
		repo:      repo,
		logger:    logger,
		now:       now,
		onMutate:  hooks,
		state:     usecase.NotificationIdle,
		page:      1,
		requested: 1,
		filter:    usecase.NotificationFilter{Read: entity.ReadFilterAll, DateRange: entity.DateRangeAll},
		selected:  make(map[string]struct{}),
	}
}

func (n *notificationCenter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}

// Mount subscribes to the stream and loads the first page. A second Mount is a no-op.
func (n *notificationCenter) Mount(ctx context.Context, stream service.EventStream) {
	n.mountMu.Lock()
	defer n.mountMu.Unlock()

	if n.sub != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	n.sub = stream.Subscribe(func(event service.Event) {
		if !event.IsNotification() && !event.IsConnect() {
			return
		}
		go n.refresh(ctx, event)
	})

	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()

		n.mu.Lock()
		page := n.requested
		n.mu.Unlock()
		if _, err := n.Load(loadCtx, page); err != nil {
			n.log(ctx).Warn("Initial notification load failed", slog.Any("error", err))
		}
	}()
}

// Unmount releases the subscription exactly once.
func (n *notificationCenter) Unmount() {
	n.mountMu.Lock()
	defer n.mountMu.Unlock()

	if n.sub == nil {
		return
	}
	n.sub.Unsubscribe()
	n.cancel()
	n.sub = nil
	n.cancel = nil
}

func (n *notificationCenter) refresh(ctx context.Context, event service.Event) {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	n.mu.Lock()
	page := n.requested
	n.mu.Unlock()

	n.log(ctx).Debug("Refetching notifications", slog.String("event", event.Name), slog.Int("page", page))
	if err := n.fetch(ctx, page, true); err != nil {
		n.log(ctx).Warn("Notification refetch failed", slog.String("event", event.Name), slog.Any("error", err))
	}
}

// Load fetches a page and shows the loading state while it is in flight.
func (n *notificationCenter) Load(ctx context.Context, page int) (*usecase.NotificationView, error) {
	if page < 1 {
		return nil, domainerrors.ErrInvalidPage
	}

	if err := n.fetch(ctx, page, false); err != nil {
		return n.View(), err
	}

	return n.View(), nil
}

// fetch applies the response only if no newer one has been applied.
func (n *notificationCenter) fetch(ctx context.Context, page int, silent bool) error {
	n.mu.Lock()
	n.issued++
	gen := n.issued
	if !silent {
		n.state = usecase.NotificationLoading
		n.requested = page
	}
	n.mu.Unlock()

	result, err := n.repo.List(ctx, page)

	n.mu.Lock()
	defer n.mu.Unlock()

	if gen < n.applied {
		return nil
	}
	n.applied = gen

	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionMissing) || errors.Is(err, domainerrors.ErrSessionExpired) {
			n.fetchErr = err
		} else {
			n.fetchErr = domainerrors.NewRemoteFetchError(notificationsLabel, repository.ServerMessage(err), err)
		}
		n.state = usecase.NotificationError
		n.page = page

		return n.fetchErr
	}

	n.window = result.Window
	n.unread = result.UnreadCount
	n.page = result.Window.Page
	n.state = usecase.NotificationLoaded
	n.fetchErr = nil
	n.pruneSelectionLocked()

	return nil
}

func (n *notificationCenter) pruneSelectionLocked() {
	present := make(map[string]struct{}, len(n.window.Items))
	for _, item := range n.window.Items {
		present[item.ID] = struct{}{}
	}
	for id := range n.selected {
		if _, ok := present[id]; !ok {
			delete(n.selected, id)
		}
	}
}

// View returns the filtered page with the server's unread count.
func (n *notificationCenter) View() *usecase.NotificationView {
	n.mu.Lock()
	defer n.mu.Unlock()

	view := &usecase.NotificationView{
		State:       n.state,
		Items:       n.visibleLocked(),
		Page:        pageInfo(n.window),
		Buttons:     PageButtons(n.window.Page, n.window.TotalPages),
		UnreadCount: n.unread,
		Filter:      n.filter,
		Selected:    n.selectedLocked(),
	}
	if n.pending != nil {
		pending := *n.pending
		view.Pending = &pending
	}
	if n.fetchErr != nil {
		view.Error = errorMessage(n.fetchErr)
		view.Retryable = true
	}

	return view
}

func (n *notificationCenter) visibleLocked() []entity.Notification {
	now := n.now()
	visible := make([]entity.Notification, 0, len(n.window.Items))
	for _, item := range n.window.Items {
		if !entity.MatchesSearch(n.filter.Search, item.Message, item.Role) {
			continue
		}
		if !n.filter.Read.Matches(item) || !n.filter.DateRange.Contains(item.CreatedAt, now) {
			continue
		}
		visible = append(visible, item)
	}

	return visible
}

// selectedLocked returns the selection in page order.
func (n *notificationCenter) selectedLocked() []string {
	ids := make([]string, 0, len(n.selected))
	for _, item := range n.window.Items {
		if _, ok := n.selected[item.ID]; ok {
			ids = append(ids, item.ID)
		}
	}

	return ids
}

// SetFilter filters the loaded page.
func (n *notificationCenter) SetFilter(filter usecase.NotificationFilter) (*usecase.NotificationView, error) {
	read, ok := entity.ParseReadFilter(string(filter.Read))
	if !ok {
		return nil, domainerrors.ErrInvalidFilter.WithDetails("read " + string(filter.Read))
	}
	dateRange, ok := entity.ParseDateRange(string(filter.DateRange))
	if !ok {
		return nil, domainerrors.ErrInvalidFilter.WithDetails("date range " + string(filter.DateRange))
	}

	n.mu.Lock()
	n.filter = usecase.NotificationFilter{
		Search:    strings.TrimSpace(filter.Search),
		Read:      read,
		DateRange: dateRange,
	}
	n.mu.Unlock()

	return n.View(), nil
}

func (n *notificationCenter) findLocked(id string) (entity.Notification, bool) {
	for _, item := range n.window.Items {
		if item.ID == id {
			return item, true
		}
	}

	return entity.Notification{}, false
}

// Open returns the notification; an unread one is marked read and the page refetched.
func (n *notificationCenter) Open(ctx context.Context, id string) (*entity.Notification, error) {
	n.mu.Lock()
	item, ok := n.findLocked(id)
	n.mu.Unlock()
	if !ok {
		return nil, domainerrors.ErrNotificationNotFound.WithDetails(id)
	}

	if item.IsRead {
		return &item, nil
	}

	if _, err := n.repo.MarkRead(ctx, []string{id}); err != nil {
		return nil, n.mutationError("mark", "notification as read", err)
	}
	item.IsRead = true
	n.resync(ctx)
	n.mutated(ctx)

	return &item, nil
}

// MarkRead sends only the ids that are currently unread.
func (n *notificationCenter) MarkRead(ctx context.Context, ids []string) (string, error) {
	return n.setRead(ctx, ids, true)
}

// MarkUnread sends only the ids that are currently read.
func (n *notificationCenter) MarkUnread(ctx context.Context, ids []string) (string, error) {
	return n.setRead(ctx, ids, false)
}

func (n *notificationCenter) setRead(ctx context.Context, ids []string, read bool) (string, error) {
	n.mu.Lock()
	changed := n.differingLocked(ids, read)
	n.mu.Unlock()

	state := "unread"
	if read {
		state = "read"
	}
	if len(changed) == 0 {
		return "Notifications already marked as " + state, nil
	}

	var (
		message string
		err     error
	)
	if read {
		message, err = n.repo.MarkRead(ctx, changed)
	} else {
		message, err = n.repo.MarkUnread(ctx, changed)
	}
	if err != nil {
		n.log(ctx).Warn("Failed to update read state", slog.Int("count", len(changed)), slog.Any("error", err))

		return "", n.mutationError("mark", "notifications as "+state, err)
	}
	n.resync(ctx)
	n.mutated(ctx)

	return successMessage(message, "Notifications marked as "+state), nil
}

// differingLocked keeps the requested ids on the loaded page whose read state differs from read.
func (n *notificationCenter) differingLocked(ids []string, read bool) []string {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	changed := make([]string, 0, len(ids))
	for _, item := range n.window.Items {
		if _, ok := wanted[item.ID]; ok && item.IsRead != read {
			changed = append(changed, item.ID)
		}
	}

	return changed
}

// RequestDelete stages a bulk delete that must be confirmed.
func (n *notificationCenter) RequestDelete(ids []string) (*usecase.DeleteConfirmation, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	staged := make([]string, 0, len(ids))
	for _, item := range n.window.Items {
		if _, ok := wanted[item.ID]; ok {
			staged = append(staged, item.ID)
		}
	}
	if len(staged) == 0 {
		return nil, domainerrors.ErrEmptySelection
	}

	n.pending = &usecase.DeleteConfirmation{Token: uuid.NewString(), IDs: staged}
	pending := *n.pending

	return &pending, nil
}

// ConfirmDelete deletes the staged notifications and refetches.
func (n *notificationCenter) ConfirmDelete(ctx context.Context, token string) (string, error) {
	n.mu.Lock()
	if n.pending == nil || n.pending.Token != token {
		n.mu.Unlock()

		return "", domainerrors.ErrConfirmationNotFound
	}
	ids := append([]string(nil), n.pending.IDs...)
	n.mu.Unlock()

	message, err := n.repo.Delete(ctx, ids)
	if err != nil {
		n.log(ctx).Warn("Failed to delete notifications", slog.Int("count", len(ids)), slog.Any("error", err))

		return "", n.mutationError("delete", notificationsLabel, err)
	}

	n.mu.Lock()
	if n.pending != nil && n.pending.Token == token {
		n.pending = nil
	}
	for _, id := range ids {
		delete(n.selected, id)
	}
	n.mu.Unlock()
	n.resync(ctx)
	n.mutated(ctx)

	return successMessage(message, "Notifications deleted"), nil
}

// CancelDelete discards the staged delete without touching anything else.
func (n *notificationCenter) CancelDelete(token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.pending == nil || n.pending.Token != token {
		return domainerrors.ErrConfirmationNotFound
	}
	n.pending = nil

	return nil
}

// Toggle flips one visible notification in or out of the selection.
func (n *notificationCenter) Toggle(id string) []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.selected[id]; ok {
		delete(n.selected, id)
	} else if _, ok := n.findLocked(id); ok {
		n.selected[id] = struct{}{}
	}

	return n.selectedLocked()
}

// SelectAll selects every visible notification, or clears the selection when all are already selected.
func (n *notificationCenter) SelectAll() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	visible := n.visibleLocked()
	all := len(visible) > 0
	for _, item := range visible {
		if _, ok := n.selected[item.ID]; !ok {
			all = false

			break
		}
	}

	n.selected = make(map[string]struct{}, len(visible))
	if !all {
		for _, item := range visible {
			n.selected[item.ID] = struct{}{}
		}
	}

	return n.selectedLocked()
}

// ClearSelection empties the selection.
func (n *notificationCenter) ClearSelection() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.selected = make(map[string]struct{})
}

// resync silently refetches the requested page so the unread count reflects the server.
func (n *notificationCenter) resync(ctx context.Context) {
	n.mu.Lock()
	page := n.requested
	n.mu.Unlock()

	if err := n.fetch(ctx, page, true); err != nil {
		n.log(ctx).Warn("Refetch after mutation failed", slog.Int("page", page), slog.Any("error", err))
	}
}

func (n *notificationCenter) mutated(ctx context.Context) {
	for _, hook := range n.onMutate {
		hook(ctx)
	}
}

func (n *notificationCenter) mutationError(action, label string, err error) error {
	if errors.Is(err, domainerrors.ErrSessionMissing) || errors.Is(err, domainerrors.ErrSessionExpired) {
		return err
	}

	return domainerrors.NewRemoteMutationError(action, label, repository.ServerMessage(err), err)
}
