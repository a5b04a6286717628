package impl

import (
	"context"
	"testing"
	"time"

	"rxconsole/internal/domain/entity"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/errors"
	mockRepo "rxconsole/internal/mocks/repository"
	"rxconsole/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationCenter(t *testing.T) (usecase.NotificationCenter, *mockRepo.MockNotificationRepository) {
	repo := mockRepo.NewMockNotificationRepository(t)

	return NewNotificationCenter(repo, testLogger(), testClock), repo
}

func loadedCenter(t *testing.T, unread int, items ...entity.Notification) (usecase.NotificationCenter, *mockRepo.MockNotificationRepository) {
	t.Helper()

	center, repo := createTestNotificationCenter(t)
	repo.EXPECT().List(mock.Anything, 1).Return(notificationPage(unread, items...), nil).Once()

	view, err := center.Load(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, usecase.NotificationLoaded, view.State)

	return center, repo
}

func notificationIDs(items []entity.Notification) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	return ids
}

func TestNotificationCenter_Load(t *testing.T) {
	center, repo := createTestNotificationCenter(t)
	ctx := context.Background()

	assert.Equal(t, usecase.NotificationIdle, center.View().State)

	repo.EXPECT().List(ctx, 1).Return(notificationPage(1,
		notification("n1", "Order #1 delivered", true),
		notification("n2", "New driver application", false),
	), nil).Once()

	view, err := center.Load(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, usecase.NotificationLoaded, view.State)
	assert.Equal(t, 1, view.UnreadCount)
	assert.Equal(t, []string{"n1", "n2"}, notificationIDs(view.Items))
}

func TestNotificationCenter_LoadFailure(t *testing.T) {
	center, repo := createTestNotificationCenter(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx, 1).Return(nil, errors.New("connection reset")).Once()

	view, err := center.Load(ctx, 1)

	var fetchErr *domainerrors.RemoteFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, usecase.NotificationError, view.State)
	assert.Equal(t, "Failed to load notifications", view.Error)
	assert.True(t, view.Retryable)
}

func TestNotificationCenter_MarkRead_SendsOnlyUnread(t *testing.T) {
	center, repo := loadedCenter(t, 2,
		notification("n1", "a", true),
		notification("n2", "b", false),
		notification("n3", "c", false),
	)
	ctx := context.Background()

	repo.EXPECT().MarkRead(ctx, []string{"n2", "n3"}).Return("", nil).Once()
	repo.EXPECT().List(ctx, 1).Return(notificationPage(0,
		notification("n1", "a", true),
		notification("n2", "b", true),
		notification("n3", "c", true),
	), nil).Once()

	message, err := center.MarkRead(ctx, []string{"n1", "n2", "n3", "elsewhere"})

	require.NoError(t, err)
	assert.Equal(t, "Notifications marked as read", message)
	assert.Equal(t, 0, center.View().UnreadCount)
}

func TestNotificationCenter_MarkRead_AlreadyReadIsNoop(t *testing.T) {
	center, repo := loadedCenter(t, 0,
		notification("n1", "a", true),
		notification("n2", "b", true),
	)

	_, err := center.MarkRead(context.Background(), []string{"n1", "n2"})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestNotificationCenter_MarkUnread_SendsOnlyRead(t *testing.T) {
	center, repo := loadedCenter(t, 1,
		notification("n1", "a", true),
		notification("n2", "b", false),
	)
	ctx := context.Background()

	repo.EXPECT().MarkUnread(ctx, []string{"n1"}).Return("Marked unread", nil).Once()
	repo.EXPECT().List(ctx, 1).Return(notificationPage(2,
		notification("n1", "a", false),
		notification("n2", "b", false),
	), nil).Once()

	message, err := center.MarkUnread(ctx, []string{"n1", "n2"})

	require.NoError(t, err)
	assert.Equal(t, "Marked unread", message)
	assert.Equal(t, 2, center.View().UnreadCount)
}

func TestNotificationCenter_MarkRead_FailureKeepsState(t *testing.T) {
	center, repo := loadedCenter(t, 1, notification("n1", "a", false))
	ctx := context.Background()

	repo.EXPECT().MarkRead(ctx, []string{"n1"}).Return("", &repository.APIError{StatusCode: 403, ServerMessage: "Forbidden"}).Once()

	_, err := center.MarkRead(ctx, []string{"n1"})

	var mutationErr *domainerrors.RemoteMutationError
	require.ErrorAs(t, err, &mutationErr)
	assert.Equal(t, "Forbidden", mutationErr.Message())
	view := center.View()
	assert.Equal(t, 1, view.UnreadCount)
	assert.False(t, view.Items[0].IsRead)
}

func TestNotificationCenter_UnreadCountIsServerTruth(t *testing.T) {
	center, repo := loadedCenter(t, 7,
		notification("n1", "a", false),
		notification("n2", "b", false),
	)
	ctx := context.Background()

	// The server reports unread notifications beyond the loaded page.
	repo.EXPECT().MarkRead(ctx, []string{"n1"}).Return("", nil).Once()
	repo.EXPECT().List(ctx, 1).Return(notificationPage(6,
		notification("n1", "a", true),
		notification("n2", "b", false),
	), nil).Once()

	_, err := center.MarkRead(ctx, []string{"n1"})

	require.NoError(t, err)
	assert.Equal(t, 6, center.View().UnreadCount)
}

func TestNotificationCenter_Open(t *testing.T) {
	center, repo := loadedCenter(t, 1,
		notification("n1", "a", true),
		notification("n2", "b", false),
	)
	ctx := context.Background()

	read, err := center.Open(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	repo.EXPECT().MarkRead(ctx, []string{"n2"}).Return("", nil).Once()
	repo.EXPECT().List(ctx, 1).Return(notificationPage(0,
		notification("n1", "a", true),
		notification("n2", "b", true),
	), nil).Once()

	opened, err := center.Open(ctx, "n2")
	require.NoError(t, err)
	assert.True(t, opened.IsRead)
	assert.Equal(t, 0, center.View().UnreadCount)

	_, err = center.Open(ctx, "n9")
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationCenter_CancelDeleteChangesNothing(t *testing.T) {
	center, repo := loadedCenter(t, 2,
		notification("n1", "a", false),
		notification("n2", "b", false),
		notification("n3", "c", true),
	)

	selected := center.SelectAll()
	require.Equal(t, []string{"n1", "n2", "n3"}, selected)

	before := center.View()
	pending, err := center.RequestDelete(selected)
	require.NoError(t, err)
	assert.Equal(t, selected, pending.IDs)

	require.NoError(t, center.CancelDelete(pending.Token))

	after := center.View()
	assert.Equal(t, before.Items, after.Items)
	assert.Equal(t, before.UnreadCount, after.UnreadCount)
	assert.Equal(t, before.Selected, after.Selected)
	assert.Nil(t, after.Pending)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	_, err = center.ConfirmDelete(context.Background(), pending.Token)
	assert.ErrorIs(t, err, domainerrors.ErrConfirmationNotFound)
}

func TestNotificationCenter_ConfirmDelete(t *testing.T) {
	center, repo := loadedCenter(t, 1,
		notification("n1", "a", false),
		notification("n2", "b", true),
	)
	ctx := context.Background()

	center.Toggle("n2")
	pending, err := center.RequestDelete([]string{"n2"})
	require.NoError(t, err)
	assert.Equal(t, pending.Token, center.View().Pending.Token)

	repo.EXPECT().Delete(ctx, []string{"n2"}).Return("", nil).Once()
	repo.EXPECT().List(ctx, 1).Return(notificationPage(1, notification("n1", "a", false)), nil).Once()

	message, err := center.ConfirmDelete(ctx, pending.Token)

	require.NoError(t, err)
	assert.Equal(t, "Notifications deleted", message)
	view := center.View()
	assert.Equal(t, []string{"n1"}, notificationIDs(view.Items))
	assert.Empty(t, view.Selected)
	assert.Nil(t, view.Pending)
}

func TestNotificationCenter_ConfirmDeleteFailureKeepsPending(t *testing.T) {
	center, repo := loadedCenter(t, 0, notification("n1", "a", true))
	ctx := context.Background()

	pending, err := center.RequestDelete([]string{"n1"})
	require.NoError(t, err)

	repo.EXPECT().Delete(ctx, []string{"n1"}).Return("", errors.New("boom")).Once()

	_, err = center.ConfirmDelete(ctx, pending.Token)

	var mutationErr *domainerrors.RemoteMutationError
	require.ErrorAs(t, err, &mutationErr)
	assert.Equal(t, "Failed to delete notifications", mutationErr.Message())
	assert.Equal(t, []string{"n1"}, notificationIDs(center.View().Items))
	assert.NotNil(t, center.View().Pending)
}

func TestNotificationCenter_RequestDeleteNeedsSelection(t *testing.T) {
	center, _ := loadedCenter(t, 0, notification("n1", "a", true))

	_, err := center.RequestDelete(nil)
	assert.ErrorIs(t, err, domainerrors.ErrEmptySelection)

	_, err = center.RequestDelete([]string{"unknown"})
	assert.ErrorIs(t, err, domainerrors.ErrEmptySelection)
}

func TestNotificationCenter_Selection(t *testing.T) {
	center, _ := loadedCenter(t, 1,
		notification("n1", "shipment delayed", false),
		notification("n2", "driver approved", true),
	)

	assert.Equal(t, []string{"n2"}, center.Toggle("n2"))
	assert.Equal(t, []string{"n1", "n2"}, center.Toggle("n1"))
	assert.Equal(t, []string{"n1"}, center.Toggle("n2"))
	assert.Equal(t, []string{"n1"}, center.Toggle("missing"))

	// Select all covers the visible set only.
	_, err := center.SetFilter(usecase.NotificationFilter{Read: entity.ReadFilterRead})
	require.NoError(t, err)
	center.ClearSelection()
	assert.Equal(t, []string{"n2"}, center.SelectAll())
	assert.Empty(t, center.SelectAll())
}

func TestNotificationCenter_SetFilter(t *testing.T) {
	old := notification("n3", "Weekly digest", true)
	old.CreatedAt = fixedNow.AddDate(0, 0, -10)
	center, _ := loadedCenter(t, 1,
		notification("n1", "Order delivered", false),
		notification("n2", "Order cancelled", true),
		old,
	)

	view, err := center.SetFilter(usecase.NotificationFilter{Search: "ORDER", Read: entity.ReadFilterRead})
	require.NoError(t, err)
	assert.Equal(t, []string{"n2"}, notificationIDs(view.Items))

	view, err = center.SetFilter(usecase.NotificationFilter{DateRange: entity.DateRangeWeek})
	require.NoError(t, err)
	assert.Equal(t, []string{"n1", "n2"}, notificationIDs(view.Items))
	assert.Equal(t, 1, view.UnreadCount)

	_, err = center.SetFilter(usecase.NotificationFilter{Read: "archived"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFilter)
}

func TestNotificationCenter_PushTriggersSilentRefetch(t *testing.T) {
	center, repo := createTestNotificationCenter(t)
	badgeRepo := mockRepo.NewMockNotificationRepository(t)
	badge := NewBadge(badgeRepo, testLogger())
	stream := newFakeStream()
	ctx := context.Background()

	repo.EXPECT().List(mock.Anything, 1).Return(notificationPage(1, notification("n1", "a", false)), nil).Once()
	badgeRepo.EXPECT().List(mock.Anything, 1).Return(notificationPage(1, notification("n1", "a", false)), nil).Once()

	center.Mount(ctx, stream)
	badge.Mount(ctx, stream)
	defer center.Unmount()
	defer badge.Unmount()

	require.Eventually(t, func() bool {
		return center.View().State == usecase.NotificationLoaded && badge.Count() == 1
	}, time.Second, 5*time.Millisecond)

	refetched := make(chan struct{})
	repo.EXPECT().List(mock.Anything, 1).RunAndReturn(func(context.Context, int) (*entity.NotificationPage, error) {
		// A push-triggered refetch never shows the loading state.
		assert.Equal(t, usecase.NotificationLoaded, center.View().State)
		defer close(refetched)

		return notificationPage(2, notification("n2", "new order", false), notification("n1", "a", false)), nil
	}).Once()
	badgeRepo.EXPECT().List(mock.Anything, 1).Return(notificationPage(2), nil).Once()

	stream.emit("notification:new")

	<-refetched
	require.Eventually(t, func() bool {
		return center.View().UnreadCount == 2 && badge.Count() == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"n2", "n1"}, notificationIDs(center.View().Items))
	assert.Equal(t, usecase.NotificationLoaded, center.View().State)
}

func notificationSecondPage(unread int, items ...entity.Notification) *entity.NotificationPage {
	return &entity.NotificationPage{
		Window:      entity.NewPageWindow(items, 2, 10, 10+len(items)),
		UnreadCount: unread,
	}
}

func TestNotificationCenter_PushDuringPageChangeTargetsRequestedPage(t *testing.T) {
	center, repo := createTestNotificationCenter(t)
	stream := newFakeStream()
	ctx := context.Background()

	repo.EXPECT().List(mock.Anything, 1).Return(notificationPage(3, notification("n1", "a", false)), nil).Once()
	center.Mount(ctx, stream)
	defer center.Unmount()

	require.Eventually(t, func() bool {
		return center.View().State == usecase.NotificationLoaded
	}, time.Second, 5*time.Millisecond)

	started := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().List(mock.Anything, 2).RunAndReturn(func(context.Context, int) (*entity.NotificationPage, error) {
		close(started)
		<-release

		return notificationSecondPage(3, notification("n11", "stale", false)), nil
	}).Once()
	repo.EXPECT().List(mock.Anything, 2).Return(notificationSecondPage(4,
		notification("n11", "stale", false),
		notification("n12", "fresh", false),
	), nil).Once()

	loaded := make(chan *usecase.NotificationView)
	go func() {
		view, _ := center.Load(ctx, 2)
		loaded <- view
	}()
	<-started

	stream.emit("notification:new")

	require.Eventually(t, func() bool {
		return center.View().UnreadCount == 4
	}, time.Second, 5*time.Millisecond)

	close(release)
	view := <-loaded

	assert.Equal(t, 2, view.Page.Page)
	assert.Equal(t, 4, view.UnreadCount)
	assert.Equal(t, []string{"n11", "n12"}, notificationIDs(view.Items))
	assert.Equal(t, usecase.NotificationLoaded, view.State)
}

func TestNotificationCenter_IgnoresUnrelatedEvents(t *testing.T) {
	center, repo := createTestNotificationCenter(t)
	stream := newFakeStream()

	repo.EXPECT().List(mock.Anything, 1).Return(notificationPage(0), nil).Once()
	center.Mount(context.Background(), stream)
	defer center.Unmount()

	require.Eventually(t, func() bool {
		return center.View().State == usecase.NotificationLoaded
	}, time.Second, 5*time.Millisecond)

	stream.emit("disconnect")
	stream.emit("connect_error")
	stream.emit("order:update")

	time.Sleep(20 * time.Millisecond)
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestNotificationCenter_MountOnceUnmountOnce(t *testing.T) {
	center, repo := createTestNotificationCenter(t)
	stream := newFakeStream()

	repo.EXPECT().List(mock.Anything, 1).Return(notificationPage(0), nil).Once()

	center.Mount(context.Background(), stream)
	center.Mount(context.Background(), stream)

	subscribed, active, _ := stream.counts()
	assert.Equal(t, 1, subscribed)
	assert.Equal(t, 1, active)

	require.Eventually(t, func() bool {
		return center.View().State == usecase.NotificationLoaded
	}, time.Second, 5*time.Millisecond)

	center.Unmount()
	center.Unmount()

	subscribed, active, unsubscribed := stream.counts()
	assert.Equal(t, 1, subscribed)
	assert.Equal(t, 0, active)
	assert.Equal(t, 1, unsubscribed)
}
