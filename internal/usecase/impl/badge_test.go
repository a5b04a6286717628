package impl

import (
	"context"
	"testing"
	"time"

	"rxconsole/internal/errors"
	mockRepo "rxconsole/internal/mocks/repository"
	"rxconsole/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBadge_RefreshUsesServerCount(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	badge := NewBadge(repo, testLogger())
	ctx := context.Background()

	repo.EXPECT().List(ctx, 1).Return(notificationPage(12, notification("n1", "a", false)), nil).Once()

	count, err := badge.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.Equal(t, 12, badge.Count())
}

func TestBadge_RefreshFailureKeepsCount(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	badge := NewBadge(repo, testLogger())
	ctx := context.Background()

	repo.EXPECT().List(ctx, 1).Return(notificationPage(3), nil).Once()
	repo.EXPECT().List(ctx, 1).Return(nil, errors.New("offline")).Once()

	_, err := badge.Refresh(ctx)
	require.NoError(t, err)

	count, err := badge.Refresh(ctx)

	require.Error(t, err)
	assert.Equal(t, 3, count)
}

func TestBadge_RefetchesOnReconnect(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	badge := NewBadge(repo, testLogger())
	stream := newFakeStream()

	repo.EXPECT().List(mock.Anything, 1).Return(notificationPage(1), nil).Once()
	badge.Mount(context.Background(), stream)
	defer badge.Unmount()

	require.Eventually(t, func() bool { return badge.Count() == 1 }, time.Second, 5*time.Millisecond)

	repo.EXPECT().List(mock.Anything, 1).Return(notificationPage(4), nil).Once()
	stream.emit("reconnect")

	require.Eventually(t, func() bool { return badge.Count() == 4 }, time.Second, 5*time.Millisecond)
}

func TestBadge_RefreshedAfterNotificationMutations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(t *testing.T, center usecase.NotificationCenter, repo *mockRepo.MockNotificationRepository)
		want   int
	}{
		{
			name: "mark read",
			mutate: func(t *testing.T, center usecase.NotificationCenter, repo *mockRepo.MockNotificationRepository) {
				repo.EXPECT().MarkRead(ctx, []string{"n1"}).Return("", nil).Once()
				repo.EXPECT().List(ctx, 1).Return(notificationPage(1,
					notification("n1", "a", true),
					notification("n2", "b", false),
				), nil).Once()

				_, err := center.MarkRead(ctx, []string{"n1"})
				require.NoError(t, err)
			},
			want: 1,
		},
		{
			name: "open unread",
			mutate: func(t *testing.T, center usecase.NotificationCenter, repo *mockRepo.MockNotificationRepository) {
				repo.EXPECT().MarkRead(ctx, []string{"n2"}).Return("", nil).Once()
				repo.EXPECT().List(ctx, 1).Return(notificationPage(1,
					notification("n1", "a", false),
					notification("n2", "b", true),
				), nil).Once()

				_, err := center.Open(ctx, "n2")
				require.NoError(t, err)
			},
			want: 1,
		},
		{
			name: "confirm delete",
			mutate: func(t *testing.T, center usecase.NotificationCenter, repo *mockRepo.MockNotificationRepository) {
				pending, err := center.RequestDelete([]string{"n1", "n2"})
				require.NoError(t, err)

				repo.EXPECT().Delete(ctx, []string{"n1", "n2"}).Return("", nil).Once()
				repo.EXPECT().List(ctx, 1).Return(notificationPage(0), nil).Once()

				_, err = center.ConfirmDelete(ctx, pending.Token)
				require.NoError(t, err)
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badgeRepo := mockRepo.NewMockNotificationRepository(t)
			badge := NewBadge(badgeRepo, testLogger())
			repo := mockRepo.NewMockNotificationRepository(t)
			center := NewNotificationCenter(repo, testLogger(), testClock, RefreshBadge(badge, testLogger()))

			repo.EXPECT().List(ctx, 1).Return(notificationPage(2,
				notification("n1", "a", false),
				notification("n2", "b", false),
			), nil).Once()
			_, err := center.Load(ctx, 1)
			require.NoError(t, err)

			badgeRepo.EXPECT().List(ctx, 1).Return(notificationPage(2), nil).Once()
			_, err = badge.Refresh(ctx)
			require.NoError(t, err)

			badgeRepo.EXPECT().List(ctx, 1).Return(notificationPage(tt.want), nil).Once()
			tt.mutate(t, center, repo)

			assert.Equal(t, tt.want, badge.Count())
			assert.Equal(t, tt.want, center.View().UnreadCount)
		})
	}
}

func TestBadge_RefreshFailureAfterMutationKeepsResult(t *testing.T) {
	ctx := context.Background()
	badgeRepo := mockRepo.NewMockNotificationRepository(t)
	badge := NewBadge(badgeRepo, testLogger())
	repo := mockRepo.NewMockNotificationRepository(t)
	center := NewNotificationCenter(repo, testLogger(), testClock, RefreshBadge(badge, testLogger()))

	repo.EXPECT().List(ctx, 1).Return(notificationPage(1, notification("n1", "a", false)), nil).Once()
	_, err := center.Load(ctx, 1)
	require.NoError(t, err)

	repo.EXPECT().MarkRead(ctx, []string{"n1"}).Return("Marked", nil).Once()
	repo.EXPECT().List(ctx, 1).Return(notificationPage(0, notification("n1", "a", true)), nil).Once()
	badgeRepo.EXPECT().List(ctx, 1).Return(nil, errors.New("offline")).Once()

	message, err := center.MarkRead(ctx, []string{"n1"})

	require.NoError(t, err)
	assert.Equal(t, "Marked", message)
	assert.Equal(t, 0, badge.Count())
	assert.Equal(t, 0, center.View().UnreadCount)
}
