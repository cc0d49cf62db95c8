package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"event-management/internal/models"
	"event-management/internal/repository"
)

func seedNotification(t *testing.T, store *repository.Store, userID int64, eventID *int64, title string, sent time.Time, read bool) *models.Notification {
	t.Helper()
	notifications := repository.NewNotificationRepository(store)
	n := &models.Notification{
		UserID:        userID,
		EventID:       eventID,
		Type:          "General",
		Title:         title,
		Message:       "message body",
		CreatedAt:     sent,
		SentTimestamp: sent,
		IsRead:        read,
	}
	if read {
		readAt := sent.Add(time.Minute)
		n.ReadAt = &readAt
	}
	notifications.Add(n)
	require.True(t, notifications.SaveChanges(context.Background()))
	require.NotZero(t, n.NotificationID)
	return n
}

func TestGetNotificationByIDAttachesUserAndEvent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	event := seedEvent(t, store, "Fest", "Music", "Park", time.Now().UTC(), alice.UserID)
	n := seedNotification(t, store, alice.UserID, &event.EventID, "Reserved", time.Now().UTC(), false)

	notifications := repository.NewNotificationRepository(store)
	got, err := notifications.GetByID(ctx, n.NotificationID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.User)
	require.Equal(t, "Alice", got.User.Name)
	require.NotNil(t, got.Event)
	require.Equal(t, "Fest", got.Event.Name)

	missing, err := notifications.GetByID(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestGetNotificationsByUserIncludeReadToggle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	seedNotification(t, store, alice.UserID, nil, "Old read", base, true)
	seedNotification(t, store, alice.UserID, nil, "Unread", base.Add(time.Hour), false)
	seedNotification(t, store, alice.UserID, nil, "New read", base.Add(2*time.Hour), true)

	notifications := repository.NewNotificationRepository(store)

	all, err := notifications.GetNotificationsByUser(ctx, alice.UserID, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "New read", all[0].Title) // newest sent first

	unreadOnly, err := notifications.GetNotificationsByUser(ctx, alice.UserID, false)
	require.NoError(t, err)
	require.Len(t, unreadOnly, 1)
	require.Equal(t, "Unread", unreadOnly[0].Title)
	for _, n := range unreadOnly {
		require.False(t, n.IsRead)
	}
}

func TestGetNotificationsByEvent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	event := seedEvent(t, store, "Fest", "Music", "Park", time.Now().UTC(), alice.UserID)
	other := seedEvent(t, store, "Conf", "Tech", "Hub", time.Now().UTC(), alice.UserID)

	seedNotification(t, store, alice.UserID, &event.EventID, "For Fest", time.Now().UTC(), false)
	seedNotification(t, store, alice.UserID, &other.EventID, "For Conf", time.Now().UTC(), false)

	notifications := repository.NewNotificationRepository(store)
	got, err := notifications.GetNotificationsByEvent(ctx, event.EventID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "For Fest", got[0].Title)
	require.NotNil(t, got[0].User)
}

func TestMarkAsReadStagesButDoesNotCommit(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	n := seedNotification(t, store, alice.UserID, nil, "Unread", time.Now().UTC(), false)

	notifications := repository.NewNotificationRepository(store)
	updated, err := notifications.MarkAsRead(ctx, n.NotificationID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.True(t, updated.IsRead)
	require.NotNil(t, updated.ReadAt)

	// Staged only: the stored row still shows unread until SaveChanges.
	require.Equal(t, 1, store.Pending())
	stored, err := notifications.GetByID(ctx, n.NotificationID)
	require.NoError(t, err)
	require.False(t, stored.IsRead)

	require.True(t, notifications.SaveChanges(ctx))
	stored, err = notifications.GetByID(ctx, n.NotificationID)
	require.NoError(t, err)
	require.True(t, stored.IsRead)
	require.NotNil(t, stored.ReadAt)
}

func TestMarkAsReadUnknownIDReturnsNil(t *testing.T) {
	store := setupTestStore(t)

	notifications := repository.NewNotificationRepository(store)
	updated, err := notifications.MarkAsRead(context.Background(), 9999)
	require.NoError(t, err)
	require.Nil(t, updated)
	require.Zero(t, store.Pending())
}

func TestMarkAllAsRead(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	now := time.Now().UTC()
	seedNotification(t, store, alice.UserID, nil, "One", now, false)
	seedNotification(t, store, alice.UserID, nil, "Two", now.Add(time.Minute), false)
	seedNotification(t, store, alice.UserID, nil, "Already read", now.Add(2*time.Minute), true)
	seedNotification(t, store, bob.UserID, nil, "Bob unread", now, false)

	notifications := repository.NewNotificationRepository(store)
	count, err := notifications.MarkAllAsRead(ctx, alice.UserID)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.True(t, notifications.SaveChanges(ctx))

	after, err := notifications.GetNotificationsByUser(ctx, alice.UserID, true)
	require.NoError(t, err)
	for _, n := range after {
		require.True(t, n.IsRead)
		require.NotNil(t, n.ReadAt)
	}

	// Bob's inbox is untouched.
	bobs, err := notifications.GetNotificationsByUser(ctx, bob.UserID, false)
	require.NoError(t, err)
	require.Len(t, bobs, 1)
}

func TestMarkAllAsReadNothingUnreadShortCircuits(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	seedNotification(t, store, alice.UserID, nil, "Read", time.Now().UTC(), true)

	notifications := repository.NewNotificationRepository(store)
	count, err := notifications.MarkAllAsRead(ctx, alice.UserID)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Zero(t, store.Pending())
}

func TestDeleteNotificationReportsFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	n := seedNotification(t, store, alice.UserID, nil, "Doomed", time.Now().UTC(), false)

	notifications := repository.NewNotificationRepository(store)

	found, err := notifications.DeleteNotification(ctx, n.NotificationID)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, notifications.SaveChanges(ctx))

	gone, err := notifications.GetByID(ctx, n.NotificationID)
	require.NoError(t, err)
	require.Nil(t, gone)

	missing, err := notifications.DeleteNotification(ctx, 9999)
	require.NoError(t, err)
	require.False(t, missing)
	require.Zero(t, store.Pending())
}
