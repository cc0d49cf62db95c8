package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"event-management/internal/models"
	"event-management/internal/repository"
)

func seedFeedback(t *testing.T, store *repository.Store, eventID, userID int64, rating int, submitted time.Time) *models.Feedback {
	t.Helper()
	feedback := repository.NewFeedbackRepository(store)
	f := feedback.Add(&models.Feedback{
		EventID:            eventID,
		UserID:             userID,
		Rating:             rating,
		Comments:           "some comments",
		SubmittedTimestamp: submitted,
	})
	require.True(t, feedback.SaveChanges(context.Background()))
	require.NotZero(t, f.FeedbackID)
	return f
}

func TestGetFeedbackByEventNewestFirstWithUser(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	event := seedEvent(t, store, "Fest", "Music", "Park", time.Now().UTC(), alice.UserID)

	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	seedFeedback(t, store, event.EventID, alice.UserID, 4, base)
	seedFeedback(t, store, event.EventID, bob.UserID, 5, base.Add(time.Hour))

	feedback := repository.NewFeedbackRepository(store)
	got, err := feedback.GetFeedbackByEvent(ctx, event.EventID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 5, got[0].Rating) // newest submission first
	require.NotNil(t, got[0].User)
	require.Equal(t, "Bob", got[0].User.Name)
}

func TestGetFeedbackByUserAttachesEvent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	event := seedEvent(t, store, "Fest", "Music", "Park", time.Now().UTC(), alice.UserID)
	seedFeedback(t, store, event.EventID, alice.UserID, 3, time.Now().UTC())

	feedback := repository.NewFeedbackRepository(store)
	got, err := feedback.GetFeedbackByUser(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Event)
	require.Equal(t, "Fest", got[0].Event.Name)
}

func TestGetFeedbackByEventAndUser(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	event := seedEvent(t, store, "Fest", "Music", "Park", time.Now().UTC(), alice.UserID)
	seedFeedback(t, store, event.EventID, alice.UserID, 4, time.Now().UTC())

	feedback := repository.NewFeedbackRepository(store)

	got, err := feedback.GetFeedbackByEventAndUser(ctx, event.EventID, alice.UserID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 4, got.Rating)

	missing, err := feedback.GetFeedbackByEventAndUser(ctx, event.EventID, bob.UserID)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestGetAverageRatingForEvent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, store, "Alice", "alice@example.com")
	bob := seedUser(t, store, "Bob", "bob@example.com")
	carol := seedUser(t, store, "Carol", "carol@example.com")
	rated := seedEvent(t, store, "Rated", "Music", "Park", time.Now().UTC(), alice.UserID)
	unrated := seedEvent(t, store, "Unrated", "Tech", "Hub", time.Now().UTC(), alice.UserID)

	seedFeedback(t, store, rated.EventID, alice.UserID, 3, time.Now().UTC())
	seedFeedback(t, store, rated.EventID, bob.UserID, 4, time.Now().UTC())
	seedFeedback(t, store, rated.EventID, carol.UserID, 5, time.Now().UTC())

	feedback := repository.NewFeedbackRepository(store)

	avg, err := feedback.GetAverageRatingForEvent(ctx, rated.EventID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	require.InDelta(t, 4.0, *avg, 1e-9)

	// No feedback means no value, not zero.
	none, err := feedback.GetAverageRatingForEvent(ctx, unrated.EventID)
	require.NoError(t, err)
	require.Nil(t, none)
}
