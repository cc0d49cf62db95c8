package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"event-management/internal/models"
)

// FeedbackRepository layers the feedback queries and the average
// rating aggregate on top of the generic contract.
type FeedbackRepository struct {
	*Repository[models.Feedback]
}

func NewFeedbackRepository(store *Store) *FeedbackRepository {
	return &FeedbackRepository{NewRepository[models.Feedback](store, "feedback_id")}
}

// GetFeedbackByEvent returns an event's feedback with the User
// attached, newest submission first.
func (r *FeedbackRepository) GetFeedbackByEvent(ctx context.Context, eventID int64) ([]models.Feedback, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("f.event_id = ?", eventID)
		},
		Include: []string{"User"},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("submitted_timestamp DESC")
		},
	})
}

// GetFeedbackByUser returns a user's feedback with the Event attached,
// newest submission first.
func (r *FeedbackRepository) GetFeedbackByUser(ctx context.Context, userID int64) ([]models.Feedback, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("f.user_id = ?", userID)
		},
		Include: []string{"Event"},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("submitted_timestamp DESC")
		},
	})
}

// GetFeedbackByEventAndUser returns the single feedback a user left
// for an event, or (nil, nil) when there is none. One-per-pair is the
// intended usage; callers check here before inserting.
func (r *FeedbackRepository) GetFeedbackByEventAndUser(ctx context.Context, eventID, userID int64) (*models.Feedback, error) {
	feedback := new(models.Feedback)
	err := r.Store().Bun.NewSelect().
		Model(feedback).
		Where("event_id = ?", eventID).
		Where("user_id = ?", userID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

// GetAverageRatingForEvent computes the arithmetic mean of an event's
// ratings. An event with no feedback yields (nil, nil) — no data, as
// opposed to a zero rating.
func (r *FeedbackRepository) GetAverageRatingForEvent(ctx context.Context, eventID int64) (*float64, error) {
	var avg sql.NullFloat64
	err := r.Store().Bun.NewSelect().
		Model((*models.Feedback)(nil)).
		ColumnExpr("avg(rating)").
		Where("event_id = ?", eventID).
		Scan(ctx, &avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
