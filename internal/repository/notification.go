package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"event-management/internal/models"
)

// NotificationRepository layers the read-state lifecycle and the
// user/event inbox queries on top of the generic contract.
type NotificationRepository struct {
	*Repository[models.Notification]
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{NewRepository[models.Notification](store, "notification_id")}
}

// GetByID shadows the generic lookup to attach the User and the
// optional Event. Returns (nil, nil) when the id does not resolve.
func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	notification := new(models.Notification)
	err := r.Store().Bun.NewSelect().
		Model(notification).
		Relation("User").
		Relation("Event").
		Where("notification_id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return notification, nil
}

// GetNotificationsByUser returns a user's notifications with the Event
// attached, newest sent first. With includeRead false, already-read
// notifications are filtered out.
func (r *NotificationRepository) GetNotificationsByUser(ctx context.Context, userID int64, includeRead bool) ([]models.Notification, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("n.user_id = ?", userID)
			if !includeRead {
				q = q.Where("n.is_read = ?", false)
			}
			return q
		},
		Include: []string{"Event"},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("sent_timestamp DESC")
		},
	})
}

// GetNotificationsByEvent returns an event's notifications with the
// User attached, newest sent first.
func (r *NotificationRepository) GetNotificationsByEvent(ctx context.Context, eventID int64) ([]models.Notification, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("n.event_id = ?", eventID)
		},
		Include: []string{"User"},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("sent_timestamp DESC")
		},
	})
}

// MarkAsRead flips a single notification to read, stamps the read
// time and stages the change. Committing is still the caller's move.
// Returns (nil, nil) when the id does not resolve.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id int64) (*models.Notification, error) {
	notification, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, nil
	}

	now := time.Now().UTC()
	notification.IsRead = true
	notification.ReadAt = &now
	r.Update(notification)
	return notification, nil
}

// MarkAllAsRead stages a read transition for all of a user's unread
// notifications and returns how many there were. With nothing unread
// it returns 0 without staging anything.
func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID int64) (int, error) {
	var unread []models.Notification
	err := r.Store().Bun.NewSelect().
		Model(&unread).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Scan(ctx)
	if err != nil {
		return 0, err
	}
	if len(unread) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	r.Store().stage(func(ctx context.Context, tx bun.Tx) (int64, error) {
		res, err := tx.NewUpdate().
			Model((*models.Notification)(nil)).
			Set("is_read = ?", true).
			Set("read_at = ?", now).
			Where("user_id = ?", userID).
			Where("is_read = ?", false).
			Exec(ctx)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	})
	return len(unread), nil
}

// DeleteNotification stages removal of the notification with the given
// id and reports whether it was found.
func (r *NotificationRepository) DeleteNotification(ctx context.Context, id int64) (bool, error) {
	found, err := r.Exists(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("notification_id = ?", id)
	})
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := r.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
