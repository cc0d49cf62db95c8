package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Notification struct {
	bun.BaseModel `bun:"table:notifications,alias:n"`

	NotificationID int64      `bun:"notification_id,pk,autoincrement"`
	UserID         int64      `bun:"user_id,notnull"`
	EventID        *int64     `bun:"event_id,nullzero"`
	Type           string     `bun:"type,notnull"`
	Title          string     `bun:"title,notnull"`
	Message        string     `bun:"message,notnull"`
	CreatedAt      time.Time  `bun:"created_at,notnull"`
	SentTimestamp  time.Time  `bun:"sent_timestamp,notnull,nullzero,default:current_timestamp"`
	IsRead         bool       `bun:"is_read,notnull,default:false"`
	ReadAt         *time.Time `bun:"read_at,nullzero"` // set only once the notification is read

	User  *User  `bun:"rel:belongs-to,join:user_id=user_id"`
	Event *Event `bun:"rel:belongs-to,join:event_id=event_id"`
}
