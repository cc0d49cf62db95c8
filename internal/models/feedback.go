package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Feedback struct {
	bun.BaseModel `bun:"table:feedback,alias:f"`

	FeedbackID         int64     `bun:"feedback_id,pk,autoincrement"`
	EventID            int64     `bun:"event_id,notnull"`
	UserID             int64     `bun:"user_id,notnull"`
	Rating             int       `bun:"rating,notnull"` // 1-5, enforced by a CHECK constraint
	Comments           string    `bun:"comments"`
	SubmittedTimestamp time.Time `bun:"submitted_timestamp,notnull"`

	Event *Event `bun:"rel:belongs-to,join:event_id=event_id"`
	User  *User  `bun:"rel:belongs-to,join:user_id=user_id"`
}
