package models

import "time"

type InteractionAction string

const (
	ActionView     InteractionAction = "view"
	ActionUpvote   InteractionAction = "upvote"
	ActionDownvote InteractionAction = "downvote"
	ActionBookmark InteractionAction = "bookmark"
	ActionPost     InteractionAction = "post"
	ActionEdit     InteractionAction = "edit"
	ActionDelete   InteractionAction = "delete"
)

// Interaction is an append-only log row; never updated or deleted.
type Interaction struct {
	ID         int               `gorm:"primaryKey" json:"id"`
	UserID     int               `gorm:"index;not null" json:"user_id"`
	Action     InteractionAction `gorm:"not null" json:"action"`
	ActionID   int               `gorm:"not null" json:"action_id"`
	ActionType TargetType        `gorm:"not null" json:"action_type"`
	CreatedAt  time.Time         `json:"created_at"`
}
