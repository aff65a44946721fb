package models

import "time"

// TargetType is the closed set of entity kinds a vote or interaction can
// reference. Point values and counter columns dispatch off it.
type TargetType string

const (
	TargetQuestion TargetType = "question"
	TargetAnswer   TargetType = "answer"
)

func (t TargetType) Valid() bool {
	return t == TargetQuestion || t == TargetAnswer
}

type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// Vote model - at most one row per (author, target) pair at any time
type Vote struct {
	ID         int        `gorm:"primaryKey" json:"id"`
	AuthorID   int        `gorm:"uniqueIndex:idx_author_target;not null" json:"author_id"`
	ActionID   int        `gorm:"uniqueIndex:idx_author_target;not null" json:"action_id"`
	ActionType TargetType `gorm:"uniqueIndex:idx_author_target;not null" json:"action_type"`
	VoteType   VoteType   `gorm:"not null" json:"vote_type"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
