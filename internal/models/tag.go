package models

import "time"

// Tag names are stored lowercase so the unique index doubles as the
// case-insensitive match required for concurrent upserts.
type Tag struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`

	// Number of questions currently carrying this tag
	Questions int `gorm:"default:0" json:"questions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagQuestion materializes the many-to-many between tags and questions.
// Exactly one row per (tag, question) pair while the question carries the tag.
type TagQuestion struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	TagID      int       `gorm:"uniqueIndex:idx_tag_question;not null" json:"tag_id"`
	QuestionID int       `gorm:"uniqueIndex:idx_tag_question;not null" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}
