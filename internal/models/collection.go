package models

import "time"

// Collection marks a question as saved by a user. Row presence is the flag;
// rows are only ever created or deleted, never updated.
type Collection struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	AuthorID   int       `gorm:"uniqueIndex:idx_author_question;not null" json:"author_id"`
	QuestionID int       `gorm:"uniqueIndex:idx_author_question;not null" json:"question_id"`
	Question   Question  `gorm:"foreignKey:QuestionID" json:"question"`
	CreatedAt  time.Time `json:"created_at"`
}
