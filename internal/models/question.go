package models

import "time"

type Question struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"not null" json:"content"`
	AuthorID int    `gorm:"index;not null" json:"author_id"`
	User     User   `gorm:"foreignKey:AuthorID" json:"user"`

	// Denormalized counters, only ever moved by relative increments
	Answers   int `gorm:"default:0" json:"answers"`
	Upvotes   int `gorm:"default:0" json:"upvotes"`
	Downvotes int `gorm:"default:0" json:"downvotes"`
	Views     int `gorm:"default:0" json:"views"`

	Tags []Tag `gorm:"-" json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateQuestionRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
