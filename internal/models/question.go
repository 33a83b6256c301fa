package models

import (
	"time"
)

type Question struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Score     int       `gorm:"default:0;check:chk_question_score,score >= 0" json:"score"`
	UserID    string    `gorm:"not null;index;size:64" json:"userId"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Answers  []Answer  `json:"answers,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}
