package models

import (
	"time"
)

type Answer struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Score      int       `gorm:"default:0;check:chk_answer_score,score >= 0" json:"score"`
	Accepted   bool      `gorm:"default:false" json:"accepted"`
	UserID     string    `gorm:"not null;index;size:64" json:"userId"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	QuestionID string    `gorm:"not null;index;size:64" json:"questionId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Comments []Comment `json:"comments,omitempty"`
}
