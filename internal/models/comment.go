package models

import (
	"time"
)

// A comment hangs off either a question or an answer, never both. The
// check constraint keeps that true at the store level as well.
type Comment struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	UserID     string    `gorm:"not null;index;size:64" json:"userId"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	QuestionID *string   `gorm:"index;size:64;check:chk_comment_parent,(question_id IS NULL) <> (answer_id IS NULL)" json:"questionId"`
	AnswerID   *string   `gorm:"index;size:64" json:"answerId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
