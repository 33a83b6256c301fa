package services

import (
	"errors"

	"stackoverfaux/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// List returns questions with their author and answers (and the answer
// authors) attached, newest first.
func (s *QuestionService) List(limit, offset int) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := s.db.Preload("User").
		Preload("Answers").
		Preload("Answers.User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&questions).Error
	return questions, err
}

// Get returns one question with author, answers and comments attached.
func (s *QuestionService) Get(id string) (*models.Question, error) {
	var question models.Question
	err := s.db.Preload("User").
		Preload("Answers").
		Preload("Answers.User").
		Preload("Answers.Comments").
		Preload("Comments").
		Preload("Comments.User").
		First(&question, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("question")
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ListByUser returns the questions a user asked. An unknown user simply
// yields an empty list.
func (s *QuestionService) ListByUser(userID string) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := s.db.Preload("User").
		Preload("Answers").
		Preload("Answers.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

// Create stores a new question for an existing user.
func (s *QuestionService) Create(title, content, userID string) (*models.Question, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, err
	}

	question := &models.Question{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		UserID:  userID,
		User:    user,
	}
	if err := s.db.Create(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

// Update applies a partial update (title and/or content).
func (s *QuestionService) Update(id string, title, content *string) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("question")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if content != nil {
		updates["content"] = *content
	}
	if len(updates) > 0 {
		if err := s.db.Model(&question).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}

// Delete removes a question together with its answers and every comment
// hanging off either, in one transaction. The store will not let the
// question go first, so children are cleared bottom-up.
func (s *QuestionService) Delete(id string) error {
	var question models.Question
	if err := s.db.First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("question")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		answerIDs := tx.Model(&models.Answer{}).Select("id").Where("question_id = ?", id)
		if err := tx.Where("answer_id IN (?)", answerIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Question{}, "id = ?", id).Error
	})
}

// AddAnswer stores a new answer on an existing question.
func (s *QuestionService) AddAnswer(questionID, content, userID string) (*models.Answer, error) {
	if err := s.db.First(&models.Question{}, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("question")
		}
		return nil, err
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, err
	}

	answer := &models.Answer{
		ID:         uuid.NewString(),
		Content:    content,
		UserID:     userID,
		User:       user,
		QuestionID: questionID,
	}
	if err := s.db.Create(answer).Error; err != nil {
		return nil, err
	}
	return answer, nil
}

// AnswersForQuestion returns a question's answers with authors and
// comments attached.
func (s *QuestionService) AnswersForQuestion(questionID string) ([]models.Answer, error) {
	if err := s.db.First(&models.Question{}, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("question")
		}
		return nil, err
	}

	answers := make([]models.Answer, 0)
	err := s.db.Preload("User").
		Preload("Comments").
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Find(&answers).Error
	return answers, err
}

// AnswersByUser returns the answers a user wrote.
func (s *QuestionService) AnswersByUser(userID string) ([]models.Answer, error) {
	answers := make([]models.Answer, 0)
	err := s.db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&answers).Error
	return answers, err
}
