package services

import (
	"errors"
	"fmt"
	"strings"

	"stackoverfaux/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns all users with their questions and answers attached.
func (s *UserService) List() ([]models.User, error) {
	users := make([]models.User, 0)
	err := s.db.Preload("Questions").
		Preload("Answers").
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

// Get returns one user with questions (and their answers) and answers.
func (s *UserService) Get(id string) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Questions").
		Preload("Questions.Answers").
		Preload("Answers").
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("user")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// QuestionsForUser returns the questions of a known user; unlike
// ListByUser on the question side this 404s when the user is missing.
func (s *UserService) QuestionsForUser(id string) ([]models.Question, error) {
	if err := s.db.First(&models.User{}, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, err
	}

	questions := make([]models.Question, 0)
	err := s.db.Preload("Answers").
		Where("user_id = ?", id).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

// Create stores a new user after checking the email is plausible and
// not taken.
func (s *UserService) Create(name, email string) (*models.User, error) {
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w email format", ErrInvalid)
	}

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("user with this email %w", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update (name and/or email), keeping the email
// unique.
func (s *UserService) Update(id string, name, email *string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if email != nil && *email != user.Email {
		if !strings.Contains(*email, "@") {
			return nil, fmt.Errorf("%w email format", ErrInvalid)
		}
		var existing models.User
		err := s.db.Where("email = ?", *email).First(&existing).Error
		if err == nil {
			return nil, fmt.Errorf("email %w", ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["email"] = *email
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.db.First(&user, "id = ?", id).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// Delete removes a user and everything tied to them in one transaction:
// their comments, comments left by anyone on their questions and answers,
// answers on their questions, then their answers, questions and the user
// row itself. Children go first so no foreign key is ever dangling.
func (s *UserService) Delete(id string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("user")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&models.Question{}).Select("id").Where("user_id = ?", id)
		answersOnQuestions := tx.Model(&models.Answer{}).Select("id").
			Where("question_id IN (?)", tx.Model(&models.Question{}).Select("id").Where("user_id = ?", id))
		ownAnswerIDs := tx.Model(&models.Answer{}).Select("id").Where("user_id = ?", id)

		// Comments: authored by the user, on the user's questions, on any
		// answer under the user's questions, and on the user's answers.
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("answer_id IN (?)", answersOnQuestions).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("answer_id IN (?)", ownAnswerIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		// Answers under the user's questions, then the user's own.
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}
