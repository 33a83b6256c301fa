package seed

import (
	"fmt"
	"log"
	"time"

	"stackoverfaux/internal/models"
	"stackoverfaux/internal/utils"

	"gorm.io/gorm"
)

// Importer drives the one-off load of the fixture file into the database.
// It runs strictly sequentially: each question is fully processed, users
// first, before the next one starts, so every foreign key target exists
// by the time a row referencing it is written.
type Importer struct {
	db     *gorm.DB
	writer *Writer
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db, writer: NewWriter(db)}
}

// Run seeds the database from the fixture at path. A populated store
// (any existing users) skips the whole run. Per-record failures are
// logged and skipped; only a load failure or an unreachable store aborts.
func (imp *Importer) Run(path string) error {
	var count int64
	if err := imp.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Println("Database already has data, skipping seed")
		return nil
	}

	raw, err := load(path)
	if err != nil {
		return err
	}
	questions := normalize(raw)
	log.Printf("Loaded %d questions from %s", len(questions), path)

	for _, q := range questions {
		imp.importQuestion(q)
	}

	log.Println("Seeding completed")
	return nil
}

func (imp *Importer) importQuestion(q Question) {
	if err := imp.writeUser(q.User); err != nil {
		log.Printf("Skipping question %s, user write failed: %v", q.ID, err)
		return
	}

	created := time.Unix(q.Creation, 0)
	outcome, err := imp.writer.Write(&models.Question{
		ID:        q.ID,
		Title:     q.Title,
		Content:   utils.SanitizeHTML(q.Body),
		Score:     q.Score,
		UserID:    q.User.ID,
		CreatedAt: created,
		UpdatedAt: created,
	})
	if err != nil {
		// The question row is the FK anchor for everything below it, so
		// its comments and answers are skipped too. Siblings still run.
		log.Printf("Skipping question %s and its subtree: %v", q.ID, err)
		return
	}
	if outcome == OutcomeAlreadyExists {
		log.Printf("Question %s already exists", q.ID)
	}

	for _, c := range q.Comments {
		qid := q.ID
		imp.importComment(c, &qid, nil)
	}
	for _, a := range q.Answers {
		imp.importAnswer(a, q.ID)
	}
}

func (imp *Importer) importAnswer(a Answer, questionID string) {
	if err := imp.writeUser(a.User); err != nil {
		log.Printf("Skipping answer %s, user write failed: %v", a.ID, err)
		return
	}

	created := time.Unix(a.Creation, 0)
	outcome, err := imp.writer.Write(&models.Answer{
		ID:         a.ID,
		Content:    utils.SanitizeHTML(a.Body),
		Score:      a.Score,
		Accepted:   a.Accepted,
		UserID:     a.User.ID,
		QuestionID: questionID,
		CreatedAt:  created,
		UpdatedAt:  created,
	})
	if err != nil {
		log.Printf("Skipping answer %s and its comments: %v", a.ID, err)
		return
	}
	if outcome == OutcomeAlreadyExists {
		log.Printf("Answer %s already exists", a.ID)
	}

	for _, c := range a.Comments {
		aid := a.ID
		imp.importComment(c, nil, &aid)
	}
}

func (imp *Importer) importComment(c Comment, questionID, answerID *string) {
	if err := imp.writeUser(c.User); err != nil {
		log.Printf("Skipping comment %s, user write failed: %v", c.ID, err)
		return
	}

	outcome, err := imp.writer.Write(&models.Comment{
		ID:         c.ID,
		Content:    utils.SanitizeHTML(c.Body),
		UserID:     c.User.ID,
		QuestionID: questionID,
		AnswerID:   answerID,
	})
	if err != nil {
		log.Printf("Skipping comment %s: %v", c.ID, err)
		return
	}
	if outcome == OutcomeAlreadyExists {
		log.Printf("Comment %s already exists", c.ID)
	}
}

// writeUser lazily creates the user a record refers to. The fixture has
// no emails, so one is synthesized from the id.
func (imp *Importer) writeUser(u User) error {
	outcome, err := imp.writer.Write(&models.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: fmt.Sprintf("user_%s@example.com", u.ID),
	})
	if err != nil {
		return err
	}
	if outcome == OutcomeAlreadyExists {
		log.Printf("User %s already exists", u.ID)
	}
	return nil
}
