package seed

import (
	"strconv"
)

// Normalized fixture records. Same forest shape as the raw decode, with
// every id (including the nested user ids) as its decimal string form, so
// source user 42 becomes "42" wherever it occurs.

type User struct {
	ID   string
	Name string
}

type Comment struct {
	ID   string
	Body string
	User User
}

type Answer struct {
	ID       string
	Body     string
	Creation int64
	Score    int
	Accepted bool
	User     User
	Comments []Comment
}

type Question struct {
	ID       string
	Title    string
	Body     string
	Creation int64
	Score    int
	User     User
	Comments []Comment
	Answers  []Answer
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func normalizeUser(u rawUser) User {
	return User{ID: formatID(u.ID), Name: u.Name}
}

func normalizeComments(comments []rawComment) []Comment {
	out := make([]Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, Comment{
			ID:   formatID(c.ID),
			Body: c.Body,
			User: normalizeUser(c.User),
		})
	}
	return out
}

func normalizeAnswers(answers []rawAnswer) []Answer {
	out := make([]Answer, 0, len(answers))
	for _, a := range answers {
		out = append(out, Answer{
			ID:       formatID(a.ID),
			Body:     a.Body,
			Creation: a.Creation,
			Score:    a.Score,
			Accepted: a.Accepted,
			User:     normalizeUser(a.User),
			Comments: normalizeComments(a.Comments),
		})
	}
	return out
}

// normalize converts the raw forest to string ids. Pure, deterministic,
// and total: absent comment/answer arrays come out as empty slices.
func normalize(questions []rawQuestion) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, Question{
			ID:       formatID(q.ID),
			Title:    q.Title,
			Body:     q.Body,
			Creation: q.Creation,
			Score:    q.Score,
			User:     normalizeUser(q.User),
			Comments: normalizeComments(q.Comments),
			Answers:  normalizeAnswers(q.Answers),
		})
	}
	return out
}
