package seed

import (
	"encoding/json"
	"fmt"
	"os"
)

// Shapes as they appear in the fixture file. Identifiers are numeric
// there; everything downstream of normalization uses the store's string
// ids instead.

type rawUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type rawComment struct {
	ID   int64   `json:"id"`
	Body string  `json:"body"`
	User rawUser `json:"user"`
}

type rawAnswer struct {
	ID       int64        `json:"id"`
	Body     string       `json:"body"`
	Creation int64        `json:"creation"`
	Score    int          `json:"score"`
	Accepted bool         `json:"accepted"`
	User     rawUser      `json:"user"`
	Comments []rawComment `json:"comments"`
}

type rawQuestion struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Body     string       `json:"body"`
	Creation int64        `json:"creation"`
	Score    int          `json:"score"`
	User     rawUser      `json:"user"`
	Comments []rawComment `json:"comments"`
	Answers  []rawAnswer  `json:"answers"`
}

// load reads and decodes the fixture file. It touches nothing but the
// file; any failure here aborts the whole import.
func load(path string) ([]rawQuestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var questions []rawQuestion
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return questions, nil
}
