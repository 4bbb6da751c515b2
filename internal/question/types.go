package question

import (
	sqlcgen "github.com/ayodejiAA/trivia/internal/db/sqlc"
)

// QuestionsPerPage is the fixed size of a question page.
const QuestionsPerPage = 10

// Difficulty bounds accepted for new questions.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question is the payload delivered to clients.
type Question struct {
	ID           int32  `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Category     int32  `json:"category"`
	CategoryType string `json:"category_type,omitempty"` // absent when the category cannot be resolved
	Difficulty   int32  `json:"difficulty"`
}

// Category groups questions under a display name.
type Category struct {
	ID   int32  `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries the fields of a question to create.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

// Page is one window of the ordered question list.
type Page struct {
	Number         int
	Questions      []Question
	TotalQuestions int64
	Categories     []Category
}

// SearchResult holds every question whose text contains the term.
type SearchResult struct {
	Questions      []Question
	TotalQuestions int
}

// CategoryQuestions holds all questions of one category.
type CategoryQuestions struct {
	Category  Category
	Questions []Question
}

// CategoryTypes indexes category display names by id.
func CategoryTypes(categories []Category) map[int32]string {
	types := make(map[int32]string, len(categories))
	for _, c := range categories {
		types[c.ID] = c.Type
	}
	return types
}

// FromRow converts a stored question, filling CategoryType from types when it resolves.
func FromRow(row sqlcgen.Question, types map[int32]string) Question {
	return Question{
		ID:           row.ID,
		Question:     row.Question,
		Answer:       row.Answer,
		Category:     row.Category,
		CategoryType: types[row.Category],
		Difficulty:   row.Difficulty,
	}
}

// FromRows converts rows in order; the result is never nil.
func FromRows(rows []sqlcgen.Question, types map[int32]string) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromRow(row, types))
	}
	return out
}

// CategoriesFromRows converts stored categories in order; the result is never nil.
func CategoriesFromRows(rows []sqlcgen.Category) []Category {
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, Category{ID: row.ID, Type: row.Type})
	}
	return out
}

// InsertParams converts a validated question into the generated insert arguments.
func InsertParams(n NewQuestion) sqlcgen.InsertQuestionParams {
	return sqlcgen.InsertQuestionParams{
		Question:   n.Question,
		Answer:     n.Answer,
		Category:   n.Category,
		Difficulty: n.Difficulty,
	}
}
