package repository

import (
	"context"
	"fmt"
	"strings"

	sqlcgen "github.com/ayodejiAA/trivia/internal/db/sqlc"
)

// Tx exposes the trivia queries bound to one open transaction. Every error it returns wraps
// ErrNotFound, ErrReferenced or ErrStorage.
type Tx interface {
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
	GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error)
	UpsertCategory(ctx context.Context, categoryType string) (sqlcgen.Category, error)
	DeleteCategory(ctx context.Context, id int32) error

	CountQuestions(ctx context.Context) (int64, error)
	ListQuestions(ctx context.Context, limit, offset int32) ([]sqlcgen.Question, error)
	GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, params sqlcgen.InsertQuestionParams) (int32, error)
	DeleteQuestion(ctx context.Context, id int32) error
	ListQuestionsByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]sqlcgen.Question, error)
	// ListQuestionIDs returns ids in one category, or in all of them when categoryID is 0.
	ListQuestionIDs(ctx context.Context, categoryID int32) ([]int32, error)
}

// queryTx wraps sqlc queries and maps driver errors onto the repository sentinels.
type queryTx struct {
	q sqlcgen.Querier
}

func newQueryTx(q sqlcgen.Querier) *queryTx {
	return &queryTx{q: q}
}

func (t *queryTx) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	rows, err := t.q.ListCategories(ctx)
	return rows, mapErr("list categories", err)
}

func (t *queryTx) GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error) {
	row, err := t.q.GetCategory(ctx, id)
	return row, mapErr("get category", err)
}

func (t *queryTx) UpsertCategory(ctx context.Context, categoryType string) (sqlcgen.Category, error) {
	row, err := t.q.UpsertCategory(ctx, categoryType)
	return row, mapErr("upsert category", err)
}

func (t *queryTx) DeleteCategory(ctx context.Context, id int32) error {
	n, err := t.q.DeleteCategory(ctx, id)
	if err != nil {
		return mapErr("delete category", err)
	}
	if n == 0 {
		return fmt.Errorf("delete category %d: %w", id, ErrNotFound)
	}
	return nil
}

func (t *queryTx) CountQuestions(ctx context.Context) (int64, error) {
	n, err := t.q.CountQuestions(ctx)
	return n, mapErr("count questions", err)
}

func (t *queryTx) ListQuestions(ctx context.Context, limit, offset int32) ([]sqlcgen.Question, error) {
	rows, err := t.q.ListQuestions(ctx, sqlcgen.ListQuestionsParams{Limit: limit, Offset: offset})
	return rows, mapErr("list questions", err)
}

func (t *queryTx) GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error) {
	row, err := t.q.GetQuestion(ctx, id)
	return row, mapErr("get question", err)
}

func (t *queryTx) InsertQuestion(ctx context.Context, params sqlcgen.InsertQuestionParams) (int32, error) {
	id, err := t.q.InsertQuestion(ctx, params)
	return id, mapErr("insert question", err)
}

func (t *queryTx) DeleteQuestion(ctx context.Context, id int32) error {
	n, err := t.q.DeleteQuestion(ctx, id)
	if err != nil {
		return mapErr("delete question", err)
	}
	if n == 0 {
		return fmt.Errorf("delete question %d: %w", id, ErrNotFound)
	}
	return nil
}

func (t *queryTx) ListQuestionsByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error) {
	rows, err := t.q.ListQuestionsByCategory(ctx, categoryID)
	return rows, mapErr("list questions by category", err)
}

func (t *queryTx) SearchQuestions(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	rows, err := t.q.SearchQuestions(ctx, containsPattern(term))
	return rows, mapErr("search questions", err)
}

func (t *queryTx) ListQuestionIDs(ctx context.Context, categoryID int32) ([]int32, error) {
	ids, err := t.q.ListQuestionIDs(ctx, categoryID)
	return ids, mapErr("list question ids", err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term literally anywhere in the text.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
