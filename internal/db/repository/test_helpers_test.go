package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	sqlcgen "github.com/ayodejiAA/trivia/internal/db/sqlc"
)

func fkViolation() error {
	return &pgconn.PgError{Code: sqlStateForeignKeyViolation, Message: "violates foreign key constraint"}
}

type mockQuerier struct {
	mock.Mock
}

var _ sqlcgen.Querier = (*mockQuerier)(nil)

func (m *mockQuerier) CountQuestions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuerier) DeleteCategory(ctx context.Context, id int32) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuerier) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuerier) GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sqlcgen.Category), args.Error(1)
}

func (m *mockQuerier) GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sqlcgen.Question), args.Error(1)
}

func (m *mockQuerier) InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (int32, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int32), args.Error(1)
}

func (m *mockQuerier) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Category), args.Error(1)
}

func (m *mockQuerier) ListQuestionIDs(ctx context.Context, categoryID int32) ([]int32, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]int32), args.Error(1)
}

func (m *mockQuerier) ListQuestions(ctx context.Context, arg sqlcgen.ListQuestionsParams) ([]sqlcgen.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuerier) ListQuestionsByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuerier) SearchQuestions(ctx context.Context, pattern string) ([]sqlcgen.Question, error) {
	args := m.Called(ctx, pattern)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuerier) UpsertCategory(ctx context.Context, type_ string) (sqlcgen.Category, error) {
	args := m.Called(ctx, type_)
	return args.Get(0).(sqlcgen.Category), args.Error(1)
}
