package question

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ayodejiAA/trivia/internal/db/repository"
	sqlcgen "github.com/ayodejiAA/trivia/internal/db/sqlc"
)

// memStore is an in-memory repository.Runner. Write transactions work on a copy that is only kept
// when fn succeeds.
type memStore struct {
	categories []sqlcgen.Category
	questions  []sqlcgen.Question
	nextID     int32
	failWith   error
	writes     int
	reads      int
}

var _ repository.Runner = (*memStore)(nil)

func newMemStore(categories ...string) *memStore {
	m := &memStore{nextID: 1}
	for i, c := range categories {
		m.categories = append(m.categories, sqlcgen.Category{ID: int32(i + 1), Type: c})
	}
	return m
}

func (m *memStore) addQuestion(text, answer string, category, difficulty int32) int32 {
	id := m.nextID
	m.nextID++
	m.questions = append(m.questions, sqlcgen.Question{
		ID: id, Question: text, Answer: answer, Category: category, Difficulty: difficulty,
	})
	return id
}

func (m *memStore) ReadTx(ctx context.Context, fn func(repository.Tx) error) error {
	m.reads++
	if m.failWith != nil {
		return m.failWith
	}
	return fn(&memTx{m: m})
}

func (m *memStore) WriteTx(ctx context.Context, fn func(repository.Tx) error) error {
	m.writes++
	if m.failWith != nil {
		return m.failWith
	}
	work := &memStore{
		categories: append([]sqlcgen.Category(nil), m.categories...),
		questions:  append([]sqlcgen.Question(nil), m.questions...),
		nextID:     m.nextID,
	}
	if err := fn(&memTx{m: work}); err != nil {
		return err
	}
	m.categories, m.questions, m.nextID = work.categories, work.questions, work.nextID
	return nil
}

type memTx struct {
	m *memStore
}

func (t *memTx) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	return append([]sqlcgen.Category(nil), t.m.categories...), nil
}

func (t *memTx) GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error) {
	for _, c := range t.m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return sqlcgen.Category{}, fmt.Errorf("get category: %w", repository.ErrNotFound)
}

func (t *memTx) UpsertCategory(ctx context.Context, categoryType string) (sqlcgen.Category, error) {
	for _, c := range t.m.categories {
		if c.Type == categoryType {
			return c, nil
		}
	}
	var maxID int32
	for _, c := range t.m.categories {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	c := sqlcgen.Category{ID: maxID + 1, Type: categoryType}
	t.m.categories = append(t.m.categories, c)
	return c, nil
}

func (t *memTx) DeleteCategory(ctx context.Context, id int32) error {
	for _, q := range t.m.questions {
		if q.Category == id {
			return fmt.Errorf("delete category: %w", repository.ErrReferenced)
		}
	}
	for i, c := range t.m.categories {
		if c.ID == id {
			t.m.categories = append(t.m.categories[:i], t.m.categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete category: %w", repository.ErrNotFound)
}

func (t *memTx) CountQuestions(ctx context.Context) (int64, error) {
	return int64(len(t.m.questions)), nil
}

func (t *memTx) ListQuestions(ctx context.Context, limit, offset int32) ([]sqlcgen.Question, error) {
	sorted := t.sorted()
	if int(offset) >= len(sorted) {
		return nil, nil
	}
	end := int(offset + limit)
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (t *memTx) GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error) {
	for _, q := range t.m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return sqlcgen.Question{}, fmt.Errorf("get question: %w", repository.ErrNotFound)
}

func (t *memTx) InsertQuestion(ctx context.Context, params sqlcgen.InsertQuestionParams) (int32, error) {
	if _, err := t.GetCategory(ctx, params.Category); err != nil {
		return 0, fmt.Errorf("insert question: %w", repository.ErrReferenced)
	}
	return t.m.addQuestion(params.Question, params.Answer, params.Category, params.Difficulty), nil
}

func (t *memTx) DeleteQuestion(ctx context.Context, id int32) error {
	for i, q := range t.m.questions {
		if q.ID == id {
			t.m.questions = append(t.m.questions[:i], t.m.questions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete question: %w", repository.ErrNotFound)
}

func (t *memTx) ListQuestionsByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error) {
	var out []sqlcgen.Question
	for _, q := range t.sorted() {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (t *memTx) SearchQuestions(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	var out []sqlcgen.Question
	for _, q := range t.sorted() {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (t *memTx) ListQuestionIDs(ctx context.Context, categoryID int32) ([]int32, error) {
	var ids []int32
	for _, q := range t.sorted() {
		if categoryID == 0 || q.Category == categoryID {
			ids = append(ids, q.ID)
		}
	}
	return ids, nil
}

func (t *memTx) sorted() []sqlcgen.Question {
	out := append([]sqlcgen.Question(nil), t.m.questions...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memoryCache struct {
	categories  []Category
	gets        int
	invalidated int
}

func (c *memoryCache) Get(context.Context) ([]Category, error) {
	c.gets++
	return c.categories, nil
}

func (c *memoryCache) Set(_ context.Context, categories []Category) error {
	c.categories = categories
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.invalidated++
	c.categories = nil
	return nil
}
