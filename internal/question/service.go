package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ayodejiAA/trivia/internal/db/repository"
	httperrors "github.com/ayodejiAA/trivia/pkg/http/errors"
)

// CategoryCache stores the category list between requests. Get returns nil on a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
	Invalidate(ctx context.Context) error
}

// Service implements listing, paging, search, creation and deletion over the question store.
type Service struct {
	store  repository.Runner
	cache  CategoryCache
	logger zerolog.Logger
}

// NewService wires the store and an optional category cache.
func NewService(store repository.Runner, cache CategoryCache, logger zerolog.Logger) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "question_service").Logger(),
	}
}

// Categories returns every category ordered by id, served from the cache when possible.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("category cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	var categories []Category
	err = s.store.ReadTx(ctx, func(tx repository.Tx) error {
		rows, err := tx.ListCategories(ctx)
		if err != nil {
			return err
		}
		categories = CategoriesFromRows(rows)
		return nil
	})
	if err != nil {
		return nil, TranslateStorageError(err)
	}

	if err := s.cache.Set(ctx, categories); err != nil {
		s.logger.Warn().Err(err).Msg("category cache write failed")
	}
	return categories, nil
}

// CreateCategory adds a category, or returns the existing one with the same type.
func (s *Service) CreateCategory(ctx context.Context, categoryType string) (Category, error) {
	categoryType = strings.TrimSpace(categoryType)
	if categoryType == "" {
		return Category{}, fmt.Errorf("category type must not be empty: %w", httperrors.ErrBadRequest)
	}

	var created Category
	err := s.store.WriteTx(ctx, func(tx repository.Tx) error {
		row, err := tx.UpsertCategory(ctx, categoryType)
		if err != nil {
			return err
		}
		created = Category{ID: row.ID, Type: row.Type}
		return nil
	})
	if err != nil {
		return Category{}, TranslateStorageError(err)
	}
	s.invalidateCategories(ctx)
	return created, nil
}

// DeleteCategory removes an unused category. Categories that still own questions are kept and the
// call fails as unprocessable.
func (s *Service) DeleteCategory(ctx context.Context, id int32) error {
	err := s.store.WriteTx(ctx, func(tx repository.Tx) error {
		return tx.DeleteCategory(ctx, id)
	})
	if err != nil {
		return TranslateStorageError(err)
	}
	s.invalidateCategories(ctx)
	return nil
}

// Page returns the 1-based page of questions together with all categories and the total count.
func (s *Service) Page(ctx context.Context, page int) (Page, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return Page{}, err
	}
	types := CategoryTypes(categories)

	result := Page{Number: page, Categories: categories}
	err = s.store.ReadTx(ctx, func(tx repository.Tx) error {
		total, err := tx.CountQuestions(ctx)
		if err != nil {
			return err
		}
		offset, ok := PageWindow(page, QuestionsPerPage, total)
		if !ok {
			return fmt.Errorf("page %d of %d questions: %w", page, total, httperrors.ErrNotFound)
		}
		rows, err := tx.ListQuestions(ctx, QuestionsPerPage, int32(offset))
		if err != nil {
			return err
		}
		result.TotalQuestions = total
		result.Questions = FromRows(rows, types)
		return nil
	})
	if err != nil {
		return Page{}, TranslateStorageError(err)
	}
	return result, nil
}

// Search returns every question whose text contains term, ignoring case. A blank term is a bad
// request rather than a search matching everything.
func (s *Service) Search(ctx context.Context, term string) (SearchResult, error) {
	if strings.TrimSpace(term) == "" {
		return SearchResult{}, fmt.Errorf("search term must not be empty: %w", httperrors.ErrBadRequest)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return SearchResult{}, err
	}

	var result SearchResult
	err = s.store.ReadTx(ctx, func(tx repository.Tx) error {
		rows, err := tx.SearchQuestions(ctx, term)
		if err != nil {
			return err
		}
		result.Questions = FromRows(rows, CategoryTypes(categories))
		result.TotalQuestions = len(result.Questions)
		return nil
	})
	if err != nil {
		return SearchResult{}, TranslateStorageError(err)
	}
	return result, nil
}

// Create stores a new question and returns its id. An unknown category is unprocessable.
func (s *Service) Create(ctx context.Context, n NewQuestion) (int32, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}

	var id int32
	err := s.store.WriteTx(ctx, func(tx repository.Tx) error {
		var err error
		id, err = tx.InsertQuestion(ctx, InsertParams(n))
		return err
	})
	if err != nil {
		return 0, TranslateStorageError(err)
	}
	return id, nil
}

// Get returns one question.
func (s *Service) Get(ctx context.Context, id int32) (Question, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return Question{}, err
	}

	var q Question
	err = s.store.ReadTx(ctx, func(tx repository.Tx) error {
		row, err := tx.GetQuestion(ctx, id)
		if err != nil {
			return err
		}
		q = FromRow(row, CategoryTypes(categories))
		return nil
	})
	if err != nil {
		return Question{}, TranslateStorageError(err)
	}
	return q, nil
}

// Delete removes one question.
func (s *Service) Delete(ctx context.Context, id int32) error {
	err := s.store.WriteTx(ctx, func(tx repository.Tx) error {
		return tx.DeleteQuestion(ctx, id)
	})
	return TranslateStorageError(err)
}

// ByCategory returns every question of an existing category.
func (s *Service) ByCategory(ctx context.Context, categoryID int32) (CategoryQuestions, error) {
	var result CategoryQuestions
	err := s.store.ReadTx(ctx, func(tx repository.Tx) error {
		row, err := tx.GetCategory(ctx, categoryID)
		if err != nil {
			return err
		}
		result.Category = Category{ID: row.ID, Type: row.Type}

		rows, err := tx.ListQuestionsByCategory(ctx, categoryID)
		if err != nil {
			return err
		}
		result.Questions = FromRows(rows, map[int32]string{row.ID: row.Type})
		return nil
	})
	if err != nil {
		return CategoryQuestions{}, TranslateStorageError(err)
	}
	return result, nil
}

func (s *Service) invalidateCategories(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("category cache invalidation failed")
	}
}

// TranslateStorageError maps repository failures onto the HTTP error taxonomy. Errors that are
// already classified pass through; storage failures stay unclassified and surface as 500.
func TranslateStorageError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %w", httperrors.ErrNotFound, err)
	case errors.Is(err, repository.ErrReferenced):
		return fmt.Errorf("%w: %w", httperrors.ErrUnprocessable, err)
	default:
		return err
	}
}
