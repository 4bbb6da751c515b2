package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/ayodejiAA/trivia/internal/db/repository"
	"github.com/ayodejiAA/trivia/internal/question"
	httperrors "github.com/ayodejiAA/trivia/pkg/http/errors"
)

// Service serves quiz questions without repeating any id the client has already seen.
type Service struct {
	store  repository.Runner
	intn   func(n int) int
	logger zerolog.Logger
}

type ServiceOptions struct {
	// Intn overrides the random source; defaults to math/rand/v2.IntN.
	Intn func(n int) int
}

func NewService(store repository.Runner, opts ServiceOptions, logger zerolog.Logger) *Service {
	intn := opts.Intn
	if intn == nil {
		intn = rand.IntN
	}
	return &Service{
		store:  store,
		intn:   intn,
		logger: logger.With().Str("component", "quiz_service").Logger(),
	}
}

// Next returns a random question of the round's category that is not in PreviousQuestions, or nil
// once the category is exhausted. A category id that does not exist is unprocessable.
func (s *Service) Next(ctx context.Context, round Round) (*question.Question, error) {
	var next *question.Question
	err := s.store.ReadTx(ctx, func(tx repository.Tx) error {
		rows, err := tx.ListCategories(ctx)
		if err != nil {
			return err
		}
		types := question.CategoryTypes(question.CategoriesFromRows(rows))
		if _, known := types[round.CategoryID]; round.CategoryID != AllCategories && !known {
			return fmt.Errorf("quiz category %d: %w", round.CategoryID, httperrors.ErrUnprocessable)
		}

		candidates, err := tx.ListQuestionIDs(ctx, round.CategoryID)
		if err != nil {
			return err
		}
		id, ok := Pick(candidates, round.PreviousQuestions, s.intn)
		if !ok {
			s.logger.Debug().
				Int32("category_id", round.CategoryID).
				Int("previous", len(round.PreviousQuestions)).
				Msg("quiz exhausted")
			return nil
		}

		row, err := tx.GetQuestion(ctx, id)
		if err != nil {
			return err
		}
		q := question.FromRow(row, types)
		next = &q
		return nil
	})
	if err != nil {
		return nil, question.TranslateStorageError(err)
	}
	return next, nil
}
