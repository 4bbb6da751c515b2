package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ayodejiAA/trivia/internal/db/repository"
	"github.com/ayodejiAA/trivia/internal/question"
	"github.com/ayodejiAA/trivia/internal/question/external"
)

type questionSource interface {
	Categories(ctx context.Context) ([]external.OpenTDBCategory, error)
	Fetch(ctx context.Context, amount, categoryID int) ([]external.OpenTDBQuestion, error)
}

// Options tune an import run.
type Options struct {
	PerCategory   int
	MaxCategories int
	// Interval is waited between API calls; the Open Trivia DB allows one call every five seconds.
	Interval time.Duration
	// Timeout bounds each API call.
	Timeout time.Duration
}

// Report summarizes an import run.
type Report struct {
	Categories int
	Inserted   int
	Skipped    int
}

// Importer copies categories and questions from the Open Trivia DB into the store. Each category
// is written in its own transaction, so a failure leaves earlier categories in place.
type Importer struct {
	source questionSource
	store  repository.Runner
	opts   Options
	logger zerolog.Logger
}

func NewImporter(source questionSource, store repository.Runner, opts Options, logger zerolog.Logger) *Importer {
	if opts.PerCategory <= 0 {
		opts.PerCategory = 10
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Importer{
		source: source,
		store:  store,
		opts:   opts,
		logger: logger.With().Str("component", "seed_importer").Logger(),
	}
}

// Run imports up to MaxCategories categories (all when zero).
func (i *Importer) Run(ctx context.Context) (Report, error) {
	var report Report

	categories, err := i.categories(ctx)
	if err != nil {
		return report, fmt.Errorf("list opentdb categories: %w", err)
	}
	if i.opts.MaxCategories > 0 && len(categories) > i.opts.MaxCategories {
		categories = categories[:i.opts.MaxCategories]
	}

	for _, c := range categories {
		if err := i.wait(ctx); err != nil {
			return report, err
		}
		questions, err := i.fetch(ctx, c.ID)
		if err != nil {
			return report, fmt.Errorf("fetch category %q: %w", c.Name, err)
		}

		inserted, skipped, err := i.save(ctx, c.Name, questions)
		if err != nil {
			return report, fmt.Errorf("store category %q: %w", c.Name, err)
		}
		report.Categories++
		report.Inserted += inserted
		report.Skipped += skipped

		i.logger.Info().
			Str("category", c.Name).
			Int("inserted", inserted).
			Int("skipped", skipped).
			Msg("category imported")
	}
	return report, nil
}

func (i *Importer) categories(ctx context.Context) ([]external.OpenTDBCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, i.opts.Timeout)
	defer cancel()
	return i.source.Categories(ctx)
}

// fetch retries once after a rate limit. The pause before the retry is not charged to either call's
// timeout.
func (i *Importer) fetch(ctx context.Context, categoryID int) ([]external.OpenTDBQuestion, error) {
	questions, err := i.fetchOnce(ctx, categoryID)
	if !errors.Is(err, external.ErrRateLimited) {
		return questions, err
	}
	i.logger.Warn().Int("category_id", categoryID).Msg("rate limited; retrying once")
	if err := i.wait(ctx); err != nil {
		return nil, err
	}
	return i.fetchOnce(ctx, categoryID)
}

func (i *Importer) fetchOnce(ctx context.Context, categoryID int) ([]external.OpenTDBQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, i.opts.Timeout)
	defer cancel()
	return i.source.Fetch(ctx, i.opts.PerCategory, categoryID)
}

// save writes one category and its questions. Questions already present with identical text are
// skipped so reruns do not duplicate rows.
func (i *Importer) save(ctx context.Context, categoryType string, questions []external.OpenTDBQuestion) (inserted, skipped int, err error) {
	err = i.store.WriteTx(ctx, func(tx repository.Tx) error {
		inserted, skipped = 0, 0

		category, err := tx.UpsertCategory(ctx, categoryType)
		if err != nil {
			return err
		}
		for _, q := range questions {
			n := question.NewQuestion{
				Question:   strings.TrimSpace(q.Question),
				Answer:     strings.TrimSpace(q.CorrectAnswer),
				Category:   category.ID,
				Difficulty: Difficulty(q.Difficulty),
			}
			if n.Validate() != nil {
				skipped++
				continue
			}
			exists, err := alreadyStored(ctx, tx, n.Question)
			if err != nil {
				return err
			}
			if exists {
				skipped++
				continue
			}
			if _, err := tx.InsertQuestion(ctx, question.InsertParams(n)); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	return inserted, skipped, err
}

func alreadyStored(ctx context.Context, tx repository.Tx, text string) (bool, error) {
	matches, err := tx.SearchQuestions(ctx, text)
	if err != nil {
		return false, err
	}
	for _, m := range matches {
		if m.Question == text {
			return true, nil
		}
	}
	return false, nil
}

func (i *Importer) wait(ctx context.Context) error {
	if i.opts.Interval <= 0 {
		return nil
	}
	timer := time.NewTimer(i.opts.Interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Difficulty maps Open Trivia DB difficulty names onto the 1-5 scale.
func Difficulty(name string) int32 {
	switch strings.ToLower(name) {
	case "easy":
		return 1
	case "hard":
		return 5
	default:
		return 3
	}
}
