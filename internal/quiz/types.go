package quiz

import (
	"fmt"
	"strconv"

	"github.com/ayodejiAA/trivia/internal/question"
	httperrors "github.com/ayodejiAA/trivia/pkg/http/errors"
)

// AllCategories is the quiz_category id meaning "draw from every category".
const AllCategories int32 = 0

// Round is one quiz turn as tracked by the client.
type Round struct {
	PreviousQuestions []int32
	CategoryID        int32
}

// ParseRound validates a POST /quizzes payload:
//
//	{"previous_questions": [int...], "quiz_category": {"id": int}}
//
// previous_questions may be missing or null. quiz_category.id may be a numeric string because
// browser clients key categories by string.
func ParseRound(payload map[string]any) (Round, error) {
	var round Round

	switch prev := payload["previous_questions"].(type) {
	case nil:
	case []any:
		round.PreviousQuestions = make([]int32, 0, len(prev))
		for _, v := range prev {
			id, ok := question.Int32Value(v)
			if !ok {
				return Round{}, fmt.Errorf("previous_questions must hold integers: %w", httperrors.ErrBadRequest)
			}
			round.PreviousQuestions = append(round.PreviousQuestions, id)
		}
	default:
		return Round{}, fmt.Errorf("previous_questions must be an array: %w", httperrors.ErrBadRequest)
	}

	category, ok := payload["quiz_category"].(map[string]any)
	if !ok {
		return Round{}, fmt.Errorf("quiz_category must be an object: %w", httperrors.ErrBadRequest)
	}
	id, ok := categoryID(category["id"])
	if !ok || id < AllCategories {
		return Round{}, fmt.Errorf("quiz_category.id must be a non-negative integer: %w", httperrors.ErrBadRequest)
	}
	round.CategoryID = id
	return round, nil
}

func categoryID(v any) (int32, bool) {
	if s, ok := v.(string); ok {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, false
		}
		return int32(n), true
	}
	return question.Int32Value(v)
}
