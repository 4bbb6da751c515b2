package question

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	httperrors "github.com/ayodejiAA/trivia/pkg/http/errors"
)

// Kind tells which operation a POST /questions payload asks for.
type Kind int

const (
	KindSearch Kind = iota + 1
	KindCreate
)

func (k Kind) String() string {
	switch k {
	case KindSearch:
		return "search"
	case KindCreate:
		return "create"
	default:
		return "unknown"
	}
}

// Request is a classified POST /questions payload.
type Request struct {
	Kind       Kind
	SearchTerm string
	Create     NewQuestion
}

const searchTermKey = "searchTerm"

var createKeys = [...]string{"question", "answer", "category", "difficulty"}

// Classify decides whether payload is a search or a create. It depends only on the key set and
// the value types, and every payload lands on exactly one of search, create or ErrBadRequest:
//
//   - searchTerm present: it must be the only key and a non-blank string.
//   - otherwise the keys must be exactly question, answer, category and difficulty.
func Classify(payload map[string]any) (Request, error) {
	if len(payload) == 0 {
		return Request{}, fmt.Errorf("empty payload: %w", httperrors.ErrBadRequest)
	}

	if raw, ok := payload[searchTermKey]; ok {
		if len(payload) != 1 {
			return Request{}, fmt.Errorf("%s combined with other keys: %w", searchTermKey, httperrors.ErrBadRequest)
		}
		term, ok := raw.(string)
		if !ok || strings.TrimSpace(term) == "" {
			return Request{}, fmt.Errorf("%s must be a non-empty string: %w", searchTermKey, httperrors.ErrBadRequest)
		}
		return Request{Kind: KindSearch, SearchTerm: term}, nil
	}

	if len(payload) != len(createKeys) {
		return Request{}, fmt.Errorf("create payload needs exactly %v: %w", createKeys, httperrors.ErrBadRequest)
	}
	for _, key := range createKeys {
		if _, ok := payload[key]; !ok {
			return Request{}, fmt.Errorf("missing %q: %w", key, httperrors.ErrBadRequest)
		}
	}

	text, okText := payload["question"].(string)
	answer, okAnswer := payload["answer"].(string)
	category, okCategory := Int32Value(payload["category"])
	difficulty, okDifficulty := Int32Value(payload["difficulty"])
	if !okText || !okAnswer || !okCategory || !okDifficulty {
		return Request{}, fmt.Errorf("create payload has wrong field types: %w", httperrors.ErrBadRequest)
	}

	create := NewQuestion{
		Question:   text,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
	if err := create.Validate(); err != nil {
		return Request{}, err
	}
	return Request{Kind: KindCreate, Create: create}, nil
}

// Validate checks the field ranges of a question to create.
func (n NewQuestion) Validate() error {
	switch {
	case strings.TrimSpace(n.Question) == "":
		return fmt.Errorf("question must not be empty: %w", httperrors.ErrBadRequest)
	case strings.TrimSpace(n.Answer) == "":
		return fmt.Errorf("answer must not be empty: %w", httperrors.ErrBadRequest)
	case n.Category < 1:
		return fmt.Errorf("category must be >= 1: %w", httperrors.ErrBadRequest)
	case n.Difficulty < MinDifficulty || n.Difficulty > MaxDifficulty:
		return fmt.Errorf("difficulty must be within %d-%d: %w", MinDifficulty, MaxDifficulty, httperrors.ErrBadRequest)
	}
	return nil
}

// Int32Value reports v as an int32 when it is a whole JSON number in range. Strings and booleans
// are not numbers.
func Int32Value(v any) (int32, bool) {
	var n int64
	switch t := v.(type) {
	case json.Number:
		parsed, err := t.Int64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || t < math.MinInt32 || t > math.MaxInt32 {
			return 0, false
		}
		n = int64(t)
	case int:
		n = int64(t)
	case int32:
		return t, true
	case int64:
		n = t
	default:
		return 0, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}
