package question

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(store *memStore) *http.ServeMux {
	mux := http.NewServeMux()
	NewHTTPHandler(NewService(store, nil, zerolog.Nop())).Register(mux)
	return mux
}

func do(t *testing.T, mux http.Handler, method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestHTTPListCategories(t *testing.T) {
	mux := newTestServer(newMemStore("Tech", "Science"))

	rec, data := do(t, mux, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(2), data["total_categories"])
	assert.Equal(t, map[string]interface{}{"1": "Tech", "2": "Science"}, data["categories"])
}

func TestHTTPListQuestions(t *testing.T) {
	mux := newTestServer(seededStore(15))

	rec, data := do(t, mux, http.MethodGet, "/questions", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, data["questions"], 10)
	assert.Equal(t, float64(15), data["total_questions"])
	assert.NotEmpty(t, data["categories"])

	rec, data = do(t, mux, http.MethodGet, "/questions?page=2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, data["questions"], 5)

	rec, data = do(t, mux, http.MethodGet, "/questions?page=10000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, data["success"])
	assert.Equal(t, "resource not found", data["message"])
}

func TestHTTPListQuestionsPageParam(t *testing.T) {
	mux := newTestServer(seededStore(15))

	for _, page := range []string{"99999999999999999999", "-99999999999999999999", "0", "-1", "3"} {
		rec, data := do(t, mux, http.MethodGet, "/questions?page="+page, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, page)
		assert.Equal(t, "resource not found", data["message"], page)
	}

	for _, page := range []string{"abc", "1.5", ""} {
		rec, data := do(t, mux, http.MethodGet, "/questions?page="+page, nil)
		assert.Equal(t, http.StatusOK, rec.Code, page)
		assert.Len(t, data["questions"], 10, page)
	}
}

func TestHTTPCreateSearchDelete(t *testing.T) {
	mux := newTestServer(newMemStore("Tech", "Science"))

	rec, data := do(t, mux, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "What are you passionate about?",
		"answer":     "Software Engineering",
		"difficulty": 5,
		"category":   1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	id := int(data["question_id"].(float64))
	assert.Positive(t, id)

	rec, data = do(t, mux, http.MethodGet, "/questions/"+strconv.Itoa(id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	q := data["question"].(map[string]interface{})
	assert.Equal(t, "What are you passionate about?", q["question"])
	assert.Equal(t, "Software Engineering", q["answer"])
	assert.Equal(t, float64(5), q["difficulty"])
	assert.Equal(t, float64(1), q["category"])

	rec, data = do(t, mux, http.MethodPost, "/questions", map[string]string{"searchTerm": "passion"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, data["questions"], 1)
	assert.Equal(t, float64(1), data["total_questions"])

	rec, data = do(t, mux, http.MethodPost, "/questions", map[string]string{"searchTerm": "nothing like this"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{}, data["questions"])
	assert.Equal(t, float64(0), data["total_questions"])

	rec, data = do(t, mux, http.MethodDelete, "/questions/"+strconv.Itoa(id), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])

	rec, data = do(t, mux, http.MethodDelete, "/questions/"+strconv.Itoa(id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "resource not found", data["message"])
}

func TestHTTPCreateOrSearchBadRequests(t *testing.T) {
	mux := newTestServer(newMemStore("Tech"))

	payloads := []interface{}{
		map[string]interface{}{},
		map[string]interface{}{"question": "What is your name?"},
		map[string]interface{}{
			"question":   "What are you passionate about?",
			"answer":     "Cooking",
			"difficulty": 3,
			"category":   1,
			"searchTerm": "set",
		},
		[]int{1, 2},
	}
	for _, p := range payloads {
		rec, data := do(t, mux, http.MethodPost, "/questions", p)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, data["success"])
		assert.Equal(t, "bad request", data["message"])
	}
}

func TestHTTPCreateWithUnknownCategory(t *testing.T) {
	mux := newTestServer(newMemStore("Tech"))

	rec, data := do(t, mux, http.MethodPost, "/questions", map[string]interface{}{
		"question": "q", "answer": "a", "difficulty": 3, "category": 7,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "unprocessable", data["message"])
}

func TestHTTPDeleteUnknownAndMalformedIDs(t *testing.T) {
	mux := newTestServer(seededStore(1))

	rec, _ := do(t, mux, http.MethodDelete, "/questions/10000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, mux, http.MethodDelete, "/questions/abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPCategoryQuestions(t *testing.T) {
	mux := newTestServer(seededStore(6))

	rec, data := do(t, mux, http.MethodGet, "/categories/1/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(2), data["total_questions"])
	assert.Equal(t, "Science", data["current_category"])

	rec, _ = do(t, mux, http.MethodGet, "/categories/100/questions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPCategoryAdmin(t *testing.T) {
	store := seededStore(1)
	mux := newTestServer(store)

	rec, data := do(t, mux, http.MethodPost, "/categories", map[string]string{"type": "Music"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(4), data["category_id"])

	rec, _ = do(t, mux, http.MethodPost, "/categories", map[string]interface{}{"type": 3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, data = do(t, mux, http.MethodDelete, "/categories/1", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "unprocessable", data["message"])

	rec, _ = do(t, mux, http.MethodDelete, "/categories/4", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
