//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

// doJSON sends payload (when non-nil) as JSON and decodes the response body into a map.
func doJSON(t *testing.T, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL()+path, body)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]interface{}{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func expectStatus(t *testing.T, got, want int, body map[string]interface{}) {
	t.Helper()
	if got != want {
		t.Fatalf("expected status %d, got %d, body: %v", want, got, body)
	}
}

func expectError(t *testing.T, status int, body map[string]interface{}, wantStatus int, wantMessage string) {
	t.Helper()
	expectStatus(t, status, wantStatus, body)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if body["message"] != wantMessage {
		t.Fatalf("expected message %q, got %v", wantMessage, body["message"])
	}
}

// firstCategoryID returns the id of any seeded category.
func firstCategoryID(t *testing.T) int {
	t.Helper()
	status, body := doJSON(t, http.MethodGet, "/categories", nil)
	expectStatus(t, status, http.StatusOK, body)

	categories, _ := body["categories"].(map[string]interface{})
	for id := range categories {
		var n int
		if _, err := fmt.Sscan(id, &n); err == nil {
			return n
		}
	}
	t.Fatal("no categories seeded")
	return 0
}

// createQuestion inserts a uniquely worded question and returns its id. The question is deleted
// when the test ends unless the test already deleted it.
func createQuestion(t *testing.T, category int) (int, string) {
	t.Helper()
	text := fmt.Sprintf("Integration question %d?", time.Now().UnixNano())
	status, body := doJSON(t, http.MethodPost, "/questions", map[string]interface{}{
		"question":   text,
		"answer":     "Integration answer",
		"category":   category,
		"difficulty": 2,
	})
	expectStatus(t, status, http.StatusOK, body)

	id, ok := body["question_id"].(float64)
	if !ok {
		t.Fatalf("question_id missing: %v", body)
	}
	t.Cleanup(func() { deleteQuestion(t, int(id)) })
	return int(id), text
}

func deleteQuestion(t *testing.T, id int) {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/questions/%d", baseURL(), id), nil)
	if err != nil {
		t.Errorf("create delete request: %v", err)
		return
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Errorf("delete question %d: %v", id, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		t.Errorf("delete question %d: unexpected status %d", id, resp.StatusCode)
	}
}
