package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"time"
)

// OpenTDBClient fetches categories and questions from the Open Trivia DB (no API key).
type OpenTDBClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOpenTDBClient(baseURL string, httpClient *http.Client) *OpenTDBClient {
	if baseURL == "" {
		baseURL = "https://opentdb.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &OpenTDBClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type OpenTDBCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// OpenTDBQuestion is one question as served by the API. Text fields are HTML-escaped on the wire
// and unescaped by Fetch.
type OpenTDBQuestion struct {
	Category        string   `json:"category"`
	Type            string   `json:"type"`
	Difficulty      string   `json:"difficulty"`
	Question        string   `json:"question"`
	CorrectAnswer   string   `json:"correct_answer"`
	IncorrectAnswer []string `json:"incorrect_answers"`
}

// Response codes documented by the Open Trivia DB.
const (
	openTDBSuccess   = 0
	openTDBNoResults = 1
	openTDBRateLimit = 5
)

type openTDBResponse struct {
	ResponseCode int               `json:"response_code"`
	Results      []OpenTDBQuestion `json:"results"`
}

type openTDBCategoryResponse struct {
	TriviaCategories []OpenTDBCategory `json:"trivia_categories"`
}

// ErrRateLimited is returned when the API asks the caller to slow down.
var ErrRateLimited = errors.New("opentdb rate limited")

// Categories lists every category the API offers.
func (c *OpenTDBClient) Categories(ctx context.Context) ([]OpenTDBCategory, error) {
	var payload openTDBCategoryResponse
	if err := c.get(ctx, "/api_category.php", nil, &payload); err != nil {
		return nil, err
	}
	return payload.TriviaCategories, nil
}

// Fetch returns up to amount questions of one category. A category with fewer questions than
// requested yields an empty result rather than an error.
func (c *OpenTDBClient) Fetch(ctx context.Context, amount, categoryID int) ([]OpenTDBQuestion, error) {
	values := url.Values{}
	values.Set("amount", fmt.Sprint(amount))
	if categoryID > 0 {
		values.Set("category", fmt.Sprint(categoryID))
	}

	var payload openTDBResponse
	if err := c.get(ctx, "/api.php", values, &payload); err != nil {
		return nil, err
	}
	switch payload.ResponseCode {
	case openTDBSuccess:
	case openTDBNoResults:
		return nil, nil
	case openTDBRateLimit:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("opentdb response code %d", payload.ResponseCode)
	}

	for i := range payload.Results {
		q := &payload.Results[i]
		q.Category = html.UnescapeString(q.Category)
		q.Question = html.UnescapeString(q.Question)
		q.CorrectAnswer = html.UnescapeString(q.CorrectAnswer)
		for j, a := range q.IncorrectAnswer {
			q.IncorrectAnswer[j] = html.UnescapeString(a)
		}
	}
	return payload.Results, nil
}

func (c *OpenTDBClient) get(ctx context.Context, path string, values url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(values) > 0 {
		target += "?" + values.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("opentdb non-200: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
