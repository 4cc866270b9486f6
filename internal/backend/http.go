package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jeevibe/jeevibe/internal/auth"
	"github.com/jeevibe/jeevibe/internal/quiz"
)

// HTTPClient implements Client against the JEEVibe REST API.
type HTTPClient struct {
	cfg    Config
	tokens auth.TokenProvider
	client *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a gateway client. The token provider supplies
// the bearer token per request; an unavailable token fails the call
// with ErrAuthRequired before any API traffic happens.
func NewHTTPClient(cfg Config, tokens auth.TokenProvider) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tokens == nil {
		return nil, fmt.Errorf("token provider is required")
	}
	return &HTTPClient{
		cfg:    cfg,
		tokens: tokens,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *HTTPClient) DailyQuiz(ctx context.Context) (*quiz.Manifest, error) {
	raw, err := c.do(ctx, http.MethodGet, "/v1/quizzes/daily", nil, nil)
	if err != nil {
		return nil, err
	}
	return quiz.ParseManifest(raw)
}

func (c *HTTPClient) ChapterQuiz(ctx context.Context, subject, chapter string, count int) (*quiz.Manifest, error) {
	q := url.Values{
		"subject": {subject},
		"chapter": {chapter},
	}
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}

	raw, err := c.do(ctx, http.MethodGet, "/v1/quizzes/chapter", q, nil)
	if err != nil {
		return nil, err
	}
	return quiz.ParseManifest(raw)
}

// submitResponse is the grader's wire shape for one answer.
type submitResponse struct {
	IsCorrect     bool             `json:"is_correct"`
	CorrectAnswer string           `json:"correct_answer"`
	Explanation   quiz.Explanation `json:"explanation"`
}

func (c *HTTPClient) SubmitAnswer(ctx context.Context, req SubmitRequest) (*quiz.AnswerRecord, error) {
	path := fmt.Sprintf("/v1/sessions/%s/answers", url.PathEscape(req.SessionID))
	body := map[string]any{
		"question_id":        req.QuestionID,
		"attempt_id":         req.AttemptID,
		"answer":             req.Answer,
		"time_taken_seconds": req.TimeTakenSeconds,
	}

	raw, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}

	var resp submitResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &RequestError{Endpoint: path, Err: fmt.Errorf("decode submit response: %w", err)}
	}

	return &quiz.AnswerRecord{
		QuestionID:       req.QuestionID,
		Answer:           req.Answer,
		Correct:          resp.IsCorrect,
		CorrectAnswer:    resp.CorrectAnswer,
		Explanation:      resp.Explanation,
		TimeTakenSeconds: req.TimeTakenSeconds,
	}, nil
}

// completeResponse is the wire shape of a finalized session.
type completeResponse struct {
	CorrectCount int       `json:"correct_count"`
	TotalCount   int       `json:"total_count"`
	Passed       bool      `json:"passed"`
	PerQuestion  []struct {
		QuestionID string `json:"question_id"`
		Correct    bool   `json:"correct"`
	} `json:"per_question"`
	CompletedAt time.Time `json:"completed_at"`
}

func (c *HTTPClient) CompleteSession(ctx context.Context, sessionID string) (*quiz.SessionSummary, error) {
	path := fmt.Sprintf("/v1/sessions/%s/complete", url.PathEscape(sessionID))

	raw, err := c.do(ctx, http.MethodPost, path, nil, map[string]any{})
	if err != nil {
		return nil, err
	}

	var resp completeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &RequestError{Endpoint: path, Err: fmt.Errorf("decode complete response: %w", err)}
	}

	summary := &quiz.SessionSummary{
		SessionID:    sessionID,
		CorrectCount: resp.CorrectCount,
		TotalCount:   resp.TotalCount,
		Passed:       resp.Passed,
		CompletedAt:  resp.CompletedAt,
		Source:       quiz.SummaryFromServer,
	}
	for _, pq := range resp.PerQuestion {
		summary.PerQuestion = append(summary.PerQuestion, quiz.QuestionResult{
			QuestionID: pq.QuestionID,
			Correct:    pq.Correct,
		})
	}
	if summary.CompletedAt.IsZero() {
		summary.CompletedAt = time.Now()
	}
	return summary, nil
}

// do executes one authenticated JSON request and returns the raw
// response body for 2xx statuses. Error mapping:
//
//	no token / 401        → ErrAuthRequired
//	409 already_completed → ErrAlreadyCompleted
//	anything else         → *RequestError
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	token, err := c.tokens.IDToken(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthRequired, err)
	}

	u := strings.TrimRight(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{Endpoint: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Endpoint: path, StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return respBody, nil

	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: token rejected", ErrAuthRequired)

	case resp.StatusCode == http.StatusConflict && isAlreadyCompleted(respBody):
		return nil, ErrAlreadyCompleted

	default:
		reqErr := &RequestError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(respBody), 512),
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			reqErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		}
		return nil, reqErr
	}
}

// isAlreadyCompleted checks a 409 body for the already-completed signal.
func isAlreadyCompleted(body []byte) bool {
	var payload struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	return payload.Error == "already_completed" || payload.Code == "already_completed"
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
