package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeevibe/jeevibe/internal/auth"
	"github.com/jeevibe/jeevibe/internal/quiz"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(Config{BaseURL: srv.URL, Timeout: 0},
		&auth.StaticTokenProvider{Token: "tok-1"})
	require.NoError(t, err)
	c.client = srv.Client()
	return c
}

func TestSubmitAnswer_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/sessions/s1/answers", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"is_correct": true,
			"correct_answer": "b",
			"explanation": {
				"approach": "Use v^2 = u^2 + 2as.",
				"steps": ["Identify knowns.", "Solve for t."],
				"key_insight": "Free fall from rest."
			}
		}`))
	}))

	rec, err := c.SubmitAnswer(context.Background(), SubmitRequest{
		SessionID:        "s1",
		QuestionID:       "q1",
		Answer:           "b",
		TimeTakenSeconds: 42,
	})
	require.NoError(t, err)

	assert.True(t, rec.Correct)
	assert.Equal(t, "q1", rec.QuestionID)
	assert.Equal(t, "b", rec.Answer)
	assert.Equal(t, "b", rec.CorrectAnswer)
	assert.Equal(t, 42, rec.TimeTakenSeconds)
	assert.Equal(t, "Free fall from rest.", rec.Explanation.KeyInsight)
}

func TestSubmitAnswer_ServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))

	_, err := c.SubmitAnswer(context.Background(), SubmitRequest{SessionID: "s1", QuestionID: "q1", Answer: "a"})
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadGateway, reqErr.StatusCode)
	assert.True(t, reqErr.Retryable())
}

func TestSubmitAnswer_BadRequestNotRetryable(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "empty answer"}`, http.StatusBadRequest)
	}))

	_, err := c.SubmitAnswer(context.Background(), SubmitRequest{SessionID: "s1", QuestionID: "q1", Answer: ""})

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.False(t, reqErr.Retryable())
}

func TestSubmitAnswer_Unauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusUnauthorized)
	}))

	_, err := c.SubmitAnswer(context.Background(), SubmitRequest{SessionID: "s1", QuestionID: "q1", Answer: "a"})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestSubmitAnswer_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the server without a token")
	}))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(Config{BaseURL: srv.URL}, &auth.StaticTokenProvider{})
	require.NoError(t, err)

	_, err = c.SubmitAnswer(context.Background(), SubmitRequest{SessionID: "s1", QuestionID: "q1", Answer: "a"})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestCompleteSession_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions/s1/complete", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"correct_count": 4,
			"total_count": 5,
			"passed": true,
			"per_question": [
				{"question_id": "q1", "correct": true},
				{"question_id": "q2", "correct": false}
			],
			"completed_at": "2026-08-20T10:30:00Z"
		}`))
	}))

	summary, err := c.CompleteSession(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.CorrectCount)
	assert.Equal(t, 5, summary.TotalCount)
	assert.True(t, summary.Passed)
	assert.Equal(t, quiz.SummaryFromServer, summary.Source)
	assert.Len(t, summary.PerQuestion, 2)
}

func TestCompleteSession_AlreadyCompleted(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "already_completed"}`, http.StatusConflict)
	}))

	_, err := c.CompleteSession(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestCompleteSession_PlainConflictIsNotAlreadyCompleted(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "version_conflict"}`, http.StatusConflict)
	}))

	_, err := c.CompleteSession(context.Background(), "s1")
	assert.NotErrorIs(t, err, ErrAlreadyCompleted)

	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
}

func TestDailyQuiz_ParsesManifest(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/quizzes/daily", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"session_id": "s9",
			"kind": "daily",
			"questions": [
				{"id": "q1", "subject": "physics", "chapter": "kinematics",
				 "prompt": "What is g?", "kind": "numerical"}
			]
		}`))
	}))

	m, err := c.DailyQuiz(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s9", m.SessionID)
	assert.Equal(t, quiz.SessionDaily, m.Kind)
}

func TestDailyQuiz_RejectsInvalidManifest(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind": "daily", "questions": []}`))
	}))

	_, err := c.DailyQuiz(context.Background())
	require.Error(t, err)
}

func TestChapterQuiz_Query(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "physics", r.URL.Query().Get("subject"))
		assert.Equal(t, "rotation", r.URL.Query().Get("chapter"))
		assert.Equal(t, "10", r.URL.Query().Get("count"))
		_, _ = w.Write([]byte(`{
			"session_id": "s2", "kind": "chapter_practice",
			"questions": [{"id": "q1", "prompt": "p", "kind": "numerical"}]
		}`))
	}))

	_, err := c.ChapterQuiz(context.Background(), "physics", "rotation", 10)
	require.NoError(t, err)
}

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name    string
		min     string
		client  string
		wantErr error
	}{
		{"no minimum", "", "1.0.0", nil},
		{"dev build passes", "2.0.0", "(devel)", nil},
		{"up to date", "1.2.0", "1.3.1", nil},
		{"exactly minimum", "1.2.0", "1.2.0", nil},
		{"outdated", "1.2.0", "1.1.9", ErrClientOutdated},
		{"garbage versions ignored", "not-a-version", "1.0.0", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCompatibility(&Health{MinClientVersion: tt.min}, tt.client)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequestError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &RequestError{Endpoint: "/v1/quizzes/daily", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.True(t, err.Retryable())
}
