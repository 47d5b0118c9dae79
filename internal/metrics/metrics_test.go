package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordgrid/internal/model"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestWordChecksByResult(t *testing.T) {
	m := New()
	m.WordChecked(model.ResultOK)
	m.WordChecked(model.ResultOK)
	m.WordChecked(model.ResultNotWord)

	body := scrape(t, m)
	assert.Contains(t, body, `wordgrid_word_checks_total{result="ok"} 2`)
	assert.Contains(t, body, `wordgrid_word_checks_total{result="not-word"} 1`)
	assert.Contains(t, body, `wordgrid_word_checks_total{result="not-on-board"} 0`)
}

func TestGameCounters(t *testing.T) {
	m := New()
	m.BoardGenerated()
	m.SessionCreated()
	m.ScorePosted(10)
	m.ScorePosted(15)

	body := scrape(t, m)
	assert.Contains(t, body, "wordgrid_boards_generated_total 1")
	assert.Contains(t, body, "wordgrid_sessions_created_total 1")
	assert.Contains(t, body, "wordgrid_scores_posted_total 2")
	assert.Contains(t, body, "wordgrid_round_score_sum 25")
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "/check-word", http.StatusOK, 5*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `wordgrid_http_requests_total{method="POST",route="/check-word",status="200"} 1`)
	assert.Contains(t, body, `wordgrid_http_request_duration_seconds_count{method="POST",route="/check-word"} 1`)
}

func TestInstancesAreIndependent(t *testing.T) {
	first := New()
	second := New()
	first.BoardGenerated()

	assert.Contains(t, scrape(t, second), "wordgrid_boards_generated_total 0")
}
