package risk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songzhibin97/solscout/internal/utils/logger"
)

type fakeFetcher struct {
	reports map[string]Report
	errs    map[string]error
	calls   []string
}

func (f *fakeFetcher) FetchReport(ctx context.Context, ca string) (Report, error) {
	f.calls = append(f.calls, ca)
	if err, ok := f.errs[ca]; ok {
		return nil, err
	}
	return f.reports[ca], nil
}

func TestReport_IsSafe(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   bool
	}{
		{name: "good", report: Report{"minimum_score": "Good"}, want: true},
		{name: "excellent", report: Report{"minimum_score": "Excellent", "risks": []any{}}, want: true},
		{name: "lowercase good", report: Report{"minimum_score": "good"}, want: false},
		{name: "padded excellent", report: Report{"minimum_score": "Excellent "}, want: false},
		{name: "bad", report: Report{"minimum_score": "Bad"}, want: false},
		{name: "numeric score", report: Report{"minimum_score": 90.0}, want: false},
		{name: "null score", report: Report{"minimum_score": nil}, want: false},
		{name: "missing score", report: Report{"score": "Good"}, want: false},
		{name: "nil report", report: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.IsSafe())
		})
	}
}

func TestSafetyChecker_Check(t *testing.T) {
	fetcher := &fakeFetcher{
		reports: map[string]Report{
			"A": {"minimum_score": "Excellent"},
			"C": {"minimum_score": "Good"},
			"D": {"minimum_score": "Warning"},
		},
		errs: map[string]error{
			"B": errors.New("connection refused"),
		},
	}

	checker := NewSafetyChecker(fetcher, logger.Discard())
	safe := checker.Check(context.Background(), []string{"A", "B", "C", "D"})

	// B fails but the remaining candidates are still evaluated
	assert.Equal(t, []string{"A", "B", "C", "D"}, fetcher.calls)
	require.Len(t, safe, 2)
	assert.Equal(t, "A", safe[0].CA)
	assert.Equal(t, "Excellent", safe[0].Report["minimum_score"])
	assert.Equal(t, "C", safe[1].CA)
}

func TestSafetyChecker_CheckEmpty(t *testing.T) {
	fetcher := &fakeFetcher{}
	checker := NewSafetyChecker(fetcher, logger.Discard())

	safe := checker.Check(context.Background(), nil)
	assert.Empty(t, safe)
	assert.Empty(t, fetcher.calls)
}

func setupTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *RugcheckClient) {
	server := httptest.NewServer(handler)

	client := NewRugcheckClient(server.URL + "/api/check")
	client.httpClient = resty.NewWithClient(server.Client())

	return server, client
}

func TestRugcheckClient_FetchReport(t *testing.T) {
	server, client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/check", r.URL.Path)
		assert.Equal(t, "Mint111", r.URL.Query().Get("ca"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"minimum_score":"Good","risks":[{"name":"mutable metadata"}]}`))
		require.NoError(t, err)
	})
	defer server.Close()

	report, err := client.FetchReport(context.Background(), "Mint111")
	require.NoError(t, err)
	assert.Equal(t, "Good", report["minimum_score"])
	assert.Len(t, report["risks"], 1)
	assert.True(t, report.IsSafe())
}

func TestRugcheckClient_ErrorHandling(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http 500 error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "invalid json response", status: http.StatusOK, body: "<html>oops</html>"},
		{name: "array instead of object", status: http.StatusOK, body: `["Good"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, err := w.Write([]byte(tt.body))
				require.NoError(t, err)
			})
			defer server.Close()

			report, err := client.FetchReport(context.Background(), "Mint111")
			assert.Error(t, err)
			assert.Nil(t, report)
		})
	}
}

func TestRugcheckClient_NetworkError(t *testing.T) {
	server, client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.FetchReport(context.Background(), "Mint111")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}
