package compute

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, endpoint string, attempts int) *gatewayProvider {
	t.Helper()

	p, err := newGatewayProvider(&Config{
		Endpoint:        endpoint,
		PollIntervalMS:  1,
		MaxPollAttempts: attempts,
		HTTPTimeoutS:    5,
	})
	require.NoError(t, err)
	return p
}

func writeStatus(w http.ResponseWriter, resp taskStatusResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func TestSubmitTaskRoundTrip(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/tasks", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"task_id": "task-42"})
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL, 1)

	id, err := p.SubmitTask(context.Background(), []string{"hello"}, "test-model")
	require.NoError(t, err)
	assert.Equal(t, "task-42", id)
	assert.Equal(t, "test-model", gotBody["model"])
}

func TestSubmitTaskEmptyInputRejectedBeforeNetwork(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL, 1)

	_, err := p.SubmitTask(context.Background(), nil, "m")
	assert.True(t, IsInvalidInputError(err), "expected ErrInvalidInput, got %v", err)

	_, err = p.SubmitTask(context.Background(), []string{"ok", "  "}, "m")
	assert.True(t, IsInvalidInputError(err), "expected ErrInvalidInput, got %v", err)

	assert.Equal(t, int64(0), calls.Load(), "no network call expected for invalid input")
}

func TestSubmitTaskUnreachableEndpoint(t *testing.T) {
	p := newTestProvider(t, "http://127.0.0.1:1", 1)

	_, err := p.SubmitTask(context.Background(), []string{"hello"}, "m")
	assert.True(t, IsNetworkUnavailableError(err), "expected ErrNetworkUnavailable, got %v", err)
}

func TestSubmitTaskGatewayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL, 1)

	_, err := p.SubmitTask(context.Background(), []string{"hello"}, "m")
	assert.True(t, IsInvalidInputError(err), "expected ErrInvalidInput, got %v", err)
}

func TestPollTaskSucceedsAfterRetries(t *testing.T) {
	var polls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tasks/task-1", r.URL.Path)
		if polls.Add(1) < 3 {
			writeStatus(w, taskStatusResponse{Status: "running"})
			return
		}
		writeStatus(w, taskStatusResponse{
			Status: "succeeded",
			Result: []EmbeddingVector{{0.1, 0.2, 0.3}},
		})
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL, 10)

	task, err := p.PollTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, task.Status)
	assert.Equal(t, EmbeddingVector{0.1, 0.2, 0.3}, task.Result[0])
	assert.Equal(t, int64(3), polls.Load())
}

func TestPollTaskBudgetRespected(t *testing.T) {
	var polls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		writeStatus(w, taskStatusResponse{Status: "pending"})
	}))
	defer server.Close()

	const budget = 4
	p := newTestProvider(t, server.URL, budget)

	_, err := p.PollTask(context.Background(), "task-1")
	assert.True(t, IsPollTimeoutError(err), "expected ErrPollTimeout, got %v", err)
	assert.Equal(t, int64(budget), polls.Load(), "poll count must match the configured budget exactly")
}

func TestPollTaskFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, taskStatusResponse{Status: "failed", Error: "node crashed"})
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL, 5)

	_, err := p.PollTask(context.Background(), "task-1")
	require.True(t, IsTaskFailedError(err), "expected ErrTaskFailed, got %v", err)
	assert.Contains(t, err.Error(), "node crashed")
}

func TestPollTaskSucceededWithoutResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, taskStatusResponse{Status: "succeeded"})
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL, 5)

	_, err := p.PollTask(context.Background(), "task-1")
	assert.True(t, IsTaskFailedError(err), "expected ErrTaskFailed, got %v", err)
}

func TestPollTaskTransportErrorsConsumeBudget(t *testing.T) {
	p := newTestProvider(t, "http://127.0.0.1:1", 3)

	start := time.Now()
	_, err := p.PollTask(context.Background(), "task-1")
	assert.True(t, IsPollTimeoutError(err), "expected ErrPollTimeout, got %v", err)
	assert.Less(t, time.Since(start), 5*time.Second, "budget must bound the loop")
}

func TestPollTaskContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, taskStatusResponse{Status: "running"})
	}))
	defer server.Close()

	p, err := newGatewayProvider(&Config{
		Endpoint:        server.URL,
		PollIntervalMS:  10000,
		MaxPollAttempts: 100,
		HTTPTimeoutS:    5,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = p.PollTask(ctx, "task-1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second, "cancellation must abort the wait")
}

func TestPollTaskUnknownStatusKeepsPolling(t *testing.T) {
	var polls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) < 2 {
			writeStatus(w, taskStatusResponse{Status: "migrating"})
			return
		}
		writeStatus(w, taskStatusResponse{
			Status: "completed",
			Result: []EmbeddingVector{{1}},
		})
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL, 5)

	task, err := p.PollTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, task.Status)
}

func TestPollTaskEmptyID(t *testing.T) {
	p := newTestProvider(t, "http://127.0.0.1:1", 3)

	_, err := p.PollTask(context.Background(), "")
	assert.True(t, IsInvalidInputError(err), "expected ErrInvalidInput, got %v", err)
}

func TestMapRemoteStatus(t *testing.T) {
	cases := map[string]TaskStatus{
		"pending":     StatusPending,
		"queued":      StatusPending,
		"running":     StatusRunning,
		"in_progress": StatusRunning,
		"SUCCEEDED":   StatusSucceeded,
		"completed":   StatusSucceeded,
		"failed":      StatusFailed,
		"error":       StatusFailed,
		"migrating":   StatusRunning,
		"":            StatusRunning,
	}

	for remote, want := range cases {
		if got := mapRemoteStatus(remote); got != want {
			t.Errorf("mapRemoteStatus(%q) = %v, want %v", remote, got, want)
		}
	}
}
