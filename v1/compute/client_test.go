package compute

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a scripted Provider for facade tests. Task ids round-trip
// the submitted text so PollTask can serve per-text vectors.
type fakeProvider struct {
	mu        sync.Mutex
	vectors   map[string]EmbeddingVector
	submitErr error
	pollErr   error
	healthErr error
	failTexts map[string]bool
	submitted []string
	models    []string
}

func (f *fakeProvider) SubmitTask(ctx context.Context, input []string, model string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitErr != nil {
		return "", f.submitErr
	}
	text := input[0]
	if f.failTexts[text] {
		return "", fmt.Errorf("%w: scripted failure", ErrNetworkUnavailable)
	}
	f.submitted = append(f.submitted, text)
	f.models = append(f.models, model)
	return "task:" + text, nil
}

func (f *fakeProvider) PollTask(ctx context.Context, taskID string) (*ComputeTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pollErr != nil {
		return nil, f.pollErr
	}
	text := taskID[len("task:"):]
	vec, ok := f.vectors[text]
	if !ok {
		return nil, fmt.Errorf("%w: task %s", ErrTaskFailed, taskID)
	}
	return &ComputeTask{ID: taskID, Status: StatusSucceeded, Result: []EmbeddingVector{vec}}, nil
}

func (f *fakeProvider) Health(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.healthErr
}

const testDims = 4

func newTestClient(t *testing.T, fake *fakeProvider) *Client {
	t.Helper()

	c, err := NewClient(&Config{
		Endpoint:         "http://127.0.0.1:1",
		DefaultModel:     "default-model",
		Dimensions:       testDims,
		PollIntervalMS:   1,
		MaxPollAttempts:  2,
		BatchConcurrency: 4,
		HTTPTimeoutS:     1,
	})
	require.NoError(t, err)

	if fake != nil {
		c.provider = fake
	}
	return c
}

func TestGenerateEmbeddingNetworkPath(t *testing.T) {
	fake := &fakeProvider{vectors: map[string]EmbeddingVector{
		"hello": {0.1, 0.2, 0.3, 0.4},
	}}
	c := newTestClient(t, fake)

	vec, err := c.GenerateEmbedding(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, EmbeddingVector{0.1, 0.2, 0.3, 0.4}, vec)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Successes)
	assert.Equal(t, uint64(0), stats.FallbacksUsed)
	assert.Equal(t, uint64(1), stats.RequestsSubmitted)
}

func TestGenerateEmbeddingFallbackOnSubmitFailure(t *testing.T) {
	fake := &fakeProvider{submitErr: fmt.Errorf("%w: refused", ErrNetworkUnavailable)}
	c := newTestClient(t, fake)

	vec, err := c.GenerateEmbedding(context.Background(), "hello")
	require.NoError(t, err, "fallback must swallow network failures")
	assert.Len(t, vec, testDims)
	assert.Equal(t, c.fallback.Embed("hello"), vec, "fallback vector must be the deterministic local one")

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.FallbacksUsed)
	assert.Equal(t, uint64(1), stats.RequestsSubmitted)
}

func TestGenerateEmbeddingFallbackOnPollOutcomes(t *testing.T) {
	for name, pollErr := range map[string]error{
		"task failed":  fmt.Errorf("%w: node crashed", ErrTaskFailed),
		"poll timeout": fmt.Errorf("%w: budget spent", ErrPollTimeout),
	} {
		t.Run(name, func(t *testing.T) {
			fake := &fakeProvider{
				vectors: map[string]EmbeddingVector{"hello": {1, 2, 3, 4}},
				pollErr: pollErr,
			}
			c := newTestClient(t, fake)

			vec, err := c.GenerateEmbedding(context.Background(), "hello")
			require.NoError(t, err)
			assert.Len(t, vec, testDims)
			assert.Equal(t, uint64(1), c.Stats().FallbacksUsed)
		})
	}
}

func TestGenerateEmbeddingEmptyInput(t *testing.T) {
	fake := &fakeProvider{}
	c := newTestClient(t, fake)

	_, err := c.GenerateEmbedding(context.Background(), "   ")
	require.True(t, IsInvalidInputError(err), "expected ErrInvalidInput, got %v", err)
	assert.Empty(t, fake.submitted, "no network call expected for invalid input")
	assert.Equal(t, uint64(0), c.Stats().RequestsSubmitted)
}

func TestGenerateEmbeddingDimensionMismatchFallsBack(t *testing.T) {
	fake := &fakeProvider{vectors: map[string]EmbeddingVector{
		"hello": {0.1, 0.2}, // wrong length
	}}
	c := newTestClient(t, fake)

	vec, err := c.GenerateEmbedding(context.Background(), "hello")
	require.NoError(t, err)
	assert.Len(t, vec, testDims)
	assert.Equal(t, uint64(1), c.Stats().FallbacksUsed)
}

func TestGenerateEmbeddingCancellationSurfaces(t *testing.T) {
	fake := &fakeProvider{submitErr: context.Canceled}
	c := newTestClient(t, fake)

	_, err := c.GenerateEmbedding(context.Background(), "hello")
	require.ErrorIs(t, err, context.Canceled, "cancellation must not be replaced by a fallback vector")
	assert.Equal(t, uint64(0), c.Stats().RequestsSubmitted)
}

func TestGenerateEmbeddingModelSelection(t *testing.T) {
	fake := &fakeProvider{vectors: map[string]EmbeddingVector{
		"a": {1, 1, 1, 1},
	}}
	c := newTestClient(t, fake)

	_, err := c.GenerateEmbedding(context.Background(), "a")
	require.NoError(t, err)
	_, err = c.GenerateEmbedding(context.Background(), "a", "custom-model")
	require.NoError(t, err)

	assert.Equal(t, []string{"default-model", "custom-model"}, fake.models)
}

func TestGenerateBatchEmbeddingsOrderPreserved(t *testing.T) {
	fake := &fakeProvider{
		vectors: map[string]EmbeddingVector{
			"a": {1, 0, 0, 0},
			"c": {0, 0, 1, 0},
		},
		failTexts: map[string]bool{"b": true},
	}
	c := newTestClient(t, fake)

	results, err := c.GenerateBatchEmbeddings(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, EmbeddingVector{1, 0, 0, 0}, results[0])
	assert.Equal(t, c.fallback.Embed("b"), results[1], "failed item must be served by fallback in place")
	assert.Equal(t, EmbeddingVector{0, 0, 1, 0}, results[2])

	stats := c.Stats()
	assert.Equal(t, uint64(2), stats.Successes)
	assert.Equal(t, uint64(1), stats.FallbacksUsed)
	assert.Equal(t, uint64(3), stats.RequestsSubmitted)
}

func TestGenerateBatchEmbeddingsInvalidInput(t *testing.T) {
	fake := &fakeProvider{}
	c := newTestClient(t, fake)

	_, err := c.GenerateBatchEmbeddings(context.Background(), nil)
	assert.True(t, IsInvalidInputError(err))

	_, err = c.GenerateBatchEmbeddings(context.Background(), []string{"ok", ""})
	assert.True(t, IsInvalidInputError(err))
	assert.Empty(t, fake.submitted)
}

func TestStatsMonotonicity(t *testing.T) {
	fake := &fakeProvider{
		vectors:   map[string]EmbeddingVector{"good": {1, 2, 3, 4}},
		failTexts: map[string]bool{"bad": true},
	}
	c := newTestClient(t, fake)

	const successes = 5
	const fallbacks = 3

	for i := 0; i < successes; i++ {
		_, err := c.GenerateEmbedding(context.Background(), "good")
		require.NoError(t, err)
	}
	for i := 0; i < fallbacks; i++ {
		_, err := c.GenerateEmbedding(context.Background(), "bad")
		require.NoError(t, err)
	}

	stats := c.Stats()
	assert.Equal(t, uint64(fallbacks), stats.FallbacksUsed)
	assert.Equal(t, uint64(successes+fallbacks), stats.RequestsSubmitted)
}

func TestCheckNetworkAvailability(t *testing.T) {
	fake := &fakeProvider{}
	c := newTestClient(t, fake)
	assert.True(t, c.CheckNetworkAvailability(context.Background()))

	fake.healthErr = fmt.Errorf("%w: down", ErrNetworkUnavailable)
	assert.False(t, c.CheckNetworkAvailability(context.Background()))
}

func TestCheckNetworkAvailabilityUnreachableEndpoint(t *testing.T) {
	// Real provider against a closed port: must return false, never panic
	// or error.
	c := newTestClient(t, nil)
	assert.False(t, c.CheckNetworkAvailability(context.Background()))
}

func TestNewClientInvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{})
	require.Error(t, err)
}

func TestSharedStatsCollector(t *testing.T) {
	shared := NewStatsCollector()

	fake := &fakeProvider{vectors: map[string]EmbeddingVector{"a": {1, 2, 3, 4}}}
	c := newTestClient(t, fake)
	c.stats = shared

	_, err := c.GenerateEmbedding(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), shared.Snapshot().RequestsSubmitted)
}
