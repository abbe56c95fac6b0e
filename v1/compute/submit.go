package compute

import (
	"context"
	"fmt"
	"strings"
)

// SubmitTask sends one computation request to the gateway and returns the
// assigned task id.
//
// Input is validated before any network call: an empty batch or a blank text
// fails with ErrInvalidInput. An empty model falls back to the configured
// default. The provider keeps no state for the task beyond the returned id.
func (g *gatewayProvider) SubmitTask(ctx context.Context, input []string, model string) (string, error) {
	if len(input) == 0 {
		return "", fmt.Errorf("%w: no input texts", ErrInvalidInput)
	}
	for i, text := range input {
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("%w: input text %d is empty", ErrInvalidInput, i)
		}
	}

	reqBody := map[string]any{
		"input": input,
		"model": model,
	}

	url := fmt.Sprintf("%s/v1/tasks", g.baseURL)

	var parsed struct {
		TaskID string `json:"task_id"`
	}

	if err := g.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return "", err
	}

	if parsed.TaskID == "" {
		return "", fmt.Errorf("%w: gateway returned no task id", ErrNetworkUnavailable)
	}

	return parsed.TaskID, nil
}
