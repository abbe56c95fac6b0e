package compute

import (
	"context"
	"fmt"
	"time"
)

// PollTask queries the task status on a fixed interval until a terminal
// state is reached or the attempt budget runs out.
//
// Terminal outcomes:
//   - the gateway reports success: the ComputeTask with its result is returned
//   - the gateway reports failure: ErrTaskFailed
//   - the budget is exhausted: ErrPollTimeout
//
// Transport errors during polling consume an attempt like any other poll and
// end in ErrPollTimeout once the budget is gone; there is no unbounded
// retry. Context cancellation aborts the loop immediately, abandoning the
// pending task (no cleanup call is made to the network).
func (g *gatewayProvider) PollTask(ctx context.Context, taskID string) (*ComputeTask, error) {
	if taskID == "" {
		return nil, fmt.Errorf("%w: empty task id", ErrInvalidInput)
	}

	url := fmt.Sprintf("%s/v1/tasks/%s", g.baseURL, taskID)

	for attempt := 1; attempt <= g.maxPollAttempts; attempt++ {
		var resp taskStatusResponse
		err := g.getJSON(ctx, url, &resp)

		switch {
		case err != nil && ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			// Transport hiccup: the attempt is spent, keep polling until
			// the budget runs out.
		default:
			switch mapRemoteStatus(resp.Status) {
			case StatusSucceeded:
				if len(resp.Result) == 0 {
					return nil, fmt.Errorf("%w: task %s succeeded without a result", ErrTaskFailed, taskID)
				}
				return &ComputeTask{
					ID:     taskID,
					Status: StatusSucceeded,
					Result: resp.Result,
				}, nil
			case StatusFailed:
				if resp.Error != "" {
					return nil, fmt.Errorf("%w: task %s: %s", ErrTaskFailed, taskID, resp.Error)
				}
				return nil, fmt.Errorf("%w: task %s", ErrTaskFailed, taskID)
			}
			// Pending or running: wait for the next attempt.
		}

		if attempt == g.maxPollAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.pollInterval):
		}
	}

	return nil, fmt.Errorf("%w: task %s not terminal after %d attempts", ErrPollTimeout, taskID, g.maxPollAttempts)
}
