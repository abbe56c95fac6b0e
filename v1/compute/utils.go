package compute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// postJSON sends an HTTP POST request to the gateway API. It marshals the
// given body as JSON, attaches headers, maps HTTP failures onto the package
// error taxonomy, and optionally decodes the response JSON into out.
func (g *gatewayProvider) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("compute: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("compute: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	g.setAuth(req)

	return g.do(req, url, out)
}

// getJSON sends an HTTP GET request to the gateway API and optionally
// decodes the response JSON into out.
func (g *gatewayProvider) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("compute: build request: %w", err)
	}
	g.setAuth(req)

	return g.do(req, url, out)
}

func (g *gatewayProvider) setAuth(req *http.Request) {
	if g.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.serviceToken)
	}
}

// do executes the request and maps failures onto the error taxonomy:
// transport errors and 5xx/unknown statuses become ErrNetworkUnavailable,
// a 400 becomes ErrInvalidInput (the gateway rejected the payload).
func (g *gatewayProvider) do(req *http.Request, url string, out any) error {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		// Keep the caller's cancellation visible instead of masking it as
		// an unavailable network.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %v", ErrNetworkUnavailable, url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: gateway rejected request: http %d for %s", ErrInvalidInput, resp.StatusCode, url)
	case resp.StatusCode >= 300:
		return fmt.Errorf("%w: http %d for %s", ErrNetworkUnavailable, resp.StatusCode, url)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response from %s: %v", ErrNetworkUnavailable, url, err)
		}
	}

	return nil
}
