package peer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/errors"
)

// DefaultTimeout bounds a single peer invocation when the config does not
// override it.
const DefaultTimeout = 3 * time.Second

// Client invokes one named peer service. The classifier lives here so that
// every caller sees the same five outcome kinds regardless of which peer
// it talks to.
type Client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient builds a client for the peer reachable at baseURL. A
// non-positive timeout falls back to DefaultTimeout.
func NewClient(name, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		name:       name,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		logger:     logger,
	}
}

// Name returns the peer's configured name, used in logs and error details.
func (c *Client) Name() string {
	return c.name
}

// Invoke performs a single HTTP call against the peer and classifies the
// result. It never returns an error; the Outcome carries the full story
// and the caller's policy decides what to do with it.
func (c *Client) Invoke(ctx context.Context, method, path string, body any) Outcome {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Outcome{Kind: KindUnexpected, Err: errors.Wrap(err, "marshal request body")}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Outcome{Kind: KindUnexpected, Err: errors.Wrap(err, "build request")}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Outcome{Kind: classifyTransport(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Outcome{Kind: KindNotFound, Status: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{
			Kind:   KindUnexpected,
			Status: resp.StatusCode,
			Err:    errors.Errorf("peer %s returned status %d", c.name, resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Kind: classifyTransport(err), Status: resp.StatusCode, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Outcome{
			Kind:   KindUnexpected,
			Status: resp.StatusCode,
			Err:    errors.Wrap(err, "decode response envelope"),
		}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return Outcome{
			Kind:   KindUnexpected,
			Status: resp.StatusCode,
			Err:    errors.Errorf("peer %s returned an envelope without data", c.name),
		}
	}

	return Outcome{Kind: KindSuccess, Data: env.Data, Status: resp.StatusCode}
}

// classifyTransport separates deadline expiry from other network failures.
func classifyTransport(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	return KindTransportError
}

// FetchOptional invokes the peer under the degrade policy: any non-success
// outcome is logged and absorbed, and the caller receives nil. Absence
// must never fail the caller's own operation.
func FetchOptional[T any](ctx context.Context, c *Client, method, path string, body any, operation string) *T {
	outcome := c.Invoke(ctx, method, path, body)
	if !outcome.OK() {
		c.logDegraded(ctx, operation, outcome)
		return nil
	}

	result := new(T)
	if err := json.Unmarshal(outcome.Data, result); err != nil {
		c.logDegraded(ctx, operation, Outcome{
			Kind:   KindUnexpected,
			Status: outcome.Status,
			Err:    errors.Wrap(err, "decode response data"),
		})
		return nil
	}
	c.logger.DebugContext(ctx, "Peer call succeeded",
		slog.String("peer", c.name),
		slog.String("operation", operation),
	)

	return result
}

// FetchRequired invokes the peer under the escalate policy: any
// non-success outcome becomes a dependent-service error that surfaces to
// the caller.
func FetchRequired[T any](ctx context.Context, c *Client, method, path string, body any, operation string) (*T, error) {
	outcome := c.Invoke(ctx, method, path, body)
	if !outcome.OK() {
		c.logEscalated(ctx, operation, outcome)
		return nil, errors.Wrapf(domainerrors.ErrExternalService,
			"%s calling peer %s %s", outcome.Kind, c.name, operation)
	}

	result := new(T)
	if err := json.Unmarshal(outcome.Data, result); err != nil {
		wrapped := errors.Wrap(err, "decode response data")
		c.logEscalated(ctx, operation, Outcome{Kind: KindUnexpected, Status: outcome.Status, Err: wrapped})
		return nil, errors.Wrapf(domainerrors.ErrExternalService,
			"%s calling peer %s %s", KindUnexpected, c.name, operation)
	}
	c.logger.DebugContext(ctx, "Peer call succeeded",
		slog.String("peer", c.name),
		slog.String("operation", operation),
	)

	return result, nil
}

func (c *Client) logDegraded(ctx context.Context, operation string, outcome Outcome) {
	c.logger.WarnContext(ctx, "Peer call degraded, continuing without data",
		outcomeAttrs(c.name, operation, outcome)...)
}

func (c *Client) logEscalated(ctx context.Context, operation string, outcome Outcome) {
	c.logger.ErrorContext(ctx, "Peer call failed, escalating",
		outcomeAttrs(c.name, operation, outcome)...)
}

func outcomeAttrs(peer, operation string, outcome Outcome) []any {
	attrs := []any{
		slog.String("peer", peer),
		slog.String("operation", operation),
		slog.String("outcome", string(outcome.Kind)),
	}
	if outcome.Status != 0 {
		attrs = append(attrs, slog.Int("status", outcome.Status))
	}
	if outcome.Err != nil {
		attrs = append(attrs, slog.Any("error", outcome.Err))
	}

	return attrs
}
