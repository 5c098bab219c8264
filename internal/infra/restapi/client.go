package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"venue-booking/internal/domain/auth"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// Client talks JSON to the upstream booking API. Only GET requests are
// retried; a POST or DELETE is sent once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	logger     *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.status, e.body)
}

func (c *Client) do(ctx context.Context, sess auth.Session, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return infra.WrapRepoErr(c.logger, infra.KindUpstream, "failed to encode request", err)
		}
	}

	attempt := func() error {
		err := c.send(ctx, sess, method, path, payload, out)
		if err == nil {
			return nil
		}
		if se, ok := err.(*statusError); ok && !retryable(se.status) {
			return backoff.Permanent(err)
		}
		return err
	}

	var err error
	if method == http.MethodGet {
		b := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), c.maxRetries), ctx)
		err = backoff.Retry(attempt, b)
	} else {
		err = c.send(ctx, sess, method, path, payload, out)
	}
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf("%s %s failed", method, path)
	if se, ok := err.(*statusError); ok {
		switch se.status {
		case http.StatusNotFound:
			return infra.WrapRepoErr(c.logger, infra.KindNotFound, msg, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return infra.WrapRepoErr(c.logger, infra.KindUnauthorized, msg, err)
		case http.StatusConflict:
			return infra.WrapRepoErr(c.logger, infra.KindDuplicateKey, msg, err)
		}
	}
	return infra.WrapRepoErr(c.logger, infra.KindUpstream, msg, err)
}

func (c *Client) send(ctx context.Context, sess auth.Session, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h := sess.Authorization(); h != "" {
		req.Header.Set("Authorization", h)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{status: resp.StatusCode, body: strings.TrimSpace(string(snippet))}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decode response")
	}
	return nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 0
	return b
}
