package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	braintreeVersionHeader = "Braintree-Version"
	braintreeVersion       = "2018-05-10"
	maxResponseBytes       = 1 << 20
)

// GatewaySettings points the HTTP collaborators at the gateway
type GatewaySettings struct {
	ClientAPIURL             string
	ConfigurationURL         string
	AuthorizationFingerprint string
	Timeout                  time.Duration
}

// NewGatewayHTTPClient builds the shared client used for gateway calls
func NewGatewayHTTPClient(settings GatewaySettings) *http.Client {
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// gatewayClient performs authenticated JSON calls and maps failures to status errors
type gatewayClient struct {
	httpClient  *http.Client
	fingerprint string
}

func (c *gatewayClient) do(ctx context.Context, method, url string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(braintreeVersionHeader, braintreeVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.fingerprint != "" {
		req.Header.Set("Authorization", "Bearer "+c.fingerprint)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, req.URL.Path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}
