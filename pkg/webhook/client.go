package webhook

import (
	"context"
	"errors"
	"io"

	"github.com/Behyna/sms-services/smsrelay/pkg/httpclient"
)

const RequestIDHeader = "X-Request-ID"

type Client interface {
	Deliver(ctx context.Context, url string, request Request) error
}

type client struct {
	http httpclient.HTTPClient
}

func NewClient(httpClient httpclient.HTTPClient) Client {
	return &client{http: httpClient}
}

// Deliver posts request to url once. The response body is drained and
// discarded; only the status code is inspected.
func (c *client) Deliver(ctx context.Context, url string, request Request) error {
	headers := map[string]string{RequestIDHeader: request.RequestID}

	resp, err := c.http.PostJSON(ctx, url, request, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return ErrTimeout
		}

		return errors.Join(ErrNetwork, err)
	}

	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return MapStatusToError(resp.StatusCode)
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
