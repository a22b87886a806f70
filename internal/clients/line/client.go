package line

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// ReplyFailureCode is the richerrors code of a failed reply call.
	ReplyFailureCode = http.StatusBadGateway

	replyPath             = "/v2/bot/message/reply"
	defaultRequestTimeout = 10 * time.Second
	// maxResponseBodySize bounds how much of an error response is kept.
	maxResponseBodySize = 1024
	// maxReplyMessages is the LINE limit per reply call.
	maxReplyMessages = 5
)

// ErrNotSupported is returned by Messaging API features the bot does not use.
var ErrNotSupported = errors.New("not supported by the LINE client")

// Client calls the LINE Messaging API.
type Client struct {
	replyURL    string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Client for the API at baseURL authenticating with a
// channel access token. A nil httpClient gets a default with a timeout.
func NewClient(baseURL, accessToken string, httpClient *http.Client) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse LINE API URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{
		replyURL:    parsed.String() + replyPath,
		accessToken: accessToken,
		httpClient:  httpClient,
	}, nil
}

// Reply answers the event that issued replyToken. A reply token can be used once.
func (c *Client) Reply(ctx context.Context, replyToken string, messages ...Message) error {
	if len(messages) == 0 || len(messages) > maxReplyMessages {
		return fmt.Errorf("reply needs 1 to %d messages, got %d", maxReplyMessages, len(messages))
	}
	body, err := json.Marshal(ReplyRequest{ReplyToken: replyToken, Messages: messages})
	if err != nil {
		return fmt.Errorf("failed to marshal reply: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.replyURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create reply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: ReplyFailureCode,
			Err:  fmt.Errorf("failed to POST reply: %w", err),
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: ReplyFailureCode,
			Err:  fmt.Errorf("reply returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}
	return nil
}

// Push returns ErrNotSupported. The bot only answers events.
func (c *Client) Push(context.Context, string, ...Message) error {
	return ErrNotSupported
}

// Broadcast returns ErrNotSupported. The bot only answers events.
func (c *Client) Broadcast(context.Context, ...Message) error {
	return ErrNotSupported
}
