package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultSlackAPIURL = "https://slack.com/api/chat.postMessage"

// SlackNotifier implements Notifier via the Slack chat.postMessage API.
type SlackNotifier struct {
	token  string
	apiURL string
	client *http.Client
}

// NewSlackNotifier creates a new SlackNotifier with the given bot token.
func NewSlackNotifier(token string, opts ...SlackOption) *SlackNotifier {
	s := &SlackNotifier{
		token:  token,
		apiURL: defaultSlackAPIURL,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SlackOption configures a SlackNotifier.
type SlackOption func(*SlackNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) SlackOption {
	return func(s *SlackNotifier) {
		s.client = c
	}
}

// WithAPIURL overrides the chat.postMessage endpoint.
func WithAPIURL(u string) SlackOption {
	return func(s *SlackNotifier) {
		s.apiURL = u
	}
}

// slackMessage is the chat.postMessage request body.
type slackMessage struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// slackResponse is the subset of the Slack API response we inspect.
// Slack reports API-level failures with a 200 status and ok=false.
type slackResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Send posts a message to the given channel and treats anything short of
// an ok=true acknowledgment as a delivery failure.
func (s *SlackNotifier) Send(ctx context.Context, channelID, text string) error {
	body, err := json.Marshal(slackMessage{Channel: channelID, Text: text})
	if err != nil {
		return fmt.Errorf("marshaling slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.apiURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("slack rate limited (429)")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("slack returned %d", resp.StatusCode)
	}

	var parsed slackResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decoding slack response: %w", err)
	}
	if !parsed.OK {
		if parsed.Error == "" {
			parsed.Error = "unknown_error"
		}
		return fmt.Errorf("slack API error: %s", parsed.Error)
	}

	return nil
}
