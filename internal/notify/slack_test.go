package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackNotifier_Send(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    string
	}{
		{
			name:       "delivered",
			statusCode: http.StatusOK,
			body:       `{"ok": true}`,
		},
		{
			name:       "api-level failure with 200",
			statusCode: http.StatusOK,
			body:       `{"ok": false, "error": "channel_not_found"}`,
			wantErr:    "channel_not_found",
		},
		{
			name:       "api-level failure without error text",
			statusCode: http.StatusOK,
			body:       `{"ok": false}`,
			wantErr:    "unknown_error",
		},
		{
			name:       "rate limited",
			statusCode: http.StatusTooManyRequests,
			body:       `{}`,
			wantErr:    "rate limited",
		},
		{
			name:       "server error",
			statusCode: http.StatusBadGateway,
			body:       `{}`,
			wantErr:    "slack returned 502",
		},
		{
			name:       "invalid response body",
			statusCode: http.StatusOK,
			body:       `not json`,
			wantErr:    "decoding slack response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer xoxb-test", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var msg slackMessage
				require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
				assert.Equal(t, "C123", msg.Channel)
				assert.Equal(t, "Price Change! Rival Desk is now $450.00.", msg.Text)

				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			n := NewSlackNotifier("xoxb-test", WithAPIURL(srv.URL))
			err := n.Send(context.Background(), "C123", "Price Change! Rival Desk is now $450.00.")

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSlackNotifier_Send_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	n := NewSlackNotifier("xoxb-test", WithAPIURL(srv.URL))
	err := n.Send(context.Background(), "C123", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending slack message")
}
