package chat

import (
	"context"
	"fmt"
	"net/http"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"slackpaste/internal/config"
)

// SlackOptions configure a SlackClient. The zero value talks to slack.com
// with the default HTTP client.
type SlackOptions struct {
	APIURL     string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// SlackClient is the Client backed by the Slack Web API.
type SlackClient struct {
	opts SlackOptions
}

func NewSlackClient(opts SlackOptions) *SlackClient {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &SlackClient{opts: opts}
}

// Open binds token to a session. The token is not checked until the first
// request reaches Slack.
func (c *SlackClient) Open(token string) (Session, error) {
	if token == "" {
		return nil, fmt.Errorf("open slack session: %w", config.ErrEmptyToken)
	}

	var options []slack.Option
	if c.opts.APIURL != "" {
		options = append(options, slack.OptionAPIURL(c.opts.APIURL))
	}
	if c.opts.HTTPClient != nil {
		options = append(options, slack.OptionHTTPClient(c.opts.HTTPClient))
	}

	return &slackSession{api: slack.New(token, options...), log: c.opts.Logger}, nil
}

type slackSession struct {
	api *slack.Client
	log *zap.Logger
}

// Send posts content to destination with a single chat.postMessage call.
func (s *slackSession) Send(ctx context.Context, destination string, content Content) error {
	channel, ts, err := s.api.PostMessageContext(ctx, destination,
		slack.MsgOptionText(content.Markdown(), false),
		slack.MsgOptionBlocks(content.Blocks()...),
	)
	if err != nil {
		return &DeliveryError{Destination: destination, Err: err}
	}
	s.log.Debug("message posted",
		zap.String("destination", destination),
		zap.String("channel", channel),
		zap.String("ts", ts),
		zap.Int("bytes", len(content.Text)),
	)
	return nil
}
