package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"slackpaste/internal/chat"
	"slackpaste/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type sentMessage struct {
	token       string
	destination string
	content     chat.Content
}

// fakeClient records sessions and sends instead of talking to Slack.
type fakeClient struct {
	opened  []string
	sent    []sentMessage
	sendErr error
}

func (f *fakeClient) Open(token string) (chat.Session, error) {
	f.opened = append(f.opened, token)
	return &fakeSession{client: f, token: token}, nil
}

type fakeSession struct {
	client *fakeClient
	token  string
}

func (s *fakeSession) Send(_ context.Context, destination string, content chat.Content) error {
	s.client.sent = append(s.client.sent, sentMessage{token: s.token, destination: destination, content: content})
	if s.client.sendErr != nil {
		return &chat.DeliveryError{Destination: destination, Err: s.client.sendErr}
	}
	return nil
}

// countingReader records how often stdin was read.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

type harness struct {
	cli    *CLI
	client *fakeClient
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T, stdin io.Reader, opts Options) *harness {
	t.Helper()
	t.Setenv(config.PathEnv, filepath.Join(t.TempDir(), "default", "config.yaml"))

	h := &harness{client: &fakeClient{}, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	if opts.Client == nil {
		opts.Client = h.client
	}
	h.cli = New(stdin, h.stdout, h.stderr, opts)
	return h
}

func (h *harness) run(args ...string) error {
	return h.cli.Run(context.Background(), args)
}

func writeConfig(t *testing.T, token string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Save(path, config.Config{SlackToken: token}))
	return path
}

func TestRun_NoCommand(t *testing.T) {
	h := newHarness(t, strings.NewReader(""), Options{})

	code := h.cli.Main(context.Background(), nil)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, h.stderr.String(), "Usage:")
	assert.Contains(t, h.stderr.String(), "paste")
	assert.Contains(t, h.stderr.String(), "no command given")
	assert.Empty(t, h.stdout.String())
	assert.ErrorIs(t, h.run(), ErrNoCommand)
}

func TestRun_UnknownCommand(t *testing.T) {
	h := newHarness(t, strings.NewReader(""), Options{})

	err := h.run("bogus")

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.NotErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, err.Error(), `unknown command "bogus"`)
	assert.Equal(t, exitUsage, ExitCode(err))
}

func TestRun_Version(t *testing.T) {
	h := newHarness(t, strings.NewReader(""), Options{Version: "1.2.3"})

	require.NoError(t, h.run("--version"))

	assert.Contains(t, h.stdout.String(), "slack-paste version 1.2.3")
}

func TestRun_BadFlag(t *testing.T) {
	h := newHarness(t, strings.NewReader(""), Options{})

	err := h.run("--nope")

	require.ErrorIs(t, err, ErrUsage)
}

func TestRun_InitRejectsArgs(t *testing.T) {
	h := newHarness(t, strings.NewReader("abc123\n"), Options{})

	err := h.run("init", "extra")

	require.ErrorIs(t, err, ErrUsage)
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"usage", ErrNoCommand, 2},
		{"unknown", ErrUnknownCommand, 2},
		{"config", config.ErrConfigMissing, 1},
		{"delivery", &chat.DeliveryError{Destination: "#x", Err: errors.New("boom")}, 1},
		{"input", ErrInputRead, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestRun_EmptyConfigFlag(t *testing.T) {
	h := newHarness(t, strings.NewReader(""), Options{})

	err := h.run("--config", "", "paste", "#general")

	require.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, "usage error: no config path; use --config to set one", err.Error())
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestRun_HelpTopic(t *testing.T) {
	h := newHarness(t, strings.NewReader(""), Options{})

	require.NoError(t, h.run("help", "paste"))

	assert.Contains(t, h.stdout.String(), "DESTINATION")
}

func TestRun_HelpUnknownTopic(t *testing.T) {
	h := newHarness(t, strings.NewReader(""), Options{})

	code := h.cli.Main(context.Background(), []string{"help", "bogus"})

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, h.stderr.String(), `unknown command "bogus"`)
	assert.ErrorIs(t, h.run("help", "bogus"), ErrUnknownCommand)
}
