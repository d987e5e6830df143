package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slackpaste/internal/chat"
	"slackpaste/internal/config"
)

// runPaste loads the credential before touching stdin, so a broken config
// never consumes piped input.
func (c *CLI) runPaste(cmd *cobra.Command, args []string) error {
	destination := args[0]

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.log.Debug("config loaded", zap.String("path", c.configPath))

	buf, err := io.ReadAll(c.stdin())
	if err != nil {
		return fmt.Errorf("%w: stdin: %w", ErrInputRead, err)
	}
	c.log.Debug("input captured", zap.Int("bytes", len(buf)))

	ctx := cmd.Context()
	if err := ctx.Err(); err != nil {
		return err
	}

	content := chat.Render(string(buf))

	session, err := c.client().Open(cfg.SlackToken)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	return session.Send(ctx, destination, content)
}
