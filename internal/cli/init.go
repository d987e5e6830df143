package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slackpaste/internal/config"
)

const tokenPrompt = "Please input the slack token: "

func (c *CLI) runInit(_ *cobra.Command, _ []string) error {
	path := c.configPath

	if err := config.EnsureDir(path); err != nil {
		return err
	}

	token, err := c.prompter().Prompt(tokenPrompt)
	if err != nil {
		return fmt.Errorf("read slack token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return config.ErrEmptyToken
	}

	if err := config.Save(path, config.Config{SlackToken: token}); err != nil {
		return err
	}
	c.log.Debug("config saved", zap.String("path", path))

	fmt.Fprintf(c.stdout(), "Config written to: %s\n", path)
	return nil
}
