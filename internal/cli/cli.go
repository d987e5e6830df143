package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slackpaste/internal/chat"
	"slackpaste/internal/config"
	"slackpaste/internal/logging"
)

// Options carry the collaborators a CLI uses. Nil fields fall back to the
// production implementations.
type Options struct {
	Client   chat.Client
	Prompter Prompter
	Logger   *zap.Logger
	Version  string
}

// CLI routes subcommands to the init and paste flows.
type CLI struct {
	in   io.Reader
	out  io.Writer
	err  io.Writer
	opts Options

	configPath string
	verbose    bool
	log        *zap.Logger
}

func New(in io.Reader, out io.Writer, err io.Writer, opts Options) *CLI {
	return &CLI{in: in, out: out, err: err, opts: opts, log: zap.NewNop()}
}

// Main runs args, reports any error on stderr and returns the exit status.
func (c *CLI) Main(ctx context.Context, args []string) int {
	err := c.Run(ctx, args)
	if err != nil {
		fmt.Fprintf(c.stderr(), "%s: %v\n", config.AppName, err)
	}
	return ExitCode(err)
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	root := c.command()
	root.SetArgs(args)
	root.SetIn(c.stdin())
	root.SetOut(c.stdout())
	root.SetErr(c.stderr())
	return root.ExecuteContext(ctx)
}

func (c *CLI) command() *cobra.Command {
	defaultPath, defaultErr := config.DefaultPath()

	version := c.opts.Version
	if version == "" {
		version = "dev"
	}

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Paste standard input to a Slack channel or user",
		Long:          "slack-paste relays everything read from standard input to Slack as a preformatted message.",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.setupLogger()
			if c.configPath == "" && cmd.HasParent() {
				if defaultErr != nil {
					return fmt.Errorf("%w: no config path (%v); use --config to set one", ErrUsage, defaultErr)
				}
				return fmt.Errorf("%w: no config path; use --config to set one", ErrUsage)
			}
			c.log.Debug("config path resolved", zap.String("path", c.configPath))
			return nil
		},
		RunE: c.runRoot,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpCommand(helpCommand(root))
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", defaultPath, "The location of the config file.")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Log debug output to stderr.")

	root.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Initialize slack app credentials",
			Args:  noArgs,
			RunE:  c.runInit,
		},
		&cobra.Command{
			Use:   "paste DESTINATION",
			Short: "Paste the contents of stdin to slack",
			Long: `Paste the contents of stdin to slack.

DESTINATION is the slack user or channel that should receive the paste.`,
			Args: exactlyOneDestination,
			RunE: c.runPaste,
		},
	)
	return root
}

// runRoot handles invocations that name no known subcommand.
func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w %q", ErrUnknownCommand, args[0])
	}
	cmd.SetOut(c.stderr())
	if err := cmd.Help(); err != nil {
		return err
	}
	return ErrNoCommand
}

// helpCommand replaces cobra's default help so unknown topics fail like
// unknown commands.
func helpCommand(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, rest, err := root.Find(args)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			if len(rest) > 0 {
				return fmt.Errorf("%w %q", ErrUnknownCommand, rest[0])
			}
			target.SetOut(cmd.OutOrStdout())
			return target.Help()
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %q", ErrUsage, cmd.Name(), args)
	}
	return nil
}

func exactlyOneDestination(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: paste takes exactly one DESTINATION, got %d arguments", ErrUsage, len(args))
	}
	return nil
}

func (c *CLI) setupLogger() {
	if c.opts.Logger != nil {
		c.log = c.opts.Logger
		return
	}
	c.log = logging.New(c.stderr(), c.verbose)
}

func (c *CLI) client() chat.Client {
	if c.opts.Client != nil {
		return c.opts.Client
	}
	return chat.NewSlackClient(chat.SlackOptions{Logger: c.log})
}

func (c *CLI) prompter() Prompter {
	if c.opts.Prompter != nil {
		return c.opts.Prompter
	}
	return newPrompter(c.stdin(), c.stdout())
}

func (c *CLI) stdin() io.Reader {
	if c.in != nil {
		return c.in
	}
	return bytes.NewReader(nil)
}

func (c *CLI) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return io.Discard
}

func (c *CLI) stderr() io.Writer {
	if c.err != nil {
		return c.err
	}
	return io.Discard
}
