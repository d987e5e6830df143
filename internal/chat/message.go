package chat

import (
	"strings"

	"github.com/slack-go/slack"
)

const fence = "```"

// Slack requires these three characters to be sent as entities; clients
// display the original characters.
var entityEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Content is a message ready to be posted: the captured text shown as a
// single preformatted block.
type Content struct {
	Text string
}

// Render wraps text, unmodified, into message content.
func Render(text string) Content {
	return Content{Text: text}
}

// Markdown returns the mrkdwn body for the block: the escaped text inside a
// code fence.
func (c Content) Markdown() string {
	return fence + entityEscaper.Replace(c.Text) + fence
}

// Blocks returns the Block Kit representation of c.
func (c Content) Blocks() []slack.Block {
	text := slack.NewTextBlockObject(slack.MarkdownType, c.Markdown(), false, true)
	return []slack.Block{slack.NewSectionBlock(text, nil, nil)}
}
