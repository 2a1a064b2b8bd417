/* bot.go
 * Contains logic used for creating the bot and parsing commands. Requires a discord bot token, and APIPtr both of
 * which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"

	"scouting-bot/api/api"
)

// Discord rejects messages longer than this
const maxMessageLength = 2000

// commandTimeout bounds the db work done for a single command
const commandTimeout = 10 * time.Second

// DiscordSession is the part of *discordgo.Session the handlers use, so they can be tested with a mock
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ DiscordSession = (*discordgo.Session)(nil)

type Bot struct {
	BotToken string
	APIPtr   *api.API
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
	}, nil
}

// parseCommand splits a message into its command and arguments. Arguments wrapped in double quotes (including the
// curly quotes some keyboards insert) are kept together, e.g. `$search "fast cycler"`
// Preconditions: Receives the raw message content
// Postconditions: Returns the lower case command (e.g. "$team") and its arguments with quotes removed, or an error if
// the quotes are unbalanced
func parseCommand(content string) (string, []string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return "", nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return "", nil, err
	}

	var fields []string
	for _, part := range parts {
		// Repeated spaces produce empty parts
		if part == "" {
			continue
		}
		fields = append(fields, strings.Trim(part, "\"“”"))
	}
	if len(fields) == 0 {
		return "", nil, nil
	}
	return strings.ToLower(fields[0]), fields[1:], nil
}

// splitMessage breaks a response into chunks Discord will accept, splitting on line breaks where possible
func splitMessage(content string) []string {
	if len(content) <= maxMessageLength {
		return []string{content}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(content, "\n") {
		for len(line) > maxMessageLength {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, line[:maxMessageLength])
			line = line[maxMessageLength:]
		}
		if current.Len()+len(line) > maxMessageLength {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
