/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"scouting-bot/api/api"
	"scouting-bot/api/match"
	"scouting-bot/api/store"
)

// send posts a response to the channel, splitting it if it is too long for a single message
func send(session DiscordSession, channelID string, content string) {
	for _, chunk := range splitMessage(content) {
		if _, err := session.ChannelMessageSend(channelID, chunk); err != nil {
			log.WithError(err).WithField("channel", channelID).Error("failed to send message")
			return
		}
	}
}

// userError converts an error from the api into a message that can be shown to the user. Validation errors are safe
// to show as is, anything else is logged and replaced with a generic message
func userError(err error, action string) string {
	var validationErr *match.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("Invalid input: %s", validationErr.Error())
	}
	log.WithError(err).Error(action)
	return fmt.Sprintf("An error occurred %s", action)
}

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Scouting Bot v1.0\n")
	res.WriteString("`$info`: Get information about the event including the season and how many entries and teams have been scouted\n")
	res.WriteString("`$match <match> <team>`: shows the scores of a scouted entry, e.g. `$match SF1-2 8644`. Match codes are Q<n>, SF<1|2>-<n> or F<n>\n")
	res.WriteString("`$team <team>`: shows a team's averages, rank, how it compares to the rest of the event and every match it was scouted in\n")
	res.WriteString("`$overview`: shows every scouted team's average auto, teleop, endgame and total\n")
	res.WriteString("`$rank`: shows the teams ranked by average total score. Teams with the same average share a rank\n")
	res.WriteString("`$favorite add|remove <team>`: adds or removes a favorite team. Favorites are marked with ⭐\n")
	res.WriteString("`$favorites`: shows the favorite teams\n")
	res.WriteString("`$search \"<text>\"`: searches scout remarks, there is fuzzy matching so you can leave out letters. Text with spaces needs to be encased in \" (e.g. \"fast cycler\")\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// infoHandler handles the $info command with a DiscordSession interface
func (b *Bot) infoHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	info, err := b.APIPtr.EventInfo(ctx)
	if err != nil {
		send(session, message.ChannelID, userError(err, "getting the event info"))
		return
	}
	var res strings.Builder
	for i := range info {
		res.WriteString(fmt.Sprintf("%s\n", info[i]))
	}
	send(session, message.ChannelID, res.String())
}

// matchHandler handles the $match command with a DiscordSession interface
func (b *Bot) matchHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) != 2 {
		send(session, message.ChannelID, "Usage: `$match <match> <team>`, e.g. `$match Q12 8644`")
		return
	}
	matchCode := strings.ToUpper(args[0])
	team, err := match.ParseTeamNumber(args[1])
	if err != nil {
		send(session, message.ChannelID, userError(err, "reading the team number"))
		return
	}

	res, err := b.APIPtr.EntrySummary(ctx, matchCode, team)
	if err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			res = fmt.Sprintf("Team %d has not been scouted in %s", team, matchCode)
		} else {
			res = userError(err, "getting the entry")
		}
	}
	send(session, message.ChannelID, res)
}

// teamHandler handles the $team command with a DiscordSession interface
func (b *Bot) teamHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) != 1 {
		send(session, message.ChannelID, "Usage: `$team <team>`, e.g. `$team 8644`")
		return
	}
	team, err := match.ParseTeamNumber(args[0])
	if err != nil {
		send(session, message.ChannelID, userError(err, "reading the team number"))
		return
	}

	res, err := b.APIPtr.TeamSummary(ctx, team)
	if err != nil {
		if errors.Is(err, api.ErrNoEntries) {
			res = fmt.Sprintf("Team %d has not been scouted yet", team)
		} else {
			res = userError(err, "getting the team report")
		}
	}
	send(session, message.ChannelID, res)
}

// overviewHandler handles the $overview command with a DiscordSession interface
func (b *Bot) overviewHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.OverviewSummary(ctx)
	if err != nil {
		if errors.Is(err, api.ErrNoEntries) {
			res = "No entries have been scouted yet"
		} else {
			res = userError(err, "getting the overview")
		}
	}
	send(session, message.ChannelID, res)
}

// rankHandler handles the $rank command with a DiscordSession interface
func (b *Bot) rankHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.RankingsSummary(ctx)
	if err != nil {
		if errors.Is(err, api.ErrNoEntries) {
			res = "No entries have been scouted yet"
		} else {
			res = userError(err, "getting the rankings")
		}
	}
	send(session, message.ChannelID, res)
}

// favoriteHandler handles the $favorite add|remove command with a DiscordSession interface
func (b *Bot) favoriteHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	usage := "Usage: `$favorite add <team>` or `$favorite remove <team>`"
	if len(args) != 2 {
		send(session, message.ChannelID, usage)
		return
	}
	team, err := match.ParseTeamNumber(args[1])
	if err != nil {
		send(session, message.ChannelID, userError(err, "reading the team number"))
		return
	}

	var res string
	switch strings.ToLower(args[0]) {
	case "add":
		err = b.APIPtr.AddFavorite(ctx, team)
		res = fmt.Sprintf("Team %d has been added to the favorites", team)
	case "remove":
		err = b.APIPtr.RemoveFavorite(ctx, team)
		res = fmt.Sprintf("Team %d has been removed from the favorites", team)
	default:
		send(session, message.ChannelID, usage)
		return
	}
	if err != nil {
		res = userError(err, "updating the favorites")
	}
	send(session, message.ChannelID, res)
}

// favoritesHandler handles the $favorites command with a DiscordSession interface
func (b *Bot) favoritesHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.FavoritesSummary(ctx)
	if err != nil {
		res = userError(err, "getting the favorites")
	}
	send(session, message.ChannelID, res)
}

// searchHandler handles the $search command with a DiscordSession interface
func (b *Bot) searchHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		send(session, message.ChannelID, "Usage: `$search \"<text>\"`, e.g. `$search \"fast cycler\"`")
		return
	}

	res, err := b.APIPtr.SearchSummary(ctx, strings.Join(args, " "))
	if err != nil {
		res = userError(err, "searching remarks")
	}
	send(session, message.ChannelID, res)
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}
	if !strings.HasPrefix(message.Content, "$") {
		return
	}

	command, args, err := parseCommand(message.Content)
	if err != nil {
		send(session, message.ChannelID, "Could not read that command, check that every \" is closed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	log.WithFields(log.Fields{"command": command, "user": message.Author.Username}).Debug("received command")

	// Route to appropriate handler
	switch command {
	case "$help":
		b.helpMessageHandler(session, message)

	case "$info":
		b.infoHandler(ctx, session, message)

	case "$match":
		b.matchHandler(ctx, session, message, args)

	case "$team":
		b.teamHandler(ctx, session, message, args)

	case "$overview":
		b.overviewHandler(ctx, session, message)

	case "$rank":
		b.rankHandler(ctx, session, message)

	case "$favorite":
		b.favoriteHandler(ctx, session, message, args)

	case "$favorites":
		b.favoritesHandler(ctx, session, message)

	case "$search":
		b.searchHandler(ctx, session, message, args)
	}
}
