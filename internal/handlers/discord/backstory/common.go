package backstory

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
)

const embedColor = 0x8a2be2

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: userMessage(err),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// displayName turns a table key like "family-lifestyle" into "Family Lifestyle".
func displayName(key string) string {
	words := strings.Split(key, "-")
	for idx, word := range words {
		if word == "" {
			continue
		}
		words[idx] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// userMessage turns a service error into something safe to show in channel.
func userMessage(err error) string {
	switch {
	case bserr.IsUnknownTable(err):
		return fmt.Sprintf("I don't know that table. %s Try `/backstory outcomes` with one of the standard tables.", err.Error())
	case bserr.IsRowNotFound(err):
		return fmt.Sprintf("No matching outcome: %s", err.Error())
	case bserr.IsInvalidDiceExpression(err):
		return fmt.Sprintf("That roll didn't parse: %s", err.Error())
	default:
		return "Something went wrong rolling that up. Try again in a moment."
	}
}
