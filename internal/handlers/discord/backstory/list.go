package backstory

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	backstorysvc "github.com/KirkDiggler/backstory-bot-discord/internal/services/backstory"
)

type ListHandler struct {
	backstoryService backstorysvc.Service
}

type ListHandlerConfig struct {
	BackstoryService backstorysvc.Service
}

func NewListHandler(cfg *ListHandlerConfig) *ListHandler {
	return &ListHandler{
		backstoryService: cfg.BackstoryService,
	}
}

type ListRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
}

func (h *ListHandler) Handle(req *ListRequest) error {
	userID := interactionUserID(req.Interaction)
	if userID == "" {
		return respondError(req.Session, req.Interaction, fmt.Errorf("missing user on interaction"))
	}

	backstories, err := h.backstoryService.ListByOwner(context.Background(), userID)
	if err != nil {
		return respondError(req.Session, req.Interaction, err)
	}

	return respondEmbed(req.Session, req.Interaction, BuildListEmbed(backstories))
}

// BuildListEmbed renders one line per saved backstory, newest details first in each line.
func BuildListEmbed(backstories []*entities.Backstory) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Saved Backstories",
		Color: embedColor,
	}

	if len(backstories) == 0 {
		embed.Description = "You have no saved backstories yet. Try `/backstory generate`."
		return embed
	}

	for _, bs := range backstories {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  bs.CreatedAt.Format("Jan 2, 2006 15:04"),
			Value: fmt.Sprintf("%s\n`%s`", summarize(bs), bs.ID),
		})
	}

	return embed
}

func summarize(bs *entities.Backstory) string {
	race := bs.Attribute("race")
	class := bs.Attribute("class")
	if race == nil || class == nil {
		return fmt.Sprintf("%d attributes", len(bs.Attributes))
	}
	return fmt.Sprintf("%s %s", race.Value, class.Value)
}
