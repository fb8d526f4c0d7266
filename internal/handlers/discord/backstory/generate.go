package backstory

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	backstorysvc "github.com/KirkDiggler/backstory-bot-discord/internal/services/backstory"
)

type GenerateHandler struct {
	backstoryService backstorysvc.Service
}

type GenerateHandlerConfig struct {
	BackstoryService backstorysvc.Service
}

func NewGenerateHandler(cfg *GenerateHandlerConfig) *GenerateHandler {
	return &GenerateHandler{
		backstoryService: cfg.BackstoryService,
	}
}

type GenerateRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Modifier    *int
}

func (h *GenerateHandler) Handle(req *GenerateRequest) error {
	userID := interactionUserID(req.Interaction)
	if userID == "" {
		return respondError(req.Session, req.Interaction, fmt.Errorf("missing user on interaction"))
	}

	result, err := h.backstoryService.Generate(context.Background(), userID, &backstorysvc.GenerateOptions{
		RollModifier: req.Modifier,
	})
	if err != nil {
		return respondError(req.Session, req.Interaction, err)
	}

	return respondEmbed(req.Session, req.Interaction, BuildBackstoryEmbed(result))
}

// BuildBackstoryEmbed renders a saved backstory, one field per attribute.
func BuildBackstoryEmbed(backstory *entities.Backstory) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Your Backstory",
		Color: embedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("ID: %s", backstory.ID),
		},
	}

	for _, attr := range backstory.Attributes {
		value := attr.String()
		if attr.RollResult != nil {
			value = fmt.Sprintf("%s\n*rolled %s*", value, attr.RollResult)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  displayName(attr.TableKey),
			Value: value,
		})
	}

	return embed
}
