package backstory

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	"github.com/KirkDiggler/backstory-bot-discord/internal/services/attribute"
)

type AttributeHandler struct {
	attributeService attribute.Service
}

type AttributeHandlerConfig struct {
	AttributeService attribute.Service
}

func NewAttributeHandler(cfg *AttributeHandlerConfig) *AttributeHandler {
	return &AttributeHandler{
		attributeService: cfg.AttributeService,
	}
}

type AttributeRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	TableKey    string
	Value       string
	Modifier    *int
}

func (h *AttributeHandler) Handle(req *AttributeRequest) error {
	opts := &attribute.ResolveOptions{
		RollModifier: req.Modifier,
	}
	if req.Value != "" {
		opts.Fetch = req.Value
	}

	attr, err := h.attributeService.Resolve(context.Background(), req.TableKey, opts)
	if err != nil {
		return respondError(req.Session, req.Interaction, err)
	}

	return respondEmbed(req.Session, req.Interaction, BuildAttributeEmbed(attr))
}

// BuildAttributeEmbed renders a single resolved attribute.
func BuildAttributeEmbed(attr *entities.Attribute) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       displayName(attr.TableKey),
		Description: attr.String(),
		Color:       embedColor,
	}

	if attr.RollResult != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Roll",
			Value: fmt.Sprintf("rolled %s", attr.RollResult),
		})
	}

	return embed
}
