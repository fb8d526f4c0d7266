package backstory

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/backstory-bot-discord/internal/services/attribute"
)

type OutcomesHandler struct {
	attributeService attribute.Service
}

type OutcomesHandlerConfig struct {
	AttributeService attribute.Service
}

func NewOutcomesHandler(cfg *OutcomesHandlerConfig) *OutcomesHandler {
	return &OutcomesHandler{
		attributeService: cfg.AttributeService,
	}
}

type OutcomesRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	TableKey    string
}

func (h *OutcomesHandler) Handle(req *OutcomesRequest) error {
	outcomes, err := h.attributeService.ListOutcomes(context.Background(), req.TableKey)
	if err != nil {
		return respondError(req.Session, req.Interaction, err)
	}

	return respondEmbed(req.Session, req.Interaction, BuildOutcomesEmbed(req.TableKey, outcomes))
}

// BuildOutcomesEmbed renders a table's possible outcomes as a bulleted list.
func BuildOutcomesEmbed(tableKey string, outcomes []string) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, outcome := range outcomes {
		sb.WriteString(fmt.Sprintf("• %s\n", outcome))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Outcomes", displayName(tableKey)),
		Description: sb.String(),
		Color:       embedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d outcomes", len(outcomes)),
		},
	}
}
