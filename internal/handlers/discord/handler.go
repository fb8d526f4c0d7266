package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	backstoryhandler "github.com/KirkDiggler/backstory-bot-discord/internal/handlers/discord/backstory"
	"github.com/KirkDiggler/backstory-bot-discord/internal/services"
)

type Handler struct {
	ServiceProvider *services.Provider

	generateHandler  *backstoryhandler.GenerateHandler
	attributeHandler *backstoryhandler.AttributeHandler
	outcomesHandler  *backstoryhandler.OutcomesHandler
	listHandler      *backstoryhandler.ListHandler
}

type HandlerConfig struct {
	ServiceProvider *services.Provider
}

func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		generateHandler: backstoryhandler.NewGenerateHandler(&backstoryhandler.GenerateHandlerConfig{
			BackstoryService: cfg.ServiceProvider.BackstoryService,
		}),
		attributeHandler: backstoryhandler.NewAttributeHandler(&backstoryhandler.AttributeHandlerConfig{
			AttributeService: cfg.ServiceProvider.AttributeService,
		}),
		outcomesHandler: backstoryhandler.NewOutcomesHandler(&backstoryhandler.OutcomesHandlerConfig{
			AttributeService: cfg.ServiceProvider.AttributeService,
		}),
		listHandler: backstoryhandler.NewListHandler(&backstoryhandler.ListHandlerConfig{
			BackstoryService: cfg.ServiceProvider.BackstoryService,
		}),
	}
}

// RegisterCommands registers the backstory slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "backstory",
			Description: "Generate character backstory details from random tables",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "generate",
					Description: "Roll a full backstory and save it",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "modifier",
							Description: "Modifier applied to rolls that support one",
							Type:        discordgo.ApplicationCommandOptionInteger,
							Required:    false,
						},
					},
				},
				{
					Name:        "attribute",
					Description: "Roll or look up a single backstory attribute",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "table",
							Description: "Table to roll on (e.g. family-lifestyle)",
							Type:        discordgo.ApplicationCommandOptionString,
							Required:    true,
						},
						{
							Name:        "value",
							Description: "Fetch a specific outcome instead of rolling",
							Type:        discordgo.ApplicationCommandOptionString,
							Required:    false,
						},
						{
							Name:        "modifier",
							Description: "Modifier applied to the roll",
							Type:        discordgo.ApplicationCommandOptionInteger,
							Required:    false,
						},
					},
				},
				{
					Name:        "outcomes",
					Description: "List the possible outcomes of a table",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "table",
							Description: "Table to list (e.g. childhood-home)",
							Type:        discordgo.ApplicationCommandOptionString,
							Required:    true,
						},
					},
				},
				{
					Name:        "list",
					Description: "Show your saved backstories",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
	}

	return nil
}

// HandleInteraction handles Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "backstory" {
		return
	}

	if len(data.Options) == 0 {
		return
	}

	subcommand := data.Options[0]

	var err error
	switch subcommand.Name {
	case "generate":
		req := &backstoryhandler.GenerateRequest{
			Session:     s,
			Interaction: i,
		}
		for _, opt := range subcommand.Options {
			if opt.Name == "modifier" {
				mod := int(opt.IntValue())
				req.Modifier = &mod
			}
		}
		err = h.generateHandler.Handle(req)
	case "attribute":
		req := &backstoryhandler.AttributeRequest{
			Session:     s,
			Interaction: i,
		}
		for _, opt := range subcommand.Options {
			switch opt.Name {
			case "table":
				req.TableKey = opt.StringValue()
			case "value":
				req.Value = opt.StringValue()
			case "modifier":
				mod := int(opt.IntValue())
				req.Modifier = &mod
			}
		}
		err = h.attributeHandler.Handle(req)
	case "outcomes":
		req := &backstoryhandler.OutcomesRequest{
			Session:     s,
			Interaction: i,
		}
		for _, opt := range subcommand.Options {
			if opt.Name == "table" {
				req.TableKey = opt.StringValue()
			}
		}
		err = h.outcomesHandler.Handle(req)
	case "list":
		err = h.listHandler.Handle(&backstoryhandler.ListRequest{
			Session:     s,
			Interaction: i,
		})
	}

	if err != nil {
		log.Printf("Error handling command %s %s: %v", data.Name, subcommand.Name, err)
	}
}
