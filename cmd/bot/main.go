package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/backstory-bot-discord/internal/clients/dnd5e"
	"github.com/KirkDiggler/backstory-bot-discord/internal/config"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	"github.com/KirkDiggler/backstory-bot-discord/internal/handlers/discord"
	"github.com/KirkDiggler/backstory-bot-discord/internal/repositories/backstories"
	"github.com/KirkDiggler/backstory-bot-discord/internal/repositories/tables"
	"github.com/KirkDiggler/backstory-bot-discord/internal/services"
	"github.com/KirkDiggler/backstory-bot-discord/internal/tabledata"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Bot Token: %s...%s", cfg.Discord.Token[:8], cfg.Discord.Token[len(cfg.Discord.Token)-4:])
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	// Load the backstory tables
	var tableSet []*entities.Table
	if cfg.Tables.Path != "" {
		log.Printf("Loading tables from: %s", cfg.Tables.Path)
		tableSet, err = tabledata.LoadFromFile(cfg.Tables.Path)
	} else {
		tableSet, err = tabledata.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load tables: %v", err)
	}
	log.Printf("Loaded %d tables", len(tableSet))

	// Optionally refresh race and class tables from the D&D 5e API
	if cfg.DND5E.Enabled {
		dndClient, clientErr := dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: 30 * time.Second,
			},
		})
		if clientErr != nil {
			log.Printf("Failed to create D&D 5e client: %v", clientErr)
			log.Println("Keeping the embedded race and class tables")
		} else if enrichErr := tabledata.EnrichFromAPI(tableSet, dndClient); enrichErr != nil {
			log.Printf("Failed to refresh tables from the D&D 5e API: %v", enrichErr)
			log.Println("Keeping the embedded race and class tables")
		} else {
			log.Println("Refreshed race and class tables from the D&D 5e API")
		}
	}

	// Create service provider config
	providerConfig := &services.ProviderConfig{
		TableRepository: tables.NewInMemoryRepository(tableSet),
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		log.Printf("Connecting to Redis at: %s", redisURL)

		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory storage")
		} else {
			redisClient = redis.NewClient(opts)

			// Test connection
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
				cancel()
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory storage")
			} else {
				defer cancel()
				log.Println("Successfully connected to Redis")

				redisRepo, repoErr := backstories.NewRedisRepository(&backstories.RedisRepoConfig{
					Client: redisClient,
				})
				if repoErr != nil {
					log.Fatalf("Failed to create Redis repository: %v", repoErr)
				}
				providerConfig.BackstoryRepository = redisRepo

				log.Println("Using Redis for persistence")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory storage")
	}

	// Create service provider
	serviceProvider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
	})

	// Register interaction handler
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Register commands
	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
