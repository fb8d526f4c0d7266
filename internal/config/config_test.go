package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "app-123")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

func TestLoad_RequiresAppID(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_APP_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_APP_ID")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_APP_ID", "app-123")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("TABLES_PATH", "")
	t.Setenv("DND5E_API_ENABLED", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Empty(t, cfg.Tables.Path)
	assert.False(t, cfg.DND5E.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_APP_ID", "app-123")
	t.Setenv("DISCORD_GUILD_ID", "guild-456")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TABLES_PATH", "/etc/backstory/tables.json")
	t.Setenv("DND5E_API_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "guild-456", cfg.Discord.GuildID)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "/etc/backstory/tables.json", cfg.Tables.Path)
	assert.True(t, cfg.DND5E.Enabled)
}
