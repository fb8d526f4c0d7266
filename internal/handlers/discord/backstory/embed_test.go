package backstory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/backstory-bot-discord/internal/dice"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "race", want: "Race"},
		{key: "family-lifestyle", want: "Family Lifestyle"},
		{key: "childhood-home", want: "Childhood Home"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.key))
		})
	}
}

func TestBuildAttributeEmbed(t *testing.T) {
	attr := &entities.Attribute{
		TableKey: "family-lifestyle",
		Value:    "Comfortable",
		RollResult: &dice.RollResult{
			Total: 73,
			Rolls: []int{73},
			Count: 1,
			Sides: 100,
		},
	}

	embed := BuildAttributeEmbed(attr)

	assert.Equal(t, "Family Lifestyle", embed.Title)
	assert.Equal(t, "Comfortable", embed.Description)
	assert.Len(t, embed.Fields, 1)
	assert.Equal(t, "rolled 73 on 1d100 [73]", embed.Fields[0].Value)
}

func TestBuildAttributeEmbed_NoRoll(t *testing.T) {
	attr := &entities.Attribute{
		TableKey: "race",
		Value:    "Dwarf",
	}

	embed := BuildAttributeEmbed(attr)

	assert.Equal(t, "Dwarf", embed.Description)
	assert.Empty(t, embed.Fields)
}

func TestBuildBackstoryEmbed(t *testing.T) {
	backstory := &entities.Backstory{
		ID: "backstory-123",
		Attributes: []*entities.Attribute{
			{TableKey: "race", Value: "Elf"},
			{
				TableKey: "family-lifestyle",
				Value:    "Wealthy",
				RollResult: &dice.RollResult{
					Total: 92,
					Rolls: []int{92},
					Count: 1,
					Sides: 100,
				},
			},
		},
	}

	embed := BuildBackstoryEmbed(backstory)

	assert.Equal(t, "ID: backstory-123", embed.Footer.Text)
	assert.Len(t, embed.Fields, 2)
	assert.Equal(t, "Race", embed.Fields[0].Name)
	assert.Equal(t, "Elf", embed.Fields[0].Value)
	assert.Contains(t, embed.Fields[1].Value, "rolled 92 on 1d100")
}

func TestBuildOutcomesEmbed(t *testing.T) {
	embed := BuildOutcomesEmbed("family-lifestyle", []string{"Wretched", "Squalid", "Poor"})

	assert.Equal(t, "Family Lifestyle Outcomes", embed.Title)
	assert.Contains(t, embed.Description, "• Wretched\n")
	assert.Contains(t, embed.Description, "• Poor\n")
	assert.Equal(t, "3 outcomes", embed.Footer.Text)
}

func TestBuildListEmbed(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		embed := BuildListEmbed(nil)
		assert.Contains(t, embed.Description, "no saved backstories")
	})

	t.Run("with entries", func(t *testing.T) {
		backstories := []*entities.Backstory{
			{
				ID: "backstory-1",
				Attributes: []*entities.Attribute{
					{TableKey: "race", Value: "Human"},
					{TableKey: "class", Value: "Wizard"},
				},
				CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			},
		}

		embed := BuildListEmbed(backstories)

		assert.Len(t, embed.Fields, 1)
		assert.Contains(t, embed.Fields[0].Value, "Human Wizard")
		assert.Contains(t, embed.Fields[0].Value, "backstory-1")
	})
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unknown table",
			err:  bserr.UnknownTablef("table not found: nope"),
			want: "I don't know that table",
		},
		{
			name: "row not found",
			err:  bserr.RowNotFoundf("no row matches total 101"),
			want: "No matching outcome",
		},
		{
			name: "invalid dice",
			err:  bserr.InvalidDiceExpressionf("invalid dice expression: banana"),
			want: "That roll didn't parse",
		},
		{
			name: "internal",
			err:  bserr.Internalf("redis down"),
			want: "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, userMessage(tt.err), tt.want)
		})
	}
}
