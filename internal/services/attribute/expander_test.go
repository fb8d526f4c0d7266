package attribute_test

import (
	"context"
	"fmt"
	"testing"

	mockdice "github.com/KirkDiggler/backstory-bot-discord/internal/dice/mock"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
	"github.com/KirkDiggler/backstory-bot-discord/internal/services/attribute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_PlainTemplateIsUntouched(t *testing.T) {
	table := &entities.Table{
		Key:      "life-event",
		Strategy: entities.SelectionRandom,
		Rows: []*entities.Row{
			{Text: "event", Template: "You survived a harsh winter."},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1})
	svc := newService(t, []*entities.Table{table}, roller)

	attr, err := svc.Resolve(context.Background(), "life-event", nil)

	require.NoError(t, err)
	assert.Equal(t, "You survived a harsh winter.", attr.String())
}

func TestExpand_SubTablePlaceholder(t *testing.T) {
	tableSet := []*entities.Table{
		{
			Key:      "childhood-home",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "home", Template: "Raised by a {{family-lifestyle}} household"},
			},
		},
		{
			Key:      "family-lifestyle",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "wretched"},
			},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, 1})
	svc := newService(t, tableSet, roller)

	attr, err := svc.Resolve(context.Background(), "childhood-home", nil)

	require.NoError(t, err)
	assert.Equal(t, "Raised by a wretched household", attr.String())
}

func TestExpand_NestedSubTables(t *testing.T) {
	tableSet := []*entities.Table{
		{
			Key:      "family",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "family", Template: "Your {{guardian}} raised you"},
			},
		},
		{
			Key:      "guardian",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "guardian", Template: "{{relative}} and their spouse"},
			},
		},
		{
			Key:      "relative",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "aunt"},
			},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, 1, 1})
	svc := newService(t, tableSet, roller)

	attr, err := svc.Resolve(context.Background(), "family", nil)

	require.NoError(t, err)
	assert.Equal(t, "Your aunt and their spouse raised you", attr.String())
}

func TestExpand_DicePlaceholder(t *testing.T) {
	table := &entities.Table{
		Key:      "siblings",
		Strategy: entities.SelectionRandom,
		Rows: []*entities.Row{
			{Text: "siblings", Template: "You have {{1d4}} siblings"},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, 3}) // row pick, then the placeholder roll
	svc := newService(t, []*entities.Table{table}, roller)

	attr, err := svc.Resolve(context.Background(), "siblings", nil)

	require.NoError(t, err)
	assert.Equal(t, "You have 3 siblings", attr.String())
}

func TestExpand_DicePlaceholderWithModifier(t *testing.T) {
	table := &entities.Table{
		Key:      "fortune",
		Strategy: entities.SelectionRandom,
		Rows: []*entities.Row{
			{Text: "fortune", Template: "You inherited {{1d6+MOD}} gold"},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, 4})
	svc := newService(t, []*entities.Table{table}, roller)

	attr, err := svc.Resolve(context.Background(), "fortune", &attribute.ResolveOptions{
		RollModifier: intPtr(-2),
	})

	require.NoError(t, err)
	assert.Equal(t, "You inherited 2 gold", attr.String()) // 4-2
}

func TestExpand_ExtraPlaceholder(t *testing.T) {
	table := &entities.Table{
		Key:      "absent-parent",
		Strategy: entities.SelectionRandom,
		Rows: []*entities.Row{
			{
				Text:     "absent",
				Template: "Your parent {{extra}}",
				ExtraFunc: func(template string) string {
					return fmt.Sprintf("vanished (template %d chars)", len(template))
				},
			},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1})
	svc := newService(t, []*entities.Table{table}, roller)

	attr, err := svc.Resolve(context.Background(), "absent-parent", nil)

	require.NoError(t, err)
	assert.Equal(t, "Your parent vanished (template 21 chars)", attr.String())
}

func TestExpand_ExtraWithoutHandlerIsDiceError(t *testing.T) {
	// No extra-text function: the keyword falls through to dice parsing
	table := &entities.Table{
		Key:      "absent-parent",
		Strategy: entities.SelectionRandom,
		Rows: []*entities.Row{
			{Text: "absent", Template: "Your parent {{extra}}"},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1})
	svc := newService(t, []*entities.Table{table}, roller)

	_, err := svc.Resolve(context.Background(), "absent-parent", nil)

	require.Error(t, err)
	assert.True(t, bserr.IsInvalidDiceExpression(err))
}

func TestExpand_MultiplePlaceholdersLeftToRight(t *testing.T) {
	tableSet := []*entities.Table{
		{
			Key:      "summary",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "summary", Template: "A {{race}} with {{1d4}} scars"},
			},
		},
		{
			Key:      "race",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "Dwarf"},
			},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, 1, 2})
	svc := newService(t, tableSet, roller)

	attr, err := svc.Resolve(context.Background(), "summary", nil)

	require.NoError(t, err)
	assert.Equal(t, "A Dwarf with 2 scars", attr.String())
}

func TestExpand_SubstitutedValueIsNotReinterpreted(t *testing.T) {
	// The sub-table's plain outcome text happens to look like a
	// placeholder; single-pass expansion must leave it alone
	tableSet := []*entities.Table{
		{
			Key:      "quirk",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "quirk", Template: "You say {{catchphrase}} often"},
			},
		},
		{
			Key:      "catchphrase",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "{{1d100}}"},
			},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1, 1})
	svc := newService(t, tableSet, roller)

	attr, err := svc.Resolve(context.Background(), "quirk", nil)

	require.NoError(t, err)
	assert.Equal(t, "You say {{1d100}} often", attr.String())
}

func TestExpand_CyclicTablesFailWithMaxDepth(t *testing.T) {
	tableSet := []*entities.Table{
		{
			Key:      "ouroboros-head",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "head", Template: "head of {{ouroboros-tail}}"},
			},
		},
		{
			Key:      "ouroboros-tail",
			Strategy: entities.SelectionRandom,
			Rows: []*entities.Row{
				{Text: "tail", Template: "tail of {{ouroboros-head}}"},
			},
		},
	}

	roller := mockdice.NewManualMockRoller()
	rolls := make([]int, 64)
	for i := range rolls {
		rolls[i] = 1
	}
	roller.SetRolls(rolls)
	svc := newService(t, tableSet, roller)

	_, err := svc.Resolve(context.Background(), "ouroboros-head", nil)

	require.Error(t, err)
	assert.True(t, bserr.IsMaxDepthExceeded(err))
}

func TestExpand_UnknownSubTableFallsThroughToDice(t *testing.T) {
	table := &entities.Table{
		Key:      "memory",
		Strategy: entities.SelectionRandom,
		Rows: []*entities.Row{
			{Text: "memory", Template: "You remember {{forgotten-table}}"},
		},
	}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1})
	svc := newService(t, []*entities.Table{table}, roller)

	_, err := svc.Resolve(context.Background(), "memory", nil)

	// Not a table key and not a dice expression either
	require.Error(t, err)
	assert.True(t, bserr.IsInvalidDiceExpression(err))
}
