package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

import (
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
)

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

func invalidExpression(expr string) error {
	return bserr.InvalidDiceExpressionf("invalid dice expression '%s'", expr).
		WithMeta("expression", expr)
}
