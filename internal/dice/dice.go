package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ModToken is the literal placeholder in a dice expression that stands in
// for a character-specific modifier. It must be substituted with a concrete
// signed integer before the expression is rolled.
const ModToken = "MOD"

// expressionPattern matches the dice grammar <count>d<faces>[+|-<modifier>]
var expressionPattern = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// RollResult holds the outcome of a single dice roll
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// String formats the result for display, e.g. "9 on 2d6+3 [4 2]"
func (r *RollResult) String() string {
	expr := fmt.Sprintf("%dd%d", r.Count, r.Sides)
	if r.Bonus != 0 {
		expr += fmt.Sprintf("%+d", r.Bonus)
	}
	return fmt.Sprintf("%d on %s %v", r.Total, expr, r.Rolls)
}

// Expression is a parsed dice expression
type Expression struct {
	Count    int
	Sides    int
	Modifier int
}

// ParseExpression parses a dice string like "2d6+3" into its parts.
// Returns an invalid_dice_expression error when the string does not
// match the grammar, including when an unsubstituted MOD token remains.
func ParseExpression(expr string) (*Expression, error) {
	trimmed := strings.TrimSpace(expr)

	matches := expressionPattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return nil, invalidExpression(expr)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, invalidExpression(expr)
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, invalidExpression(expr)
	}

	modifier := 0
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return nil, invalidExpression(expr)
		}
	}

	if count < 1 || sides < 1 {
		return nil, invalidExpression(expr)
	}

	return &Expression{
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
	}, nil
}

// SubstituteMod textually replaces every MOD token in the expression with
// the given signed integer, normalizing the sign so "1d6+MOD" with -2
// becomes "1d6-2" rather than "1d6+-2".
func SubstituteMod(expr string, modifier int) string {
	substituted := strings.ReplaceAll(expr, ModToken, strconv.Itoa(modifier))
	substituted = strings.ReplaceAll(substituted, "+-", "-")
	substituted = strings.ReplaceAll(substituted, "--", "+")
	return substituted
}

// IsExpression reports whether the string parses as a dice expression
func IsExpression(expr string) bool {
	_, err := ParseExpression(expr)
	return err == nil
}

// RollExpression parses the expression and rolls it with the given roller
func RollExpression(roller Roller, expr string) (*RollResult, error) {
	parsed, err := ParseExpression(expr)
	if err != nil {
		return nil, err
	}

	return roller.Roll(parsed.Count, parsed.Sides, parsed.Modifier)
}
