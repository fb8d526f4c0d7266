package attribute

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/backstory-bot-discord/internal/dice"
	"github.com/KirkDiggler/backstory-bot-discord/internal/entities"
	bserr "github.com/KirkDiggler/backstory-bot-discord/internal/errors"
)

// ExtraKeyword is the placeholder literal that invokes the row's
// extra-text function instead of a table lookup or dice roll
const ExtraKeyword = "extra"

var placeholderPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// expand replaces each {{keyword}} marker in the template, left to
// right in a single pass. Substituted text is appended to the output
// and never re-scanned, so a replacement value cannot introduce new
// placeholders. Expansion is recursive at the attribute level: a
// sub-table resolution runs its own expansion before its string is
// substituted here.
func (s *service) expand(ctx context.Context, template string, row *entities.Row, modifier *int, depth int) (string, error) {
	var out strings.Builder
	rest := template

	for {
		loc := placeholderPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			out.WriteString(rest)
			break
		}

		out.WriteString(rest[:loc[0]])

		keyword := rest[loc[2]:loc[3]]
		replacement, err := s.expandKeyword(ctx, keyword, template, row, modifier, depth)
		if err != nil {
			return "", err
		}
		out.WriteString(replacement)

		rest = rest[loc[1]:]
	}

	return out.String(), nil
}

// expandKeyword resolves a single placeholder keyword: a known table
// key becomes a freshly resolved sub-attribute, the extra literal
// invokes the row's extra-text function, and anything else is rolled
// as a dice expression.
func (s *service) expandKeyword(ctx context.Context, keyword, template string, row *entities.Row, modifier *int, depth int) (string, error) {
	key := entities.NormalizeKey(keyword)

	_, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		sub, resolveErr := s.resolve(ctx, key, &ResolveOptions{}, depth+1)
		if resolveErr != nil {
			return "", resolveErr
		}
		return sub.String(), nil
	case !bserr.IsUnknownTable(err):
		return "", err
	}

	if keyword == ExtraKeyword && row.ExtraFunc != nil {
		return row.ExtraFunc(template), nil
	}

	expr := keyword
	if modifier != nil {
		expr = dice.SubstituteMod(expr, *modifier)
	}

	result, err := dice.RollExpression(s.roller, expr)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(result.Total), nil
}
