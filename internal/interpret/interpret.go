// Package interpret maps one line of free chat text to an action against
// the board. Matching is deliberately keyword and regex based: rules are
// evaluated in a fixed priority order and the first match wins.
package interpret

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aksoydem/huntboard-cli/internal/models"
)

// Board is the read-only view the interpreter needs. It never mutates:
// side effects are returned as actions for the caller to apply.
type Board interface {
	Terms() []models.Term
	ActiveTerm() models.Term
	ApplicationsInTerm(termID string) []models.Application
}

// Action is the result of interpreting one line of input.
type Action interface{ isAction() }

// OpenCreateForm asks the caller to open the create form prefilled. It
// does not create anything itself; confirmation stays with the user.
type OpenCreateForm struct {
	Company  string
	Position string
}

// TextResponse is a read-only reply. Play marks the distinguished
// response that invites the caller to present the mini-game.
type TextResponse struct {
	Body string
	Play bool
}

// SwitchTerm asks the caller to make TermID the active term.
type SwitchTerm struct {
	TermID string
}

// NoOp is returned for blank input.
type NoOp struct{}

func (OpenCreateForm) isAction() {}
func (TextResponse) isAction()   {}
func (SwitchTerm) isAction()     {}
func (NoOp) isAction()           {}

type rule struct {
	name   string
	match  func(lower string) bool
	handle func(text, lower string, b Board) Action
}

var (
	createRe = regexp.MustCompile(`(?i)^(?:add|create|new)\s+(.+?)\s+(?:at|for)\s+(.+)$`)
	searchRe = regexp.MustCompile(`(?i)^(?:show|find|search)\s+(.+)$`)
)

var helpKeywords = map[string]bool{
	"help":            true,
	"commands":        true,
	"?":               true,
	"what can you do": true,
}

var playKeywords = map[string]bool{
	"play":        true,
	"game":        true,
	"play game":   true,
	"play a game": true,
	"bored":       true,
	"i'm bored":   true,
	"im bored":    true,
}

// rules in precedence order; ambiguous input always resolves to the
// first matching rule.
var rules = []rule{
	{
		name:   "help",
		match:  func(lower string) bool { return helpKeywords[lower] },
		handle: func(_, _ string, _ Board) Action { return TextResponse{Body: helpText} },
	},
	{
		name:  "play",
		match: func(lower string) bool { return playKeywords[lower] },
		handle: func(_, _ string, _ Board) Action {
			return TextResponse{Body: "🎮 Warming up the claw machine...", Play: true}
		},
	},
	{
		name:  "create",
		match: func(lower string) bool { return createRe.MatchString(lower) },
		handle: func(text, _ string, _ Board) Action {
			m := createRe.FindStringSubmatch(text)
			return OpenCreateForm{
				Position: strings.TrimSpace(m[1]),
				Company:  strings.TrimSpace(m[2]),
			}
		},
	},
	{
		name: "count",
		match: func(lower string) bool {
			return strings.Contains(lower, "how many") || strings.Contains(lower, "count")
		},
		handle: func(_, lower string, b Board) Action {
			term := b.ActiveTerm()
			apps := b.ApplicationsInTerm(term.ID)
			if status, ok := statusKeyword(lower); ok {
				return TextResponse{Body: countMessage(countByStatus(apps, status), string(status), term.Name)}
			}
			return TextResponse{Body: countMessage(len(apps), "", term.Name)}
		},
	},
	{
		name:  "search",
		match: func(lower string) bool { return searchRe.MatchString(lower) },
		handle: func(text, _ string, b Board) Action {
			query := strings.TrimSpace(searchRe.FindStringSubmatch(text)[1])
			term := b.ActiveTerm()
			apps := b.ApplicationsInTerm(term.ID)

			if status, ok := statusKeyword(strings.ToLower(query)); ok {
				return TextResponse{Body: countMessage(countByStatus(apps, status), string(status), term.Name)}
			}

			q := strings.ToLower(query)
			var lines []string
			for _, a := range apps {
				if strings.Contains(strings.ToLower(a.Company), q) ||
					strings.Contains(strings.ToLower(a.Position), q) {
					lines = append(lines, fmt.Sprintf("- %s: %s (%s)", a.Company, a.Position, a.Status))
				}
			}
			if len(lines) == 0 {
				return TextResponse{Body: fmt.Sprintf("I couldn't find anything matching %q in %s.", query, term.Name)}
			}
			return TextResponse{Body: fmt.Sprintf("Found %d in %s:\n%s", len(lines), term.Name, strings.Join(lines, "\n"))}
		},
	},
	{
		name:  "switch",
		match: func(lower string) bool { return strings.Contains(lower, "switch to") },
		handle: func(_, lower string, b Board) Action {
			_, rest, _ := strings.Cut(lower, "switch to")
			query := strings.TrimSpace(rest)
			if query != "" {
				for _, t := range b.Terms() {
					if strings.Contains(strings.ToLower(t.Name), query) {
						return SwitchTerm{TermID: t.ID}
					}
				}
			}
			return TextResponse{Body: fmt.Sprintf("I don't know a term matching %q.", query)}
		},
	},
}

const helpText = `Here's what I understand:

- ` + "`add <position> at <company>`" + ` opens a prefilled application form
- ` + "`how many offer`" + ` counts applications by status
- ` + "`find <company or role>`" + ` searches the current term
- ` + "`switch to <term>`" + ` changes the active term
- ` + "`play`" + ` if you need a break`

const fallbackText = `Not sure what you mean. Try something like:

- ` + "`add Backend Intern at Acme`" + `
- ` + "`how many applied`" + `
- ` + "`find Google`" + `
- ` + "`switch to Summer`" + `

Or say ` + "`help`" + `.`

// Interpret maps text to an action. It is stateless and never mutates b.
func Interpret(text string, b Board) Action {
	text = strings.TrimSpace(text)
	if text == "" {
		return NoOp{}
	}
	lower := strings.ToLower(text)

	for _, r := range rules {
		if r.match(lower) {
			return r.handle(text, lower, b)
		}
	}
	return TextResponse{Body: fallbackText}
}

// statusKeyword picks the status referenced by the text, if any.
// "interview" and "reject" match as fragments so that "interviews" and
// "rejections" count too.
func statusKeyword(lower string) (models.Status, bool) {
	switch {
	case strings.Contains(lower, "wishlist"):
		return models.StatusWishlist, true
	case strings.Contains(lower, "applied"):
		return models.StatusApplied, true
	case strings.Contains(lower, "interview"):
		return models.StatusInterviewing, true
	case strings.Contains(lower, "offer"):
		return models.StatusOffer, true
	case strings.Contains(lower, "reject"):
		return models.StatusRejected, true
	}
	return "", false
}

func countByStatus(apps []models.Application, status models.Status) int {
	n := 0
	for _, a := range apps {
		if a.Status == status {
			n++
		}
	}
	return n
}

func countMessage(n int, status, termName string) string {
	noun := "applications"
	if n == 1 {
		noun = "application"
	}
	if status == "" {
		return fmt.Sprintf("You have %d %s in %s.", n, noun, termName)
	}
	return fmt.Sprintf("You have %d %s %s in %s.", n, status, noun, termName)
}
