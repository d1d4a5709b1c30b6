package commands

import (
	"fmt"
	"strings"

	"github.com/aksoydem/huntboard-cli/internal/board"
	"github.com/aksoydem/huntboard-cli/internal/config"
	"github.com/aksoydem/huntboard-cli/internal/models"
	"github.com/aksoydem/huntboard-cli/internal/store"
)

// Helper functions shared across commands

func stringPtr(s string) *string {
	return &s
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// shortID abbreviates an id for display. Records migrated from older
// data may carry ids shorter than the usual uuid.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// openEngine loads config, opens the local store and builds the board
// engine. Persistence warnings are printed but never fatal: the session
// keeps running on in-memory state.
func openEngine() (*board.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.DatabasePath
	if path == "" {
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	engine, err := board.New(st)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	engine.SetWarnFunc(func(err error) {
		fmt.Printf("⚠️  Could not save changes (continuing in memory): %v\n", err)
	})
	return engine, nil
}

// parseStatus accepts a status in any case and a couple of shorthands.
func parseStatus(s string) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wishlist", "wish":
		return models.StatusWishlist, nil
	case "applied":
		return models.StatusApplied, nil
	case "interviewing", "interview":
		return models.StatusInterviewing, nil
	case "offer":
		return models.StatusOffer, nil
	case "rejected", "reject":
		return models.StatusRejected, nil
	}
	return "", fmt.Errorf("unknown status %q (wishlist, applied, interviewing, offer, rejected)", s)
}

// resolveApplication matches a full id or a unique id prefix, the same
// shorthand the list views print.
func resolveApplication(engine *board.Engine, idOrPrefix string) (models.Application, error) {
	if app, ok := engine.Application(idOrPrefix); ok {
		return app, nil
	}

	var matches []models.Application
	for _, a := range engine.Applications() {
		if strings.HasPrefix(a.ID, idOrPrefix) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Application{}, fmt.Errorf("no application matching %q", idOrPrefix)
	default:
		return models.Application{}, fmt.Errorf("%q matches %d applications, use a longer prefix", idOrPrefix, len(matches))
	}
}

// resolveTerm matches a term by id, id prefix or case-insensitive name.
func resolveTerm(engine *board.Engine, query string) (models.Term, error) {
	lower := strings.ToLower(query)
	for _, t := range engine.Terms() {
		if t.ID == query || strings.HasPrefix(t.ID, query) || strings.ToLower(t.Name) == lower {
			return t, nil
		}
	}
	return models.Term{}, fmt.Errorf("no term matching %q", query)
}
