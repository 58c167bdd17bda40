package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/plan"
)

// Lookup errors.
var (
	ErrBlockNotFound = errors.New("block not found")
	ErrAmbiguousID   = errors.New("ambiguous block id")
)

// shortIDLen is how much of a block id the CLI prints.
const shortIDLen = 8

// resolveBlockID expands a block id prefix. An exact match always wins.
func resolveBlockID(blocks []plan.TimeBlock, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrBlockNotFound
	}

	var matches []string
	for _, b := range blocks {
		if b.ID == ref {
			return b.ID, nil
		}
		if strings.HasPrefix(b.ID, ref) {
			matches = append(matches, b.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrBlockNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d blocks", ErrAmbiguousID, ref, len(matches))
	}
}

// resolveActivity finds an activity by id or, failing that, by title.
func resolveActivity(c *catalog.Catalog, ref string) (plan.Activity, error) {
	ref = strings.TrimSpace(ref)
	if a, ok := c.Activity(ref); ok {
		return a, nil
	}
	for _, a := range c.Activities() {
		if strings.EqualFold(a.Title, ref) {
			return a, nil
		}
	}
	return plan.Activity{}, fmt.Errorf("%w: %s", catalog.ErrUnknownActivity, ref)
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
