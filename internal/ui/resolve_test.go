package ui

import (
	"errors"
	"testing"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/plan"
)

func TestResolveBlockID(t *testing.T) {
	blocks := []plan.TimeBlock{
		{ID: "abc123"},
		{ID: "abd456"},
		{ID: "abc"},
	}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{name: "unique prefix", ref: "abd", want: "abd456"},
		{name: "exact match wins over prefix", ref: "abc", want: "abc"},
		{name: "full id", ref: "abc123", want: "abc123"},
		{name: "ambiguous", ref: "ab", wantErr: ErrAmbiguousID},
		{name: "not found", ref: "zzz", wantErr: ErrBlockNotFound},
		{name: "empty", ref: "  ", wantErr: ErrBlockNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveBlockID(blocks, tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveBlockID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveActivity(t *testing.T) {
	c := catalog.Default()

	if a, err := resolveActivity(c, "a7"); err != nil || a.Title != "Beach Walk" {
		t.Errorf("by id: %+v, %v", a, err)
	}
	if a, err := resolveActivity(c, "beach walk"); err != nil || a.ID != "a7" {
		t.Errorf("by title: %+v, %v", a, err)
	}
	if _, err := resolveActivity(c, "skydiving"); !errors.Is(err, catalog.ErrUnknownActivity) {
		t.Errorf("expected ErrUnknownActivity, got %v", err)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("b1"); got != "b1" {
		t.Errorf("shortID = %q", got)
	}
}
