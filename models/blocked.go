package models

import (
	"fmt"
	"strings"
	"time"
)

// BlockedDate marks a single calendar date as fully unavailable for a provider,
// overriding the weekly schedule. Identity is (provider_id, date).
type BlockedDate struct {
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	Date       string    `bson:"date" json:"date"`                         // "2006-01-02", no time component
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"` // e.g. "public holiday"
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// blockedDateLayouts are the accepted input shapes, tried in order. Callers
// sometimes send full timestamps where a plain date is expected; everything is
// reduced to the calendar-date component to avoid off-by-one-day comparisons.
var blockedDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeDate reduces a date or timestamp string to its "2006-01-02" form.
func NormalizeDate(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	for _, layout := range blockedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", input)
}

// BlockDateRequest is the payload for adding a blocked date.
type BlockDateRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}
