package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Recognized stat names for round comparisons.
const (
	StatRating = "rating"
	StatApps   = "apps"
	StatAgr    = "agr"
	StatSV     = "sv"
	StatGA     = "g/a"
	StatTW     = "tw"
)

var validStats = map[string]bool{
	StatRating: true,
	StatApps:   true,
	StatAgr:    true,
	StatSV:     true,
	StatGA:     true,
	StatTW:     true,
}

// ValidStat reports whether name is a recognized stat, case-insensitively.
func ValidStat(name string) bool {
	return validStats[strings.ToLower(name)]
}

// Card is an immutable player card. Identity is Name, compared
// case-insensitively. JSON tags match the collection data format
// (APPS, SV, G/A, TW are the historical key spellings).
type Card struct {
	Name     string   `json:"name"`
	Rating   float64  `json:"rating"`
	Price    float64  `json:"price"`
	Agr      float64  `json:"agr"`
	Apps     float64  `json:"APPS"`
	SV       *float64 `json:"SV,omitempty"`
	GA       *float64 `json:"G/A,omitempty"`
	TW       *float64 `json:"TW,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
}

// Is reports whether the card's name matches, ignoring case.
func (c Card) Is(name string) bool {
	return strings.EqualFold(c.Name, name)
}

// Stat resolves a recognized stat by name. Optional stats the card does not
// carry resolve to 0; unrecognized names return false.
func (c Card) Stat(name string) (float64, bool) {
	switch strings.ToLower(name) {
	case StatRating:
		return c.Rating, true
	case StatApps:
		return c.Apps, true
	case StatAgr:
		return c.Agr, true
	case StatSV:
		return optional(c.SV), true
	case StatGA:
		return optional(c.GA), true
	case StatTW:
		return optional(c.TW), true
	default:
		return 0, false
	}
}

// StatLine renders the card the way it is presented during a round:
// name followed by every stat, with N/A for absent optional stats.
func (c Card) StatLine() string {
	return fmt.Sprintf("%s - %s rating, %s apps, %s agr, %s SV, %s G/A, %s TW",
		c.Name,
		formatStat(c.Rating),
		formatStat(c.Apps),
		formatStat(c.Agr),
		formatOptional(c.SV),
		formatOptional(c.GA),
		formatOptional(c.TW),
	)
}

// Detail renders the full card description used for private card messages.
func (c Card) Detail() string {
	return fmt.Sprintf("%s\nRating: %s\nPrice: %s\nAGR: %s\nApps: %s",
		c.Name, formatStat(c.Rating), formatStat(c.Price), formatStat(c.Agr), formatStat(c.Apps))
}

func optional(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return formatStat(*v)
}
