package battle

import (
	"strings"

	"github.com/kundankarn/football-battle-bot/internal/card"
)

// Hand is the ordered, duplicate-free set of cards a participant currently
// holds in a session.
type Hand []card.Card

// Find returns the card matching name, ignoring case.
func (h Hand) Find(name string) (card.Card, bool) {
	for _, c := range h {
		if c.Is(name) {
			return c, true
		}
	}
	return card.Card{}, false
}

// Contains reports whether the hand holds a card with this name.
func (h Hand) Contains(name string) bool {
	_, ok := h.Find(name)
	return ok
}

// Names lists the card names in hand order.
func (h Hand) Names() []string {
	names := make([]string, len(h))
	for i, c := range h {
		names[i] = c.Name
	}
	return names
}

// StatLines renders one presentation line per card.
func (h Hand) StatLines() string {
	lines := make([]string, len(h))
	for i, c := range h {
		lines[i] = c.StatLine()
	}
	return strings.Join(lines, "\n")
}

// add appends c unless a card with the same name is already present.
func (h *Hand) add(c card.Card) bool {
	if h.Contains(c.Name) {
		return false
	}
	*h = append(*h, c)
	return true
}

// remove deletes the card matching name, preserving order.
func (h *Hand) remove(name string) bool {
	for i, c := range *h {
		if c.Is(name) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}
	return false
}
