package model

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the machine-readable state token carried by a submission row.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDraft    Status = "draft"
	StatusUnknown  Status = "unknown"
)

// StatusLabels maps known status keys to their display labels.
var StatusLabels = map[Status]string{
	StatusApproved: "Approved",
	StatusActive:   "Active",
	StatusPending:  "Pending",
	StatusRejected: "Rejected",
	StatusInactive: "Inactive",
	StatusDraft:    "Draft",
	StatusUnknown:  "Unknown",
}

// ParseStatus normalises a raw status key. Empty input is unknown; anything
// else unrecognised is kept as-is so the server can introduce new states.
func ParseStatus(raw string) Status {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return StatusUnknown
	}
	return Status(raw)
}

// Label returns the display label for the status.
func (s Status) Label() string {
	if label, ok := StatusLabels[s]; ok {
		return label
	}
	if s == "" {
		return StatusLabels[StatusUnknown]
	}
	return upperFirst(string(s))
}

// upperFirst capitalises the first letter and leaves the rest as typed, so
// "in review" reads "In review".
func upperFirst(raw string) string {
	first, size := utf8.DecodeRuneInString(raw)
	if first == utf8.RuneError {
		return raw
	}
	// Casers carry state, so each call gets its own.
	return cases.Upper(language.English).String(string(first)) + raw[size:]
}

// Known reports whether s is one of the canonical status keys.
func (s Status) Known() bool {
	_, ok := StatusLabels[s]
	return ok
}

// IsApproved reports whether the status counts as approved for the stats
// panel and for button policy.
func (s Status) IsApproved() bool {
	return s == StatusApproved || s == StatusActive
}

// CardStatus is the state shown on a user card.
type CardStatus string

const (
	CardActive   CardStatus = "active"
	CardInactive CardStatus = "inactive"
	CardUnknown  CardStatus = "unknown"
)

// CardStatusFor derives the card state from a submission status.
func CardStatusFor(s Status) CardStatus {
	switch {
	case s.IsApproved():
		return CardActive
	case s == StatusInactive:
		return CardInactive
	default:
		return CardUnknown
	}
}

// Label returns the text shown in the card's status badge.
func (c CardStatus) Label() string {
	switch c {
	case CardActive:
		return "Active"
	case CardInactive:
		return "Inactive"
	default:
		return "Unknown"
	}
}
