// Package model contains domain models passed between layers.
package model

import "sort"

// Event types used by the network pipeline.
const (
	TypePass         = "Pass"
	TypeSubstitution = "Substitution"
)

// Event is one on-pitch action from a match event log.
// Fields mirror the flattened StatsBomb event table.
type Event struct {
	ID            string  // source event uuid
	Index         int     // temporal order within the match
	Period        int     // match period, 1-based
	Minute        int     // match clock minute
	Second        int     // match clock second
	TypeName      string  // e.g. "Pass", "Substitution"
	TeamName      string  // team performing the event
	PlayerName    string  // player performing the event
	RecipientName string  // pass recipient, empty when none
	X             float64 // start x in pitch units
	Y             float64 // start y in pitch units
	EndX          float64 // end x in pitch units
	EndY          float64 // end y in pitch units
	HasLocation   bool    // X/Y were present in the source
	HasEnd        bool    // EndX/EndY were present in the source
	OutcomeName   *string // nil means successful
}

// Successful reports whether the event carries no outcome, which the event
// data uses to mark completed passes.
func (e Event) Successful() bool {
	return e.OutcomeName == nil
}

// HasRecipient reports whether the event names a pass recipient.
func (e Event) HasRecipient() bool {
	return e.RecipientName != ""
}

// SortByIndex orders events by their temporal index in place.
func SortByIndex(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Index < events[j].Index
	})
}
