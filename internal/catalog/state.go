package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// State is an immutable snapshot of the tracked entries and the current
// selection. Every command returns a new State and leaves the receiver as is.
type State struct {
	entries  []Entry
	selected string
}

// NewState copies entries into a fresh snapshot with nothing selected.
func NewState(entries []Entry) State {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return State{entries: out}
}

// Entries returns a copy of the entries in insertion order.
func (s State) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s State) Len() int         { return len(s.entries) }
func (s State) Selected() string { return s.selected }

func (s State) Lookup(id string) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Add appends an entry under a fresh id. Entries that already carry an id
// are not new and are ignored.
func (s State) Add(e Entry) (State, string) {
	if e.ID != "" {
		return s, ""
	}
	e.ID = NewID()
	next := s.withEntries(append(s.Entries(), e))
	return next, e.ID
}

// Remove drops an entry, clearing the selection if it pointed at it.
func (s State) Remove(id string) State {
	kept := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	next := s.withEntries(kept)
	if next.selected == id {
		next.selected = ""
	}
	return next
}

// Update merges p into the entry it names. A patch without an id means the
// edit is finished and clears the selection.
func (s State) Update(p Patch) State {
	if p.ID == "" {
		return s.Deselect()
	}
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		if e.ID == p.ID {
			e = p.apply(e)
		}
		out[i] = e
	}
	return s.withEntries(out)
}

func (s State) Select(id string) State {
	if _, ok := s.Lookup(id); !ok {
		return s
	}
	next := s
	next.selected = id
	return next
}

func (s State) Deselect() State {
	next := s
	next.selected = ""
	return next
}

func (s State) withEntries(entries []Entry) State {
	return State{entries: entries, selected: s.selected}
}

// Find returns entries whose name resembles query: substring matches first,
// then close misspellings, each ordered by edit distance. limit <= 0 means all.
func (s State) Find(query string, limit int) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	maxDistance := len([]rune(q)) / 2
	if maxDistance < 1 {
		maxDistance = 1
	}

	type match struct {
		entry    Entry
		contains bool
		distance int
	}
	var matches []match
	for _, e := range s.entries {
		name := strings.ToLower(e.Name)
		m := match{entry: e, contains: strings.Contains(name, q), distance: levenshtein.ComputeDistance(q, name)}
		if m.contains || m.distance <= maxDistance {
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].contains != matches[j].contains {
			return matches[i].contains
		}
		return matches[i].distance < matches[j].distance
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = m.entry
	}
	return out
}
