package models

import "strings"

// EntryKind classifies a direct child of the target folder.
type EntryKind int

const (
	EntryFile EntryKind = iota
	EntryDir
	// EntryOther covers everything the engine does not delete:
	// symlinks, sockets, device files.
	EntryOther
)

// Entry is one direct child of the target folder as seen during
// enumeration.
type Entry struct {
	Name string
	Kind EntryKind
}

// EntryError records a single entry that could not be deleted.
type EntryError struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// DeletionReport is the outcome of one cleanup cycle. Buckets preserve
// filesystem enumeration order. A report is built once per cycle and
// never mutated after the engine returns it.
type DeletionReport struct {
	Deleted []string     `json:"deleted"`
	Skipped []string     `json:"skipped"`
	Errors  []EntryError `json:"errors"`
}

// Total returns the number of entries accounted for by the report.
func (r *DeletionReport) Total() int {
	return len(r.Deleted) + len(r.Skipped) + len(r.Errors)
}

// KeepSet holds the names exempt from deletion. Matching is
// case-insensitive and exact (no globbing). On case-sensitive
// filesystems this means a keep name shields every entry that differs
// from it only by case; that is deliberate policy, not an oversight.
type KeepSet map[string]struct{}

// NewKeepSet normalizes names to lower case. Empty names are ignored.
func NewKeepSet(names ...string) KeepSet {
	set := make(KeepSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// Contains reports whether name is kept, ignoring case.
func (s KeepSet) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}
