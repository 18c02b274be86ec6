package domain

import (
	"sort"
	"strings"
)

// Catalog is the ordered set of launchable entries shown to the user. It is
// produced wholesale by each fetch and never patched in place.
type Catalog struct {
	entries []Entry
	byID    map[EntryID]int
}

// NewCatalog orders entries by SortOrder with a case-insensitive display-name
// tie-break and drops duplicate ids, keeping the first occurrence.
func NewCatalog(entries []Entry) Catalog {
	deduped := make([]Entry, 0, len(entries))
	byID := make(map[EntryID]int, len(entries))
	for _, entry := range entries {
		if _, ok := byID[entry.ID]; ok {
			continue
		}
		byID[entry.ID] = 0
		deduped = append(deduped, entry)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].SortOrder != deduped[j].SortOrder {
			return deduped[i].SortOrder < deduped[j].SortOrder
		}
		return strings.ToLower(deduped[i].DisplayName) < strings.ToLower(deduped[j].DisplayName)
	})

	for i, entry := range deduped {
		byID[entry.ID] = i
	}

	return Catalog{entries: deduped, byID: byID}
}

func (c Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the ordered entries as a fresh slice.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c Catalog) Get(id EntryID) (Entry, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// LibraryRecord is one row of the per-user library used to mark ownership.
type LibraryRecord struct {
	Slug         string
	GameID       int
	InstallReady bool
}

// MergeLibrary joins chart entries against the user library. Records match
// by slug first, then by game id. A hit marks the entry owned and upgrades
// the installed bit with the library's install-ready state; a miss clears
// ownership while keeping the chart's installed bit.
func MergeLibrary(entries []Entry, records []LibraryRecord) []Entry {
	bySlug := make(map[string]LibraryRecord, len(records))
	byGame := make(map[int]LibraryRecord, len(records))
	for _, record := range records {
		if record.GameID <= 0 {
			continue
		}
		if record.Slug != "" {
			bySlug[record.Slug] = record
		}
		byGame[record.GameID] = record
	}

	merged := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		record, ok := bySlug[string(entry.ID)]
		if !ok && entry.HasGameID() {
			record, ok = byGame[entry.GameID]
		}
		if ok {
			merged = append(merged, entry.WithOwnership(true, entry.Installed || record.InstallReady))
		} else {
			merged = append(merged, entry.WithOwnership(false, entry.Installed))
		}
	}
	return merged
}
