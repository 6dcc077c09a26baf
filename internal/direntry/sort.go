package direntry

import (
	"sort"
	"strings"
)

// SortEntries orders directories before files, and within each class by
// name case-insensitively, matching the contract read_directory promises
// its callers.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

// Aggregate computes TotalItems and TotalSize for a fully populated entry
// slice.
func Aggregate(entries []Entry) (items int, size int64) {
	items = len(entries)
	for _, e := range entries {
		size += e.Size
	}
	return items, size
}
