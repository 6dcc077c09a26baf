package portal

import (
	"strings"

	"github.com/godbus/dbus/v5"
)

// filterGlobType is the match_type tag the portal protocol uses for a
// plain glob pattern, as opposed to a MIME type.
const filterGlobType = 0

// filterEntry mirrors one (name, list<(type, pattern)>) filter from the
// OpenFile options dictionary.
type filterEntry struct {
	Name     string
	Patterns []filterPattern
}

type filterPattern struct {
	MatchType int32
	Glob      string
}

// extensionsFromFilters accepts only glob patterns shaped "*.ext" and
// unions their extensions (without the leading "*.") across every filter,
// for use as a single comma-joined --types argument. Patterns that aren't
// glob-typed or aren't a bare extension glob are ignored.
func extensionsFromFilters(filters []filterEntry) []string {
	seen := make(map[string]bool)
	var exts []string

	for _, f := range filters {
		for _, p := range f.Patterns {
			if p.MatchType != filterGlobType {
				continue
			}
			if !strings.HasPrefix(p.Glob, "*.") {
				continue
			}
			ext := strings.TrimPrefix(p.Glob, "*.")
			if ext == "" || seen[ext] {
				continue
			}
			seen[ext] = true
			exts = append(exts, ext)
		}
	}

	return exts
}

// decodeFilters unpacks the "filters" option's D-Bus value — a variant of
// signature a(sa(us)) — into filterEntry values. D-Bus delivers compound
// types as nested []interface{} rather than our named structs, so this
// walks that shape defensively and skips anything that doesn't match,
// rather than panicking on an unexpected peer.
func decodeFilters(options map[string]dbus.Variant) []filterEntry {
	v, ok := options["filters"]
	if !ok {
		return nil
	}

	outer, ok := v.Value().([][]interface{})
	if !ok {
		return decodeFiltersGeneric(v.Value())
	}

	var filters []filterEntry
	for _, row := range outer {
		if len(row) != 2 {
			continue
		}
		name, _ := row[0].(string)
		patterns, _ := row[1].([][]interface{})
		var fe filterEntry
		fe.Name = name
		for _, p := range patterns {
			if len(p) != 2 {
				continue
			}
			mt, _ := p[0].(uint32)
			glob, _ := p[1].(string)
			fe.Patterns = append(fe.Patterns, filterPattern{MatchType: int32(mt), Glob: glob})
		}
		filters = append(filters, fe)
	}
	return filters
}

// decodeFiltersGeneric handles the []interface{} shape godbus produces
// when it cannot infer a more specific slice type for the nested
// structure.
func decodeFiltersGeneric(v any) []filterEntry {
	outer, ok := v.([]interface{})
	if !ok {
		return nil
	}

	var filters []filterEntry
	for _, rowAny := range outer {
		row, ok := rowAny.([]interface{})
		if !ok || len(row) != 2 {
			continue
		}
		name, _ := row[0].(string)
		fe := filterEntry{Name: name}

		patterns, _ := row[1].([]interface{})
		for _, pAny := range patterns {
			p, ok := pAny.([]interface{})
			if !ok || len(p) != 2 {
				continue
			}
			mt, _ := p[0].(uint32)
			glob, _ := p[1].(string)
			fe.Patterns = append(fe.Patterns, filterPattern{MatchType: int32(mt), Glob: glob})
		}
		filters = append(filters, fe)
	}
	return filters
}
