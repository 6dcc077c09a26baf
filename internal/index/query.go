package index

import (
	"context"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/FrogSnot/HardBore/internal/logs"
)

// SearchResult is one match returned by either search path. Score is 0 for
// FTS results, where BM25 ordering is authoritative.
type SearchResult struct {
	Name   string
	Path   string
	IsDir  bool
	Hidden bool
	Score  int
}

// ftsOperators are the FTS5 syntax characters a raw query is stripped of
// before being wrapped into a phrase-prefix match, so user input can never
// be interpreted as query syntax.
const ftsOperators = `"*+-():^`

// SanitizeQuery replaces every FTS5 operator character with a space.
func SanitizeQuery(q string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(ftsOperators, r) {
			return ' '
		}
		return r
	}, q)
}

const ftsSearchSQL = `
SELECT f.name, f.path, f.is_dir, f.hidden
FROM files_fts fts
JOIN files f ON fts.rowid = f.id
WHERE files_fts MATCH ?
ORDER BY bm25(files_fts)
LIMIT ?
`

// SearchFTS runs a phrase-prefix match over the trigram index. Any
// prepare/query failure yields an empty result — a failed search must
// never propagate to the caller as an error.
func (idx *Indexer) SearchFTS(ctx context.Context, q string, limit int) []SearchResult {
	matchExpr := `"` + SanitizeQuery(q) + `"*`

	rows, err := idx.store.DB().QueryContext(ctx, ftsSearchSQL, matchExpr, limit)
	if err != nil {
		logs.Notice(ctx, "search_fts: query failed", "error", err)
		return nil
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var isDir, hidden int
		if err := rows.Scan(&r.Name, &r.Path, &isDir, &hidden); err != nil {
			continue
		}
		r.IsDir = isDir != 0
		r.Hidden = hidden != 0
		results = append(results, r)
	}
	return results
}

const fuzzyCandidateSQL = `
SELECT name, path, is_dir, hidden FROM files
WHERE name LIKE ? OR path LIKE ?
LIMIT 5000
`

// SearchFuzzy prefilters candidates with a SQL LIKE scan whose pattern
// requires the query's characters in order with anything between them
// ("cofig" becomes "%c%o%f%i%g%"), then scores each one with a Skim-style
// fuzzy matcher over name, falling back to path. Candidates with no match
// in either field are dropped.
func (idx *Indexer) SearchFuzzy(ctx context.Context, q string, limit int) []SearchResult {
	var pb strings.Builder
	pb.WriteByte('%')
	for _, r := range q {
		pb.WriteRune(r)
		pb.WriteByte('%')
	}
	pattern := pb.String()

	rows, err := idx.store.DB().QueryContext(ctx, fuzzyCandidateSQL, pattern, pattern)
	if err != nil {
		logs.Notice(ctx, "search_fuzzy: query failed", "error", err)
		return nil
	}

	type candidate struct {
		name, path    string
		isDir, hidden bool
	}
	var candidates []candidate
	for rows.Next() {
		var c candidate
		var isDir, hidden int
		if err := rows.Scan(&c.name, &c.path, &isDir, &hidden); err != nil {
			continue
		}
		c.isDir, c.hidden = isDir != 0, hidden != 0
		candidates = append(candidates, c)
	}
	rows.Close()

	results := make([]SearchResult, 0, len(candidates))
	for _, c := range candidates {
		score, ok := fuzzyScore(c.name, q)
		if !ok {
			score, ok = fuzzyScore(c.path, q)
		}
		if !ok {
			continue
		}
		results = append(results, SearchResult{
			Name:   c.name,
			Path:   c.path,
			IsDir:  c.isDir,
			Hidden: c.hidden,
			Score:  score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// fuzzyScore scores a single candidate against query using sahilm/fuzzy,
// the closest ecosystem equivalent of the Skim V2 matcher this search was
// modeled on. Returns ok=false when the query's characters don't occur in
// order within candidate.
func fuzzyScore(candidate, query string) (int, bool) {
	if query == "" {
		return 0, false
	}
	matches := fuzzy.Find(query, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}

// Search runs the hybrid policy: try FTS first, and only fall back to
// fuzzy when it returns zero rows.
func (idx *Indexer) Search(ctx context.Context, q string, limit int) []SearchResult {
	if results := idx.SearchFTS(ctx, q, limit); len(results) > 0 {
		return results
	}
	return idx.SearchFuzzy(ctx, q, limit)
}
