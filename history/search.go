package history

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Search returns the entries whose filename fuzzily matches query, best match first.
// An empty query returns entries unchanged.
func Search(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}

	names := lo.Map(entries, func(e Entry, _ int) string { return e.Name() })
	ranks := fuzzy.RankFindNormalizedFold(query, names)

	sort.Stable(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) Entry { return entries[r.OriginalIndex] })
}
