package pipeline

import "sort"

// CategoryCount is one ranked category with its occurrence count.
type CategoryCount struct {
	Category string
	Count    int
}

// CityCategories is the ranked category list for one city, in the
// city's geo-rollup position.
type CityCategories struct {
	City       string
	Categories []CategoryCount
}

// rankCategories counts occurrences in a category list and returns at
// most n categories by count descending. Ties keep first-seen order.
func rankCategories(categories []string, n int) []CategoryCount {
	order := make([]string, 0)
	counts := make(map[string]int)
	for _, c := range categories {
		if _, ok := counts[c]; !ok {
			order = append(order, c)
		}
		counts[c]++
	}

	ranked := make([]CategoryCount, 0, len(order))
	for _, c := range order {
		ranked = append(ranked, CategoryCount{Category: c, Count: counts[c]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// RankCityCategories produces the per-city category ranking for a set of
// geo rollups, keeping the rollups' city order.
func RankCityCategories(rollups []GeoRollup, n int) []CityCategories {
	out := make([]CityCategories, 0, len(rollups))
	for _, g := range rollups {
		out = append(out, CityCategories{
			City:       g.Name,
			Categories: rankCategories(g.Categories, n),
		})
	}
	return out
}
