package pipeline

import "sort"

// GeoRollup groups monetary totals by a location name. Categories is the
// concatenation of every member's category list, in member order.
type GeoRollup struct {
	Name       string
	Total      float64
	Count      int
	Categories []string
}

// topGeo groups (name, total, categories) triples by name, sorts the
// groups by total descending with first-seen ties kept stable, and
// returns at most n groups. n <= 0 means no cap.
func topGeo(names []string, totals []float64, categories [][]string, n int) []GeoRollup {
	order := make([]string, 0)
	byName := make(map[string]*GeoRollup)

	for i, name := range names {
		g, ok := byName[name]
		if !ok {
			g = &GeoRollup{Name: name}
			byName[name] = g
			order = append(order, name)
		}
		g.Total += totals[i]
		g.Count++
		g.Categories = append(g.Categories, categories[i]...)
	}

	rollups := make([]GeoRollup, 0, len(order))
	for _, name := range order {
		rollups = append(rollups, *byName[name])
	}
	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Total > rollups[j].Total
	})

	if n > 0 && len(rollups) > n {
		rollups = rollups[:n]
	}
	return rollups
}

// SellerCityRollups returns the top n seller cities by summed item price.
func SellerCityRollups(reports []SellerReport, n int) []GeoRollup {
	names := make([]string, len(reports))
	totals := make([]float64, len(reports))
	categories := make([][]string, len(reports))
	for i, r := range reports {
		names[i] = r.City
		totals[i] = r.Price.Sum
		categories[i] = r.Categories
	}
	return topGeo(names, totals, categories, n)
}

// SellerStateRollups returns the top n seller states by summed item price.
func SellerStateRollups(reports []SellerReport, n int) []GeoRollup {
	names := make([]string, len(reports))
	totals := make([]float64, len(reports))
	categories := make([][]string, len(reports))
	for i, r := range reports {
		names[i] = r.State
		totals[i] = r.Price.Sum
		categories[i] = r.Categories
	}
	return topGeo(names, totals, categories, n)
}

// CustomerCityRollups returns the top n customer cities by summed
// payment value.
func CustomerCityRollups(reports []CustomerReport, n int) []GeoRollup {
	names := make([]string, len(reports))
	totals := make([]float64, len(reports))
	categories := make([][]string, len(reports))
	for i, r := range reports {
		names[i] = r.City
		totals[i] = r.Payment.Sum
		categories[i] = r.Categories
	}
	return topGeo(names, totals, categories, n)
}

// CustomerStateRollups returns the top n customer states by summed
// payment value.
func CustomerStateRollups(reports []CustomerReport, n int) []GeoRollup {
	names := make([]string, len(reports))
	totals := make([]float64, len(reports))
	categories := make([][]string, len(reports))
	for i, r := range reports {
		names[i] = r.State
		totals[i] = r.Payment.Sum
		categories[i] = r.Categories
	}
	return topGeo(names, totals, categories, n)
}
