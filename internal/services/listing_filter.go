package services

import (
	"sort"
	"strings"

	"immoBack/internal/models"
)

type AreaDimension string

const (
	GroundAreaDimension AreaDimension = "ground"
	HouseAreaDimension  AreaDimension = "house"
)

// ListingFilter holds the full fetched property set for one listing session
// and recomputes the visible subset after every state change. Recomputation
// is synchronous and pure; none of the operations can fail.
type ListingFilter struct {
	properties []models.Property
	state      models.FilterState
	visible    []models.Property
}

func NewListingFilter(properties []models.Property) *ListingFilter {
	f := &ListingFilter{properties: properties}

	// When the whole data set lives in a single country there is nothing to
	// choose, so the partition is applied up front.
	if countries := distinctCountries(properties); len(countries) == 1 {
		f.state.Country = countries[0]
	}
	f.recompute()
	return f
}

func (f *ListingFilter) SetProperties(properties []models.Property) {
	f.properties = properties
	f.recompute()
}

// SetTypeFilter replaces the active type selection. An empty selection means
// no filter; an unknown type simply matches nothing.
func (f *ListingFilter) SetTypeFilter(types []string) {
	f.state.Types = types
	f.recompute()
}

// SetAreaFilter replaces the active range for one dimension. A nil range
// removes the filter. Bounds are inclusive on both ends.
func (f *ListingFilter) SetAreaFilter(dimension AreaDimension, r *models.AreaRange) {
	switch dimension {
	case GroundAreaDimension:
		f.state.GroundArea = r
	case HouseAreaDimension:
		f.state.HouseArea = r
	}
	f.recompute()
}

func (f *ListingFilter) SetTextQuery(query string) {
	f.state.Query = query
	f.recompute()
}

// SetCountry partitions the working set before any other filter is applied.
// An empty string removes the partition.
func (f *ListingFilter) SetCountry(country string) {
	f.state.Country = country
	f.recompute()
}

// ClearFilters resets type, area and text filters. The country partition
// survives a clear.
func (f *ListingFilter) ClearFilters() {
	f.state = models.FilterState{Country: f.state.Country}
	f.recompute()
}

func (f *ListingFilter) State() models.FilterState {
	return f.state
}

func (f *ListingFilter) Visible() []models.Property {
	return f.visible
}

// FacetOptions derives the filter control options from the data itself. The
// type facet respects the country partition; the country facet always spans
// the full set.
func (f *ListingFilter) FacetOptions() models.FacetOptions {
	return Facets(f.properties, f.state.Country)
}

func (f *ListingFilter) recompute() {
	f.visible = ApplyFilters(f.properties, f.state)
}

// ApplyFilters evaluates the filter conjunction in a fixed order: country
// partition, type membership, ground-area range, house-area range, text
// query. The result is stable-sorted ascending by id so re-renders with
// unchanged inputs never reorder.
func ApplyFilters(properties []models.Property, state models.FilterState) []models.Property {
	result := make([]models.Property, 0, len(properties))

	typeSet := make(map[string]struct{}, len(state.Types))
	for _, t := range state.Types {
		typeSet[strings.TrimSpace(t)] = struct{}{}
	}

	for _, p := range properties {
		if state.Country != "" && !strings.EqualFold(p.Country, state.Country) {
			continue
		}
		if len(typeSet) > 0 {
			if _, ok := typeSet[p.PropertyType]; !ok {
				continue
			}
		}
		if state.GroundArea != nil && !state.GroundArea.Contains(p.GroundArea) {
			continue
		}
		if state.HouseArea != nil && !state.HouseArea.Contains(p.HouseArea) {
			continue
		}
		if state.Query != "" && !matchesQuery(p, state.Query) {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// matchesQuery reports whether the query is a case-insensitive substring of
// the title, city or address.
func matchesQuery(p models.Property, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{p.Title, p.LocationCity, p.LocationAddress} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Facets returns the distinct, de-duplicated type and country values present
// in the data set. The type facet is computed after applying the country
// partition; the country facet is not.
func Facets(properties []models.Property, country string) models.FacetOptions {
	typeSet := make(map[string]struct{})
	countrySet := make(map[string]struct{})

	for _, p := range properties {
		if c := strings.TrimSpace(p.Country); c != "" {
			countrySet[c] = struct{}{}
		}
		if country != "" && !strings.EqualFold(p.Country, country) {
			continue
		}
		if t := strings.TrimSpace(p.PropertyType); t != "" {
			typeSet[t] = struct{}{}
		}
	}

	facets := models.FacetOptions{
		Types:     make([]string, 0, len(typeSet)),
		Countries: make([]string, 0, len(countrySet)),
	}
	for t := range typeSet {
		facets.Types = append(facets.Types, t)
	}
	for c := range countrySet {
		facets.Countries = append(facets.Countries, c)
	}
	sort.Strings(facets.Types)
	sort.Strings(facets.Countries)
	return facets
}

func distinctCountries(properties []models.Property) []string {
	seen := make(map[string]struct{})
	var countries []string
	for _, p := range properties {
		c := strings.TrimSpace(p.Country)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		countries = append(countries, c)
	}
	return countries
}
