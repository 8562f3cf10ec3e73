package services

import (
	"reflect"
	"testing"

	"immoBack/internal/models"
)

func sampleProperties() []models.Property {
	return []models.Property{
		{ID: 1, Title: "Einfamilienhaus am Stadtrand", LocationCity: "Graz", LocationAddress: "Hauptstrasse 12", Country: "Austria", PropertyType: "Haus", GroundArea: 150, HouseArea: 120},
		{ID: 2, Title: "Stadtwohnung mit Balkon", LocationCity: "Wien", LocationAddress: "Ringstrasse 3", Country: "Austria", PropertyType: "Wohnung", GroundArea: 300, HouseArea: 95},
		{ID: 3, Title: "Gewerbeobjekt Zentrum", LocationCity: "Munich", LocationAddress: "Marienplatz 8", Country: "Germany", PropertyType: "Gewerbe", GroundArea: 500, HouseArea: 420},
	}
}

func TestApplyFiltersIsIdempotent(t *testing.T) {
	props := sampleProperties()
	state := models.FilterState{Types: []string{"Haus", "Wohnung"}, Query: "stadt"}

	first := ApplyFilters(props, state)
	second := ApplyFilters(props, state)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recompute with unchanged inputs differed:\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestApplyFiltersSortsAscendingByID(t *testing.T) {
	props := []models.Property{
		{ID: 9, PropertyType: "Haus"},
		{ID: 2, PropertyType: "Haus"},
		{ID: 5, PropertyType: "Haus"},
	}

	result := ApplyFilters(props, models.FilterState{})

	for i := 1; i < len(result); i++ {
		if result[i-1].ID > result[i].ID {
			t.Fatalf("result not sorted ascending by id: %v then %v", result[i-1].ID, result[i].ID)
		}
	}
}

func TestGroundAreaRangeBoundariesInclusive(t *testing.T) {
	props := []models.Property{
		{ID: 1, PropertyType: "Haus", GroundArea: 150},
		{ID: 2, PropertyType: "Wohnung", GroundArea: 300},
	}

	state := models.FilterState{GroundArea: &models.AreaRange{Min: 0, Max: 200}}
	result := ApplyFilters(props, state)
	if len(result) != 1 || result[0].ID != 1 {
		t.Fatalf("expected only id 1 within (0,200), got %#v", result)
	}

	// Both bounds are inclusive.
	state = models.FilterState{GroundArea: &models.AreaRange{Min: 150, Max: 150}}
	result = ApplyFilters(props, state)
	if len(result) != 1 || result[0].ID != 1 {
		t.Fatalf("value equal to min and max should match, got %#v", result)
	}

	state = models.FilterState{GroundArea: &models.AreaRange{Min: 300, Max: 400}}
	result = ApplyFilters(props, state)
	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("value equal to min should match, got %#v", result)
	}
}

func TestClearFiltersRestoresAllButCountry(t *testing.T) {
	f := NewListingFilter([]models.Property{
		{ID: 1, Country: "Austria", PropertyType: "Haus", GroundArea: 150},
		{ID: 2, Country: "Austria", PropertyType: "Wohnung", GroundArea: 300},
	})

	f.SetAreaFilter(GroundAreaDimension, &models.AreaRange{Min: 0, Max: 200})
	if got := f.Visible(); len(got) != 1 {
		t.Fatalf("expected 1 visible property after range filter, got %d", len(got))
	}

	f.ClearFilters()
	if got := f.Visible(); len(got) != 2 {
		t.Fatalf("expected both properties after clear, got %d", len(got))
	}
	if f.State().Country != "Austria" {
		t.Fatalf("country partition must survive ClearFilters, got %q", f.State().Country)
	}
}

func TestTextQueryCaseInsensitiveAcrossFields(t *testing.T) {
	props := sampleProperties()

	result := ApplyFilters(props, models.FilterState{Query: "graz"})
	if len(result) != 1 || result[0].LocationCity != "Graz" {
		t.Fatalf("query %q should match city Graz, got %#v", "graz", result)
	}

	result = ApplyFilters(props, models.FilterState{Query: "RINGSTRASSE"})
	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("query should match address case-insensitively, got %#v", result)
	}

	result = ApplyFilters(props, models.FilterState{Query: "gewerbeobjekt"})
	if len(result) != 1 || result[0].ID != 3 {
		t.Fatalf("query should match title case-insensitively, got %#v", result)
	}
}

func TestCountryPartitionAppliedBeforeOtherFilters(t *testing.T) {
	props := sampleProperties()

	result := ApplyFilters(props, models.FilterState{Country: "austria"})
	if len(result) != 2 {
		t.Fatalf("case-insensitive country match expected 2 records, got %d", len(result))
	}
	for _, p := range result {
		if p.Country != "Austria" {
			t.Errorf("unexpected country in partition: %q", p.Country)
		}
	}
}

func TestUnknownTypeYieldsEmptyResultNotError(t *testing.T) {
	result := ApplyFilters(sampleProperties(), models.FilterState{Types: []string{"Schloss"}})
	if len(result) != 0 {
		t.Fatalf("unknown type should match nothing, got %#v", result)
	}
}

func TestSingleCountryAutoSelectedOnLoad(t *testing.T) {
	f := NewListingFilter([]models.Property{
		{ID: 1, Country: "Austria", PropertyType: "Haus"},
		{ID: 2, Country: "austria", PropertyType: "Wohnung"},
	})

	if f.State().Country == "" {
		t.Fatal("expected the only country to be auto-selected")
	}
	if len(f.Visible()) != 2 {
		t.Fatalf("auto-selected partition should show all records, got %d", len(f.Visible()))
	}
}

func TestMultipleCountriesNotAutoSelected(t *testing.T) {
	f := NewListingFilter(sampleProperties())
	if f.State().Country != "" {
		t.Fatalf("no country should be pre-selected with mixed data, got %q", f.State().Country)
	}
}

func TestFacetsDistinctAndPartitioned(t *testing.T) {
	props := append(sampleProperties(), models.Property{
		ID: 4, Country: "Austria", PropertyType: "Haus", // duplicate type
	})

	facets := Facets(props, "")
	if !reflect.DeepEqual(facets.Types, []string{"Gewerbe", "Haus", "Wohnung"}) {
		t.Fatalf("unexpected types facet: %#v", facets.Types)
	}
	if !reflect.DeepEqual(facets.Countries, []string{"Austria", "Germany"}) {
		t.Fatalf("unexpected countries facet: %#v", facets.Countries)
	}

	// With a country partition the type facet shrinks, the country facet
	// still spans the full set.
	facets = Facets(props, "Germany")
	if !reflect.DeepEqual(facets.Types, []string{"Gewerbe"}) {
		t.Fatalf("partitioned types facet wrong: %#v", facets.Types)
	}
	if len(facets.Countries) != 2 {
		t.Fatalf("country facet must ignore the partition, got %#v", facets.Countries)
	}
}

func TestEmptyResultIsValidState(t *testing.T) {
	f := NewListingFilter(sampleProperties())
	f.SetTextQuery("no such listing anywhere")

	if got := f.Visible(); len(got) != 0 {
		t.Fatalf("expected empty result, got %#v", got)
	}
}
