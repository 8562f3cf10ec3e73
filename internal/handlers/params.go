package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"immoBack/internal/models"
)

func propertyFormFromRequest(r *http.Request) (models.PropertyForm, error) {
	form := models.PropertyForm{
		Title:           strings.TrimSpace(r.FormValue("title")),
		Description:     r.FormValue("description"),
		LocationCity:    strings.TrimSpace(r.FormValue("location_city")),
		LocationAddress: strings.TrimSpace(r.FormValue("location_address")),
		Country:         strings.TrimSpace(r.FormValue("country")),
		PropertyType:    strings.TrimSpace(r.FormValue("property_type")),
		Status:          strings.TrimSpace(r.FormValue("status")),
	}

	var err error
	if form.Price, err = parseFloatField("price", r.FormValue("price")); err != nil {
		return models.PropertyForm{}, err
	}
	if form.GroundArea, err = parseFloatField("ground_area", r.FormValue("ground_area")); err != nil {
		return models.PropertyForm{}, err
	}
	if form.HouseArea, err = parseFloatField("house_area", r.FormValue("house_area")); err != nil {
		return models.PropertyForm{}, err
	}
	if form.Rooms, err = parseIntField("rooms", r.FormValue("rooms")); err != nil {
		return models.PropertyForm{}, err
	}
	return form, nil
}

// parseFloatField coerces a form value to a non-negative number. A blank
// value means zero; anything unparsable is rejected rather than stored.
func parseFloatField(name, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return 0, models.ValidationError(fmt.Sprintf("%s must be numeric", name))
	}
	if f < 0 {
		return 0, models.ValidationError(fmt.Sprintf("%s must not be negative", name))
	}
	return f, nil
}

func parseIntField(name, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, models.ValidationError(fmt.Sprintf("%s must be an integer", name))
	}
	if n < 0 {
		return 0, models.ValidationError(fmt.Sprintf("%s must not be negative", name))
	}
	return n, nil
}

func filterStateFromQuery(r *http.Request) (models.FilterState, error) {
	q := r.URL.Query()

	state := models.FilterState{
		Country: q.Get("country"),
		Types:   parseStringArray(q.Get("types")),
		Query:   q.Get("q"),
	}

	var err error
	if state.GroundArea, err = parseAreaRange(q.Get("min_ground"), q.Get("max_ground")); err != nil {
		return models.FilterState{}, err
	}
	if state.HouseArea, err = parseAreaRange(q.Get("min_house"), q.Get("max_house")); err != nil {
		return models.FilterState{}, err
	}
	return state, nil
}

// parseAreaRange builds an inclusive range from optional min/max params. A
// missing min is 0, a missing max is unbounded; both missing means no filter.
func parseAreaRange(minStr, maxStr string) (*models.AreaRange, error) {
	minStr = strings.TrimSpace(minStr)
	maxStr = strings.TrimSpace(maxStr)
	if minStr == "" && maxStr == "" {
		return nil, nil
	}

	r := models.AreaRange{Min: 0, Max: math.MaxFloat64}
	if minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return nil, models.ValidationError("area bounds must be numeric")
		}
		r.Min = v
	}
	if maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return nil, models.ValidationError("area bounds must be numeric")
		}
		r.Max = v
	}
	return &r, nil
}

func parseStringArray(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	var result []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseIntArray(input string) []int {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	var result []int
	for _, part := range parts {
		if val, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			result = append(result, val)
		}
	}
	return result
}
